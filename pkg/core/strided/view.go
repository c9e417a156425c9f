// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package strided

// View is a strided view over a buffer it doesn't own: logical element i is stored in
// Data[Offset + i*Stride].
//
// Views are cheap values built per call; the kernels themselves take the triple (buffer, stride, offset)
// as separate arguments, View is a convenience for callers composing kernels.
type View[T any] struct {
	Data   []T
	Stride int
	Offset int
}

// NewView returns the convention-form view of n elements: for negative strides it starts at the end of
// the buffer so the logical sequence is the buffer read backwards.
func NewView[T any](data []T, n, stride int) View[T] {
	return View[T]{Data: data, Stride: stride, Offset: Offset(n, stride)}
}

// NewViewNDArray returns a view with an explicit offset.
func NewViewNDArray[T any](data []T, stride, offset int) View[T] {
	return View[T]{Data: data, Stride: stride, Offset: offset}
}

// Index returns the physical index of the logical element i.
func (v View[T]) Index(i int) int {
	return v.Offset + i*v.Stride
}

// At returns the logical element i.
func (v View[T]) At(i int) T {
	return v.Data[v.Offset+i*v.Stride]
}

// Set the logical element i.
func (v View[T]) Set(i int, value T) {
	v.Data[v.Offset+i*v.Stride] = value
}

// Check panics with an ArgumentError if a view of n elements falls out of the buffer.
func (v View[T]) Check(op, arg string, n int) {
	CheckVector(op, arg, n, len(v.Data), v.Stride, v.Offset)
}

// Reverse returns a view over the same n elements in reverse logical order.
func (v View[T]) Reverse(n int) View[T] {
	return View[T]{Data: v.Data, Stride: -v.Stride, Offset: LastIndex(n, v.Stride, v.Offset)}
}

// ToSlice copies the n logical elements of the view into a new contiguous slice.
// It is the copy-producing counterpart of the view.
func (v View[T]) ToSlice(n int) []T {
	if n <= 0 {
		return []T{}
	}
	v.Check("ToSlice", "view", n)
	out := make([]T, n)
	ix := v.Offset
	for i := range out {
		out[i] = v.Data[ix]
		ix += v.Stride
	}
	return out
}

// SameBuffer reports whether a and b start at the same element of the same backing array, that is, whether a
// kernel returning a handed back the buffer b it was given. Two empty slices are considered the same buffer.
func SameBuffer[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	return &a[0] == &b[0]
}

// Overlaps reports whether a and b share at least one element of a backing array.
func Overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return containsElement(a, &b[0]) || containsElement(b, &a[0])
}

func containsElement[T any](s []T, p *T) bool {
	for i := range s {
		if &s[i] == p {
			return true
		}
	}
	return false
}
