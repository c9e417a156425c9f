// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package strided

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// ArgumentError is raised by the kernels when one of their arguments is invalid: a view that falls out of
// its buffer, an unknown enum value, a buffer of an unsupported kind, etc.
//
// Kernels validate all their arguments before touching any buffer, so when an ArgumentError is raised
// no output has been modified.
type ArgumentError struct {
	Op      string // Kernel that failed, e.g. "dscal".
	Arg     string // Name of the offending argument, e.g. "strideX".
	Message string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: invalid argument %q: %s", e.Op, e.Arg, e.Message)
}

// NewArgumentError creates an ArgumentError with a formatted message, with a stack trace attached.
func NewArgumentError(op, arg, format string, args ...any) error {
	return errors.WithStack(&ArgumentError{Op: op, Arg: arg, Message: fmt.Sprintf(format, args...)})
}

// Panicf panics with an ArgumentError. This is how kernels report invalid arguments.
func Panicf(op, arg, format string, args ...any) {
	panic(NewArgumentError(op, arg, format, args...))
}

// IsArgumentError returns whether err is or wraps an ArgumentError.
func IsArgumentError(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// Catch runs fn and returns the error it panicked with, if any. Panics that are not errors are
// re-thrown.
//
// It is the bridge between the kernels, which panic on invalid arguments (like slice indexing does),
// and callers that prefer an error.
func Catch(fn func()) error {
	return exceptions.TryCatch[error](fn)
}

// CheckVector validates that the view (n, stride, offset) falls within a buffer of the given length.
// Views with n <= 0 are always valid: they access nothing.
func CheckVector(op, arg string, n, length, stride, offset int) {
	if n <= 0 {
		return
	}
	lo, hi := MinMaxIndex(n, stride, offset)
	if lo < 0 || hi >= length {
		Panicf(op, arg, "view of %d elements with stride %d and offset %d accesses indices [%d, %d], "+
			"out of bounds for a buffer of length %d", n, stride, offset, lo, hi, length)
	}
}

// CheckMatrix validates that the two-dimensional view (rows x cols, stride1, stride2, offset) falls within a
// buffer of the given length.
func CheckMatrix(op, arg string, rows, cols, length, stride1, stride2, offset int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	lo, hi := offset, offset
	if d := (rows - 1) * stride1; d < 0 {
		lo += d
	} else {
		hi += d
	}
	if d := (cols - 1) * stride2; d < 0 {
		lo += d
	} else {
		hi += d
	}
	if lo < 0 || hi >= length {
		Panicf(op, arg, "%dx%d view with strides (%d, %d) and offset %d accesses indices [%d, %d], "+
			"out of bounds for a buffer of length %d", rows, cols, stride1, stride2, offset, lo, hi, length)
	}
}

// CheckNonNegative validates that a count or dimension argument is not negative.
func CheckNonNegative(op, arg string, value int) {
	if value < 0 {
		Panicf(op, arg, "must be a non-negative integer, got %d", value)
	}
}

// CheckNonZero validates that a stride argument is not zero, for kernels where a zero stride is meaningless.
func CheckNonZero(op, arg string, value int) {
	if value == 0 {
		Panicf(op, arg, "must be non-zero")
	}
}
