// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/registry"
	"github.com/pkg/errors"
)

// parseDType looks up an element kind by any of its names ("Float32", "float32", "f32", ...).
func parseDType(name string) (dtypes.DType, error) {
	dtype, found := dtypes.MapOfNames[name]
	if !found || !dtype.IsSupported() {
		var known []string
		for _, d := range dtypes.DTypeValues() {
			known = append(known, d.String())
		}
		return dtypes.InvalidDType, errors.Errorf("unknown dtype %q, known dtypes: %s", name,
			strings.Join(known, ", "))
	}
	return dtype, nil
}

// selectKernels returns the registered kernels, optionally only those of one namespace and of one dtype.
func selectKernels(namespace, dtypeName string) ([]*registry.Kernel, error) {
	var kernels []*registry.Kernel
	if namespace != "" {
		if !slices.Contains(registry.Namespaces(), namespace) {
			return nil, errors.Errorf("unknown namespace %q, known namespaces: %s", namespace,
				strings.Join(registry.Namespaces(), ", "))
		}
		kernels = registry.InNamespace(namespace)
	} else {
		registry.Enumerate(func(k *registry.Kernel) bool {
			kernels = append(kernels, k)
			return true
		})
	}
	if dtypeName == "" {
		return kernels, nil
	}
	dtype, err := parseDType(dtypeName)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(kernels, func(k *registry.Kernel) bool { return k.DType != dtype }), nil
}

// list prints the table of the registered kernels, optionally filtered by namespace and dtype.
func list(namespace, dtypeName string) error {
	kernels, err := selectKernels(namespace, dtypeName)
	if err != nil {
		return err
	}

	printTitle("Kernels")
	table := newPlainTable(lipgloss.Left, lipgloss.Left, lipgloss.Left, lipgloss.Left, lipgloss.Left,
		lipgloss.Right, lipgloss.Left, lipgloss.Left)
	table.Table.Headers("Name", "Namespace", "DType", "Shape", "Algorithm", "Unroll", "Output", "Scalars")
	for _, k := range kernels {
		unroll := "-"
		if k.Unroll > 0 {
			unroll = strconv.Itoa(k.Unroll)
		}
		table.Row(false, k.Name, k.Namespace, k.DType.String(), k.Shape.String(), k.Algorithm, unroll,
			k.Output.String(), strings.Join(k.Scalars, ", "))
	}
	fmt.Println(table.Table.Render())
	fmt.Printf("%s kernels\n", humanize.Comma(int64(len(kernels))))
	return nil
}
