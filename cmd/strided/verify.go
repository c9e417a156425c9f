// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/strided/internal/sweep"
	"github.com/gomlx/strided/pkg/registry"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// verify runs the -verify flag. It returns false if any kernel violates a property.
func verify() (bool, error) {
	kernels, err := parseKernels(*flagKernels)
	if err != nil {
		return false, err
	}
	config := sweep.DefaultConfig()
	if *flagParallelism >= -1 {
		config.Parallelism = *flagParallelism
	}
	total := len(kernels)
	if total == 0 {
		total = len(registry.Names())
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("verifying"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	config.Progress = func(done, _ int) {
		_ = bar.Set(done)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	report, err := sweep.Run(ctx, config, kernels...)
	_ = bar.Finish()
	if err != nil {
		return false, errors.WithMessage(err, "-verify")
	}

	printTitle("Verification")
	summary := newPlainTable(lipgloss.Right, lipgloss.Left)
	summary.Row(false, "kernels", humanize.Comma(int64(report.Kernels)))
	summary.Row(false, "cases", humanize.Comma(int64(report.Cases)))
	summary.Row(false, "elapsed", formatDuration(report.Elapsed))
	summary.Row(!report.OK(), "failures", humanize.Comma(int64(len(report.Failures))))
	fmt.Println(summary.Table.Render())

	if !report.OK() {
		table := newPlainTable(lipgloss.Left, lipgloss.Left, lipgloss.Right, lipgloss.Right, lipgloss.Right, lipgloss.Left)
		table.Table.Headers("Kernel", "Check", "N", "Stride", "Offset", "Message")
		for _, f := range report.Failures {
			table.Row(true, f.Kernel, f.Check.String(), strconv.Itoa(f.N), strconv.Itoa(f.Stride),
				strconv.Itoa(f.Offset), f.Message)
		}
		fmt.Println(table.Table.Render())
	}
	return report.OK(), nil
}
