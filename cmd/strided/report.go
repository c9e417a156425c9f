// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// resultsDataFrame converts the benchmark results to a dataframe, one row per kernel and size.
func resultsDataFrame(results []benchResult) dataframe.DataFrame {
	numRows := len(results)
	runIDs := make([]string, numRows)
	kernels := make([]string, numRows)
	sizes := make([]int, numRows)
	strides := make([]int, numRows)
	runs := make([]int, numRows)
	nsPerCall := make([]float64, numRows)
	nsPerElement := make([]float64, numRows)
	for i, r := range results {
		runIDs[i] = r.RunID
		kernels[i] = r.Kernel
		sizes[i] = r.N
		strides[i] = r.Stride
		runs[i] = r.Runs
		nsPerCall[i] = float64(r.PerCall().Nanoseconds())
		nsPerElement[i] = r.NsPerElement()
	}
	return dataframe.New(
		series.New(runIDs, series.String, "run_id"),
		series.New(kernels, series.String, "kernel"),
		series.New(sizes, series.Int, "n"),
		series.New(strides, series.Int, "stride"),
		series.New(runs, series.Int, "runs"),
		series.New(nsPerCall, series.Float, "ns_per_call"),
		series.New(nsPerElement, series.Float, "ns_per_element"),
	)
}

// saveCSV writes the results to filePath as CSV, with a header.
func saveCSV(filePath string, results []benchResult) error {
	df := resultsDataFrame(results)
	if df.Err != nil {
		return errors.Wrap(df.Err, "failed to build results dataframe")
	}
	f, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to create %q", filePath)
	}
	if err = df.WriteCSV(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to write %q", filePath)
	}
	return errors.Wrapf(f.Close(), "failed to close %q", filePath)
}

// savePlot plots the time per element against the number of elements, one line per kernel, in log scale.
// The format is given by the extension of filePath.
func savePlot(filePath string, results []benchResult) error {
	p := plot.New()
	p.Title.Text = "Strided kernels"
	p.X.Label.Text = "elements"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Label.Text = "ns/element"
	p.Legend.Top = true

	var order []string
	lines := make(map[string]plotter.XYs)
	for _, r := range results {
		if _, found := lines[r.Kernel]; !found {
			order = append(order, r.Kernel)
		}
		lines[r.Kernel] = append(lines[r.Kernel], plotter.XY{X: float64(r.N), Y: r.NsPerElement()})
	}
	var args []any
	for _, name := range order {
		args = append(args, name, lines[name])
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return errors.Wrap(err, "failed to plot results")
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, filePath); err != nil {
		return errors.Wrapf(err, "failed to save plot to %q", filePath)
	}
	return nil
}
