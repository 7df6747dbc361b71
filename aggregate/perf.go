// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"fmt"

	"github.com/aclements/go-gg/table"

	"golang.org/x/benchplot/benchunit"
	"golang.org/x/benchplot/runfmt"
)

// PerfSeries is the wall time per iteration count, averaged over
// repeated runs of the same configuration.
type PerfSeries struct {
	Runs int
	Iter []float64
	Time []float64 // seconds
	Unit string    // unit of Time
}

// Perf loads the timing column of runs 1 through n, converts it to
// seconds, and averages it row by row. The iteration counts are those
// of run 1; every other run must have the same row count and the same
// iteration counts or Perf returns an *AlignmentError.
//
// Runs are read one at a time, in order.
func Perf(cfg Config, n int) (*PerfSeries, error) {
	if n < 1 {
		return nil, fmt.Errorf("averaging %d runs: %w", n, ErrInvalidCount)
	}

	// Tidying one unit yields the conversion factor.
	factor, unit := benchunit.Tidy(1, runfmt.TimeUnit)

	paths := runfmt.RunPaths(cfg.Dir, cfg.Pattern, n)
	loaded, err := runfmt.LoadAll(paths, runfmt.Iter, runfmt.Time)
	if err != nil {
		return nil, err
	}
	iter := loaded[0][0]
	runs := make([][]float64, 0, n)
	for i, cols := range loaded {
		if err := checkAligned(paths[i], iter, cols[0]); err != nil {
			return nil, err
		}
		runs = append(runs, cols[1])
	}

	avg, err := Average(runs, factor)
	if err != nil {
		return nil, err
	}
	return &PerfSeries{Runs: n, Iter: iter, Time: avg, Unit: unit}, nil
}

// checkAligned returns an *AlignmentError unless iter matches want, the
// iteration counts of the first run.
func checkAligned(path string, want, iter []float64) error {
	if len(iter) != len(want) {
		return &AlignmentError{path, -1, fmt.Sprintf("%d rows, but first run has %d", len(iter), len(want))}
	}
	for j := range iter {
		if iter[j] != want[j] {
			return &AlignmentError{path, j, fmt.Sprintf("iteration %v, but first run has %v", iter[j], want[j])}
		}
	}
	return nil
}

// Table returns s as a table with columns "iter" and the time column,
// named by its unit.
func (s *PerfSeries) Table() *table.Table {
	return new(table.Builder).
		Add("iter", s.Iter).
		Add(s.Unit, s.Time).
		Done()
}
