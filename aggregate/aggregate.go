// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aggregate turns run files into the series that are plotted:
// absolute residuals of a single run, and wall time per iteration
// averaged over repeated runs.
package aggregate

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"golang.org/x/benchplot/runfmt"
)

// Config says where run files are found.
type Config struct {
	// Dir is the directory containing the run files.
	Dir string
	// Pattern is the fmt pattern of run file names, taking the run
	// number (starting at 1).
	Pattern string
}

// DefaultConfig returns the configuration used by the commands:
// run_<i>.dat in the current directory.
func DefaultConfig() Config {
	return Config{Dir: ".", Pattern: runfmt.DefaultPattern}
}

// RunPath returns the path of run i.
func (c Config) RunPath(i int) string {
	return runfmt.RunPath(c.Dir, c.Pattern, i)
}

// ErrInvalidCount is returned by Perf when asked to average fewer
// than one run.
var ErrInvalidCount = errors.New("number of runs must be at least 1")

// An AlignmentError reports a run whose iterations do not line up
// with those of the first run.
type AlignmentError struct {
	Path string
	Row  int // zero-based row, or -1 for a row count mismatch
	Msg  string
}

func (e *AlignmentError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("%s: row %d: %s", e.Path, e.Row, e.Msg)
}

// Abs returns the element-wise absolute value of xs.
func Abs(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Abs(x)
	}
	return out
}

// Average returns the element-wise mean of runs after multiplying
// every value by factor. All runs must have the same length as the
// first. The sum is accumulated in run order and divided once at the
// end, so a single run yields exactly its own scaled values.
func Average(runs [][]float64, factor float64) ([]float64, error) {
	if len(runs) < 1 {
		return nil, ErrInvalidCount
	}
	sum := make([]float64, len(runs[0]))
	for i, run := range runs {
		if len(run) != len(sum) {
			return nil, fmt.Errorf("run %d has %d values, want %d", i+1, len(run), len(sum))
		}
		for j, v := range run {
			sum[j] += factor * v
		}
	}
	n := float64(len(runs))
	for j := range sum {
		sum[j] /= n
	}
	return sum, nil
}

// A Stats summarizes a series for logging.
type Stats struct {
	N              int
	Min, Mean, Max float64
}

// Summary returns the bounds and mean of xs.
func Summary(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	min, max := stats.Bounds(xs)
	return Stats{N: len(xs), Min: min, Mean: stats.Mean(xs), Max: max}
}
