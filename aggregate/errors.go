// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"github.com/aclements/go-gg/table"

	"golang.org/x/benchplot/runfmt"
)

// ErrorSeries is the convergence history of one run: the magnitude of
// the real and imaginary residual at each iteration.
type ErrorSeries struct {
	Path string
	Iter []float64
	Re   []float64 // |Re residual|
	Im   []float64 // |Im residual|
}

// Errors loads run 1 and returns the absolute residuals.
func Errors(cfg Config) (*ErrorSeries, error) {
	path := cfg.RunPath(1)
	t, err := runfmt.LoadTable(path, runfmt.Iter, runfmt.ResidualRe, runfmt.ResidualIm)
	if err != nil {
		return nil, err
	}
	col := func(c runfmt.Column) []float64 {
		return t.MustColumn(c.String()).([]float64)
	}
	return &ErrorSeries{
		Path: path,
		Iter: col(runfmt.Iter),
		Re:   Abs(col(runfmt.ResidualRe)),
		Im:   Abs(col(runfmt.ResidualIm)),
	}, nil
}

// Table returns s as a table with columns "iter", "|re|" and "|im|".
func (s *ErrorSeries) Table() *table.Table {
	return new(table.Builder).
		Add("iter", s.Iter).
		Add("|re|", s.Re).
		Add("|im|", s.Im).
		Done()
}
