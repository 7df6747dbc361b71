// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// Load reads the run file at path and returns one series per
// requested column, in the order requested. Each series has one value
// per row of the file.
//
// A missing or unreadable file is reported as the underlying I/O
// error. A non-numeric cell, a ragged row, or a table with too few
// columns for the request is reported as a *SyntaxError.
func Load(path string, cols ...Column) ([][]float64, error) {
	runs, err := LoadAll([]string{path}, cols...)
	if err != nil {
		return nil, err
	}
	return runs[0], nil
}

// LoadAll is like Load, but reads each of paths in turn. The result is
// indexed first by path and then by column. Reading stops at the
// first error.
func LoadAll(paths []string, cols ...Column) ([][][]float64, error) {
	maxCol := -1
	for _, c := range cols {
		if c.Index() < 0 {
			return nil, fmt.Errorf("invalid column %d", c.Index())
		}
		if c.Index() > maxCol {
			maxCol = c.Index()
		}
	}

	runs := make([][][]float64, 0, len(paths))
	// addRuns extends runs through index i. Files with no rows
	// produce no Scan results, so they are filled in here.
	addRuns := func(i int) {
		for len(runs) <= i {
			series := make([][]float64, len(cols))
			for j := range series {
				series[j] = []float64{}
			}
			runs = append(runs, series)
		}
	}

	f := &Files{Paths: paths}
	for f.Scan() {
		row := f.Row()
		if maxCol >= len(row) {
			return nil, &SyntaxError{f.Path(), f.Line(), fmt.Sprintf("row has %d fields, need column %d", len(row), maxCol)}
		}
		addRuns(f.Index())
		series := runs[f.Index()]
		for i, c := range cols {
			series[i] = append(series[i], row[c.Index()])
		}
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	addRuns(len(paths) - 1)
	return runs, nil
}

// LoadTable is like Load, but returns the series as a table with one
// []float64 column per requested Column, named by Column.String.
func LoadTable(path string, cols ...Column) (*table.Table, error) {
	series, err := Load(path, cols...)
	if err != nil {
		return nil, err
	}
	b := new(table.Builder)
	for i, c := range cols {
		b.Add(c.String(), series[i])
	}
	return b.Done(), nil
}
