// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPattern is the file name pattern of run files. Runs are
// numbered from 1.
const DefaultPattern = "run_%d.dat"

// RunPath returns the path of run i in dir according to pattern.
func RunPath(dir, pattern string, i int) string {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return filepath.Join(dir, fmt.Sprintf(pattern, i))
}

// RunPaths returns the paths of runs 1 through n in dir.
func RunPaths(dir, pattern string, n int) []string {
	paths := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		paths = append(paths, RunPath(dir, pattern, i))
	}
	return paths
}

// A Files reads rows from a sequence of run files.
//
// Rows of each file are delivered in order, one file after another.
// The width of rows is checked per file, so different files may have
// different widths.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []string

	reader Reader
	file   *os.File
	path   string
	index  int // index in Paths of path
	err    error
}

// Scan advances to the next row in the sequence of files and reports
// whether a row was read. The caller should use the Row method to get
// the row. If Scan reaches the end of the file sequence, or if an
// error occurs, it returns false. In this case, the caller should use
// the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	if f.inputs == nil {
		f.inputs = append([]string{}, f.Paths...)
		f.index = -1
	}

	for {
		if f.file == nil {
			// Open the next file.
			if len(f.inputs) == 0 {
				return false
			}
			f.path = f.inputs[0]
			f.inputs = f.inputs[1:]
			f.index++

			file, err := os.Open(f.path)
			if err != nil {
				f.err = err
				return false
			}
			f.file = file
			f.reader.Reset(f.file, f.path)
		}

		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		f.file.Close()
		f.file = nil
		if err != nil {
			f.err = err
			return false
		}
		// Just an EOF. Open the next file.
	}
}

// Row returns the row that was just read by Scan.
// See Reader.Row.
func (f *Files) Row() []float64 {
	return f.reader.Row()
}

// Path returns the path of the file the current row was read from.
func (f *Files) Path() string {
	return f.path
}

// Index returns the index in Paths of the file the current row was
// read from.
func (f *Files) Index() int {
	return f.index
}

// Line returns the line number of the current row within its file.
func (f *Files) Line() int {
	return f.reader.Line()
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}
