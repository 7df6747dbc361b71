// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import "fmt"

// A Column names one field of a run file row.
//
// The column layout is fixed by the solver that writes run files.
// Callers refer to columns by name rather than by raw index so that a
// layout change only has to be made here.
type Column int

const (
	// Time is the wall-clock time of the iteration, in nanoseconds.
	Time Column = 0
	// Iter is the iteration count.
	Iter Column = 1
	// ResidualRe is the real part of the solver residual.
	ResidualRe Column = 9
	// ResidualIm is the imaginary part of the solver residual.
	ResidualIm Column = 10
)

// TimeUnit is the unit of the Time column.
const TimeUnit = "ns"

func (c Column) String() string {
	switch c {
	case Time:
		return "time"
	case Iter:
		return "iter"
	case ResidualRe:
		return "re"
	case ResidualIm:
		return "im"
	}
	return fmt.Sprintf("col%d", int(c))
}

// Index returns the zero-based field index of c within a row.
func (c Column) Index() int {
	return int(c)
}
