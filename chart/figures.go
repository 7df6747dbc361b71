// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/benchplot/aggregate"
)

// Errors returns the convergence chart: |Re| as black circles and |Im|
// as red crosses against iteration, on a semi-log scale.
func Errors(s *aggregate.ErrorSeries) *Chart {
	return &Chart{
		Scaling: SemiLogY,
		XLabel:  "Iterations",
		YLabel:  "log|ε|",
		Legend:  true,
		Series: []Series{
			{XY: Points(s.Iter, s.Re), Label: "Re(ω)", Glyph: draw.CircleGlyph{}, Color: black()},
			{XY: Points(s.Iter, s.Im), Label: "Im(ω)", Glyph: CrossGlyph{}, Color: red(0xff)},
		},
	}
}

// Perf returns the performance chart: mean time per iteration count as
// black circles on a log-log scale.
func Perf(s *aggregate.PerfSeries) *Chart {
	return &Chart{
		Scaling: LogLog,
		XLabel:  "Iterations",
		YLabel:  "t (s)",
		Series: []Series{
			{XY: Points(s.Iter, s.Time), Glyph: draw.CircleGlyph{}, Color: black()},
		},
	}
}
