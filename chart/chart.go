// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders benchmark series as log-scale scatter plots.
//
// Styling is fixed per chart kind and supplied as an explicit Style
// value; DefaultStyle matches the published figures.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Scaling selects which axes are logarithmic.
type Scaling int

const (
	// SemiLogY has a linear x axis and a logarithmic y axis.
	SemiLogY Scaling = iota
	// LogLog has logarithmic x and y axes.
	LogLog
)

func (s Scaling) String() string {
	switch s {
	case SemiLogY:
		return "semilogy"
	case LogLog:
		return "loglog"
	}
	return fmt.Sprintf("Scaling(%d)", int(s))
}

func (s Scaling) logX() bool { return s == LogLog }

// Style is the visual style of a chart.
type Style struct {
	Font        font.Font // typeface; Size is ignored in favor of FontSize
	FontSize    vg.Length // axis labels, tick labels and legend
	Width       vg.Length
	Height      vg.Length
	GlyphRadius vg.Length
	Format      string // "pdf", "svg" or "png"
	DPI         int    // png only
}

// DefaultStyle returns the style of the published figures: a 10×8 inch
// PDF with 30pt serif text.
func DefaultStyle() Style {
	return Style{
		Font:        font.Font{Typeface: "Liberation", Variant: "Serif"},
		FontSize:    vg.Points(30),
		Width:       10 * vg.Inch,
		Height:      8 * vg.Inch,
		GlyphRadius: vg.Points(5),
		Format:      "pdf",
		DPI:         300,
	}
}

// A Series is one set of points drawn with a single glyph.
type Series struct {
	XY    plotter.XYs
	Label string // legend entry; empty for none
	Glyph draw.GlyphDrawer
	Color color.Color
}

// Points pairs xs with ys. The shorter of the two determines the
// number of points.
func Points(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	xy := make(plotter.XYs, n)
	for i := range xy {
		xy[i].X, xy[i].Y = xs[i], ys[i]
	}
	return xy
}

// A Chart describes one figure.
type Chart struct {
	Scaling Scaling
	XLabel  string
	YLabel  string
	Series  []Series
	Legend  bool // draw a legend in the upper right
}

// ErrNoData is returned when a chart has no points to draw.
var ErrNoData = errors.New("chart has no data")

// A DomainError reports a value that cannot be drawn on its axis,
// such as a non-positive value on a logarithmic axis.
type DomainError struct {
	Series string
	Index  int
	Axis   string
	Value  float64
}

func (e *DomainError) Error() string {
	name := e.Series
	if name == "" {
		name = "series"
	}
	return fmt.Sprintf("%s: point %d: cannot draw %s = %v", name, e.Index, e.Axis, e.Value)
}

func checkValue(s *Series, i int, axis string, v float64, log bool) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || (log && v <= 0) {
		return &DomainError{s.Label, i, axis, v}
	}
	return nil
}

// check reports the first point of c that cannot be drawn.
func (c *Chart) check() error {
	n := 0
	for si := range c.Series {
		s := &c.Series[si]
		for i, pt := range s.XY {
			if err := checkValue(s, i, "x", pt.X, c.Scaling.logX()); err != nil {
				return err
			}
			if err := checkValue(s, i, "y", pt.Y, true); err != nil {
				return err
			}
		}
		n += len(s.XY)
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// Plot builds the gonum plot for c in style st.
func (c *Chart) Plot(st Style) (*plot.Plot, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	pl := plot.New()
	setFont(&pl.X.Label.TextStyle, st)
	setFont(&pl.Y.Label.TextStyle, st)
	setFont(&pl.X.Tick.Label, st)
	setFont(&pl.Y.Tick.Label, st)
	setFont(&pl.Legend.TextStyle, st)

	pl.X.Label.Text = c.XLabel
	pl.Y.Label.Text = c.YLabel

	pl.Y.Scale = plot.LogScale{}
	pl.Y.Tick.Marker = logTicks{}
	if c.Scaling.logX() {
		pl.X.Scale = plot.LogScale{}
		pl.X.Tick.Marker = logTicks{}
	}

	pl.Legend.Top = true
	pl.Legend.Left = false

	for _, s := range c.Series {
		sc, err := plotter.NewScatter(s.XY)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = s.Color
		sc.GlyphStyle.Radius = st.GlyphRadius
		if s.Glyph != nil {
			sc.GlyphStyle.Shape = s.Glyph
		}
		pl.Add(sc)
		if c.Legend && s.Label != "" {
			pl.Legend.Add(s.Label, sc)
		}
	}
	padLogRange(&pl.Y)
	if c.Scaling.logX() {
		padLogRange(&pl.X)
	}
	return pl, nil
}

// padLogRange widens a single-valued log axis by a decade each way.
// Left alone, plot widens it by ±1, which can reach non-positive values.
func padLogRange(ax *plot.Axis) {
	if ax.Min == ax.Max {
		ax.Min /= 10
		ax.Max *= 10
	}
}

func setFont(sty *text.Style, st Style) {
	sty.Font = st.Font
	sty.Font.Size = st.FontSize
}

// Render draws c and writes it to path in st.Format, replacing any
// existing file. Nothing is written if c cannot be drawn; if writing
// fails part way, the partial file is removed.
func Render(path string, c *Chart, st Style) (err error) {
	pl, err := c.Plot(st)
	if err != nil {
		return err
	}
	can, err := newCanvas(st)
	if err != nil {
		return err
	}
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	_, err = can.WriteTo(f)
	return err
}

func newCanvas(st Style) (vg.CanvasWriterTo, error) {
	switch st.Format {
	case "", "pdf":
		return vgpdf.New(st.Width, st.Height), nil
	case "svg":
		return vgsvg.New(st.Width, st.Height), nil
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(st.Width, st.Height),
			vgimg.UseDPI(st.DPI), vgimg.UseBackgroundColor(color.White))}, nil
	}
	return nil, fmt.Errorf("unknown chart format %q", st.Format)
}

// logTicks places a tick at every integer multiple of each power of
// ten in [min, max] and labels the powers of ten with their shortest
// representation ("1e-05", "100"). If fewer than two powers of ten
// fall in range, every tick is labelled ("2e-07", "3e-07").
// A range holding no such multiple gets labelled ticks at its ends.
type logTicks struct{}

func (logTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max < min || math.IsInf(max, 0) {
		return nil
	}
	lo := int(math.Floor(math.Log10(min)))
	hi := int(math.Floor(math.Log10(max))) + 1 // Log10 may round down at exact powers

	var ticks []plot.Tick
	decades := 0
	for exp := lo; exp <= hi; exp++ {
		for m := 1; m < 10; m++ {
			// Parse the literal so each tick is the closest float to
			// m×10^exp, not an accumulated product.
			v, _ := strconv.ParseFloat(fmt.Sprintf("%de%d", m, exp), 64)
			if v < min || v > max {
				continue
			}
			tick := plot.Tick{Value: v}
			if m == 1 {
				tick.Label = strconv.FormatFloat(v, 'g', -1, 64)
				decades++
			}
			ticks = append(ticks, tick)
		}
	}
	if len(ticks) == 0 {
		// No multiple of a power of ten in range: mark the ends.
		return []plot.Tick{
			{Value: min, Label: strconv.FormatFloat(min, 'g', 3, 64)},
			{Value: max, Label: strconv.FormatFloat(max, 'g', 3, 64)},
		}
	}
	if decades < 2 {
		for i := range ticks {
			ticks[i].Label = strconv.FormatFloat(ticks[i].Value, 'g', -1, 64)
		}
	}
	return ticks
}
