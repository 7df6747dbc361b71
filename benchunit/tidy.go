// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

// timeFactors maps pre-scaled time units to their factor relative to
// seconds.
var timeFactors = map[string]float64{
	"ns":  1e-9,
	"us":  1e-6,
	"µs":  1e-6,
	"ms":  1e-3,
	"s":   1,
	"sec": 1,
}

// Tidy normalizes a value with a (possibly pre-scaled) time unit into
// seconds. For example, 100 "ns" becomes 1e-7 "sec", and "ns/iter"
// becomes "sec/iter". Components in the denominator are left alone.
// Units that contain no time component are returned unchanged.
func Tidy(value float64, unit string) (tidiedValue float64, tidiedUnit string) {
	newUnit, factor := tidyUnit(unit)
	return value * factor, newUnit
}

func tidyUnit(unit string) (tidied string, factor float64) {
	// Fast path for the solver's own timing column.
	if unit == "ns" {
		return "sec", 1e-9
	}

	factor = 1
	toks := tokens(unit)
	// Apply edits back to front so earlier positions stay valid.
	for i := len(toks) - 1; i >= 0; i-- {
		tok := toks[i]
		f, ok := timeFactors[tok.text]
		if !ok || tok.denom {
			continue
		}
		unit = unit[:tok.pos] + "sec" + unit[tok.pos+len(tok.text):]
		factor *= f
	}
	return unit, factor
}
