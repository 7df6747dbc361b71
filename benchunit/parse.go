// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit converts solver timing units to base units and
// formats values in those units.
//
// Run files record wall time in nanoseconds. Plots and summaries are
// in seconds, so every timing value passes through Tidy before it is averaged or drawn.
package benchunit

import "unicode"

// A token is one multiplicative component of a unit such as
// "ns/iter". Components after a '/' are in the denominator.
type token struct {
	text  string
	pos   int
	denom bool
}

// tokens splits unit into its multiplicative components. Separators
// are '*', '/', '-' and white space.
func tokens(unit string) []token {
	var toks []token
	denom := false
	start := -1
	flush := func(end int) {
		if start >= 0 {
			toks = append(toks, token{unit[start:end], start, denom})
			start = -1
		}
	}
	for i, r := range unit {
		switch {
		case r == '*':
			flush(i)
			denom = false
		case r == '/':
			flush(i)
			denom = true
		case r == '-' || unicode.IsSpace(r):
			flush(i)
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(unit))
	return toks
}
