// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestTidy(t *testing.T) {
	test := func(unit, tidied string, factor float64) {
		t.Helper()
		gotFactor, got := Tidy(1, unit)
		if got != tidied || gotFactor != factor {
			t.Errorf("for %s, want *%g %s, got *%g %s", unit, factor, tidied, gotFactor, got)
		}
	}

	test("ns", "sec", 1e-9)
	test("ns/iter", "sec/iter", 1e-9)
	test("x-ns/iter", "x-sec/iter", 1e-9)
	test("ms", "sec", 1e-3)
	test("µs", "sec", 1e-6)
	test("sec", "sec", 1)
	test("iter", "iter", 1)
	test("iter/ns", "iter/ns", 1)
}

func TestTidyValue(t *testing.T) {
	// The product is computed at run time, so it is the same float64
	// that Tidy produces (3.0000000000000004e-07, not the constant 3e-07).
	ns := 300.0
	want := ns * 1e-9
	if got, unit := Tidy(ns, "ns"); got != want || unit != "sec" {
		t.Errorf("Tidy(300, ns) = %v %s, want %v sec", got, unit, want)
	}
}
