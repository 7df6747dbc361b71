// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/benchplot/aggregate"
	"golang.org/x/benchplot/chart"
)

// testOptions reads and writes in a fresh temporary directory.
func testOptions(t *testing.T) (options, string) {
	dir := t.TempDir()
	return options{
		Config: aggregate.Config{Dir: dir},
		Style:  chart.DefaultStyle(),
		Out:    filepath.Join(dir, "perf.pdf"),
	}, dir
}

func writeRun(t *testing.T, dir string, i int, times ...float64) {
	t.Helper()
	var sb strings.Builder
	for j, tm := range times {
		fmt.Fprintf(&sb, "%v %d 0 0 0 0 0 0 0 1e-3 1e-3\n", tm, j+1)
	}
	if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("run_%d.dat", i)), []byte(sb.String()), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"1", "2"}, {"x"}, {"0"}} {
		opts, dir := testOptions(t)
		var stdout, stderr bytes.Buffer
		if code := run(&stdout, &stderr, args, opts); code != 1 {
			t.Errorf("%q: got exit status %d, want 1", args, code)
		}
		if !strings.Contains(stdout.String(), "usage: perfplot") {
			t.Errorf("%q: got stdout %q, want usage", args, stdout.String())
		}
		if ents, _ := os.ReadDir(dir); len(ents) != 0 {
			t.Errorf("%q: wrote %d files, want none", args, len(ents))
		}
	}
}

func TestPerfplot(t *testing.T) {
	opts, dir := testOptions(t)
	writeRun(t, dir, 1, 100, 200)
	writeRun(t, dir, 2, 300, 400)

	var stdout, stderr bytes.Buffer
	if code := run(&stdout, &stderr, []string{"2"}, opts); code != 0 {
		t.Fatalf("got exit status %d, want 0", code)
	}
	data, err := os.ReadFile(opts.Out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF")
	}
	if want := "2 runs, 2 iteration counts, mean time 200.0ns to 300.0ns"; !strings.Contains(stderr.String(), want) {
		t.Errorf("got summary %q, want it to contain %q", stderr.String(), want)
	}
}

func TestMalformed(t *testing.T) {
	opts, dir := testOptions(t)
	writeRun(t, dir, 1, 100, 200)
	if err := os.WriteFile(filepath.Join(dir, "run_2.dat"), []byte("300 1 0 0 0 0 0 0 0 x 0\n"), 0666); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run(&stdout, &stderr, []string{"2"}, opts); code != 1 {
		t.Errorf("got exit status %d, want 1", code)
	}
	if _, err := os.Stat(opts.Out); !os.IsNotExist(err) {
		t.Errorf("chart written despite malformed input")
	}
}
