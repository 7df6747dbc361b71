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
)

func writeRuns(t *testing.T, dir string, runs ...[]float64) {
	t.Helper()
	for i, times := range runs {
		var sb strings.Builder
		for j, tm := range times {
			fmt.Fprintf(&sb, "%v %d 0 0 0 0 0 0 0 %v -%v\n", tm, j+1, 1/float64(j+2), 1/float64(j+3))
		}
		path := filepath.Join(dir, fmt.Sprintf("run_%d.dat", i+1))
		if err := os.WriteFile(path, []byte(sb.String()), 0666); err != nil {
			t.Fatal(err)
		}
	}
}

func execute(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

func TestCharts(t *testing.T) {
	dir := t.TempDir()
	writeRuns(t, dir, []float64{100, 200}, []float64{300, 400})

	for _, format := range []string{"pdf", "svg"} {
		if _, err := execute(t, "--dir", dir, "--out-dir", dir, "--format", format, "err"); err != nil {
			t.Fatalf("err: %v", err)
		}
		if _, err := execute(t, "--dir", dir, "--out-dir", dir, "--format", format, "perf", "2"); err != nil {
			t.Fatalf("perf: %v", err)
		}
		for _, name := range []string{"err", "perf"} {
			if _, err := os.Stat(filepath.Join(dir, name+"."+format)); err != nil {
				t.Errorf("%s.%s: %v", name, format, err)
			}
		}
	}
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	writeRuns(t, dir, []float64{100, 200}, []float64{300, 400})

	out, err := execute(t, "--dir", dir, "dump", "perf", "2")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"iter", "sec", "2e-07", "3e-07"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump perf output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "--dir", dir, "dump", "err")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"|re|", "|im|", "0.5", "0.333333"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump err output missing %q:\n%s", want, out)
		}
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	writeRuns(t, dir, []float64{100, 200})

	for _, args := range [][]string{
		{"--dir", dir, "perf"},
		{"--dir", dir, "perf", "zero"},
		{"--dir", dir, "perf", "0"},
		{"--dir", dir, "perf", "2"}, // run_2.dat is missing
		{"--dir", dir, "err", "extra"},
		{"--dir", dir, "--out-dir", dir, "--format", "gif", "err"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%q: succeeded, want error", args)
		}
	}
	if ents, _ := os.ReadDir(dir); len(ents) != 1 {
		t.Errorf("got %d files in run directory, want only run_1.dat", len(ents))
	}
}
