// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Perfplot plots the wall time of repeated solver runs against the
// iteration count.
//
// Usage:
//
//	perfplot N
//
// Perfplot reads the timing column of run_1.dat through run_N.dat in
// the current directory, converts it from nanoseconds to seconds,
// averages it over the N runs row by row, and writes a log-log chart
// of the mean time against the iteration counts of run_1.dat to
// perf.pdf, replacing any existing file.
//
// Every run must have the same iteration counts as run_1.dat.
// If any run is missing, malformed, or misaligned, or if a time or
// iteration count is not positive, perfplot reports the error and
// writes no chart.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"golang.org/x/benchplot/aggregate"
	"golang.org/x/benchplot/benchunit"
	"golang.org/x/benchplot/chart"
)

// options are the fixed inputs and outputs of a perfplot run.
type options struct {
	Config aggregate.Config
	Style  chart.Style
	Out    string
}

func defaultOptions() options {
	return options{aggregate.DefaultConfig(), chart.DefaultStyle(), "perf.pdf"}
}

func main() {
	log.SetPrefix("perfplot: ")
	log.SetFlags(0)
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:], defaultOptions()))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: perfplot <number of files to average>\n")
}

// run is the body of perfplot. It returns the process exit status.
func run(stdout, stderr io.Writer, args []string, opts options) int {
	fs := flag.NewFlagSet("perfplot", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { usage(stdout) }
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil || n < 1 {
		fmt.Fprintf(stdout, "perfplot: invalid number of files %q\n", fs.Arg(0))
		fs.Usage()
		return 1
	}

	if err := perfplot(stderr, n, opts); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func perfplot(stderr io.Writer, n int, opts options) error {
	ps, err := aggregate.Perf(opts.Config, n)
	if err != nil {
		return err
	}
	if err := chart.Render(opts.Out, chart.Perf(ps), opts.Style); err != nil {
		return err
	}
	s := aggregate.Summary(ps.Time)
	fmt.Fprintf(stderr, "%s: %d runs, %d iteration counts, mean time %ss to %ss\n",
		opts.Out, ps.Runs, s.N, benchunit.Scale(s.Min), benchunit.Scale(s.Max))
	return nil
}
