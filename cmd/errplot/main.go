// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Errplot plots the convergence of a solver run.
//
// Usage:
//
//	errplot
//
// Errplot reads run_1.dat in the current directory and writes a
// semi-log chart of the magnitude of the real and imaginary residuals
// against the iteration count to err.pdf, replacing any existing file.
//
// A residual of exactly zero cannot be drawn on the log axis; errplot
// reports it as an error and writes no chart.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/benchplot/aggregate"
	"golang.org/x/benchplot/benchunit"
	"golang.org/x/benchplot/chart"
)

type options struct {
	Config aggregate.Config
	Style  chart.Style
	Out    string
}

func defaultOptions() options {
	return options{aggregate.DefaultConfig(), chart.DefaultStyle(), "err.pdf"}
}

func main() {
	log.SetPrefix("errplot: ")
	log.SetFlags(0)
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:], defaultOptions()))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: errplot\n")
}

// run is the body of errplot. It returns the process exit status.
func run(stdout, stderr io.Writer, args []string, opts options) int {
	fs := flag.NewFlagSet("errplot", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { usage(stdout) }
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return 1
	}

	es, err := aggregate.Errors(opts.Config)
	if err != nil {
		log.Print(err)
		return 1
	}
	if err := chart.Render(opts.Out, chart.Errors(es), opts.Style); err != nil {
		log.Print(err)
		return 1
	}
	fmt.Fprintf(stderr, "%s: %d iterations, final |re| %s, |im| %s\n",
		opts.Out, len(es.Iter), benchunit.Scale(last(es.Re)), benchunit.Scale(last(es.Im)))
	return 0
}

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}
