// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot draws and dumps solver benchmark series.
//
// Usage:
//
//	benchplot [flags] err
//	benchplot [flags] perf N
//	benchplot [flags] dump err
//	benchplot [flags] dump perf N
//
// The err and perf commands draw the same charts as errplot and
// perfplot, but take the run directory, run file pattern, output
// directory, and output format from flags. The dump command prints
// the plotted series as a text table instead of drawing them.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"

	"golang.org/x/benchplot/aggregate"
	"golang.org/x/benchplot/chart"
	"golang.org/x/benchplot/runfmt"
)

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// settings are the persistent flags shared by every subcommand.
type settings struct {
	dir     string
	pattern string
	outDir  string
	format  string
}

func (s *settings) config() aggregate.Config {
	return aggregate.Config{Dir: s.dir, Pattern: s.pattern}
}

func (s *settings) style() chart.Style {
	st := chart.DefaultStyle()
	st.Format = s.format
	return st
}

func (s *settings) out(name string) string {
	return filepath.Join(s.outDir, name+"."+s.format)
}

func newRootCmd() *cobra.Command {
	s := new(settings)
	root := &cobra.Command{
		Use:   "benchplot",
		Short: "Draw convergence and performance charts from solver run files",
		Long: `Benchplot reads the per-run log files written by the solver and
draws the residual convergence of one run or the mean time per iteration
count over repeated runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.dir, "dir", ".",
		"Directory containing the run files")
	flags.StringVar(&s.pattern, "pattern", runfmt.DefaultPattern,
		"Run file name pattern, formatted with the run number")
	flags.StringVar(&s.outDir, "out-dir", ".",
		"Directory to write charts into")
	flags.StringVar(&s.format, "format", "pdf",
		"Chart format: pdf, svg or png")

	root.AddCommand(newErrCmd(s), newPerfCmd(s), newDumpCmd(s))
	return root
}

func newErrCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "err",
		Short: "Chart the residual convergence of run 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			es, err := aggregate.Errors(s.config())
			if err != nil {
				return err
			}
			out := s.out("err")
			if err := chart.Render(out, chart.Errors(es), s.style()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return nil
		},
	}
}

func newPerfCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "perf N",
		Short: "Chart the mean time per iteration count over runs 1 to N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			ps, err := aggregate.Perf(s.config(), n)
			if err != nil {
				return err
			}
			out := s.out("perf")
			if err := chart.Render(out, chart.Perf(ps), s.style()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return nil
		},
	}
}

func newDumpCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the charted series as a table",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "err",
		Short: "Print the residual magnitudes of run 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			es, err := aggregate.Errors(s.config())
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), es.Table())
		},
	}, &cobra.Command{
		Use:   "perf N",
		Short: "Print the mean time per iteration count over runs 1 to N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			ps, err := aggregate.Perf(s.config(), n)
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), ps.Table())
		},
	})
	return cmd
}

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid number of runs %q", arg)
	}
	return n, nil
}

func dump(w io.Writer, t *table.Table) error {
	formats := make([]string, len(t.Columns()))
	for i := range formats {
		formats[i] = "%.6g"
	}
	return table.Fprint(w, t, formats...)
}
