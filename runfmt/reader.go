// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runfmt reads the per-run log files written by the solver.
//
// A run file is a whitespace-separated numeric table with one row per
// solver iteration. Blank lines and lines starting with '#' are
// ignored. Every row must have the same number of fields.
package runfmt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Reader reads a run file one row at a time.
//
// Its API is modeled on bufio.Scanner. To minimize allocation, a
// Reader retains ownership of the row it returns; a caller should copy
// anything it needs to retain.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error

	fileName string
	line     int
	width    int // fields per row, or 0 before the first row
	row      []float64
}

// A SyntaxError represents a syntax error on a particular line of a
// run file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

// NewReader constructs a reader to parse a run file from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.err = nil
	r.line = 0
	r.width = 0
	r.row = r.row[:0]
}

// Scan advances the reader to the next row and reports whether a row
// was read. The caller should use the Row method to get the row.
// If Scan reaches EOF, hits a malformed row, or an I/O error occurs,
// it returns false, in which case the caller should use the Err method
// to check for errors. Malformed rows are not skipped: the first one
// stops the reader.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.line++
		// We do everything in byte buffers to avoid allocation.
		line := trimSpace(r.s.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if err := r.parseRow(line); err != nil {
			r.err = err
			return false
		}
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// parseRow parses line into r.row. line has no leading white space.
func (r *Reader) parseRow(line []byte) *SyntaxError {
	r.row = r.row[:0]
	var f []byte
	for len(line) > 0 {
		f, line = splitField(line)
		val, err := atof(f)
		if err != nil {
			return r.newSyntaxError(fmt.Sprintf("field %d: parsing %q: %v", len(r.row), f, err.(*strconv.NumError).Err))
		}
		r.row = append(r.row, val)
	}
	if r.width == 0 {
		r.width = len(r.row)
	} else if len(r.row) != r.width {
		return r.newSyntaxError(fmt.Sprintf("row has %d fields, want %d", len(r.row), r.width))
	}
	return nil
}

// Row returns the row that was just read by Scan. The returned slice
// is only valid until the next call to Scan.
func (r *Reader) Row() []float64 {
	return r.row
}

// Line returns the line number of the row most recently read by Scan.
func (r *Reader) Line() int {
	return r.line
}

// Width returns the number of fields per row, or 0 if no row has been
// read yet.
func (r *Reader) Width() int {
	return r.width
}

// Err returns the first error that stopped Scan: a *SyntaxError for a
// malformed row, or an I/O error. If Scan stopped because it read the
// input to completion, Err returns nil.
func (r *Reader) Err() error {
	return r.err
}

func atof(x []byte) (float64, error) {
	// Try parsing as an integer. Iteration counts and nanosecond
	// timings almost always take this path.
	var val int64
	for _, ch := range x {
		digit := ch - '0'
		if digit >= 10 {
			goto fail
		}
		if val > (math.MaxInt64-10)/10 {
			goto fail // avoid int64 overflow
		}
		val = (val * 10) + int64(digit)
	}
	return float64(val), nil

fail:
	return strconv.ParseFloat(string(x), 64)
}

const isSpace uint64 = 1<<'\t' | 1<<'\n' | 1<<'\v' | 1<<'\f' | 1<<'\r' | 1<<' '

func isSpaceAt(x []byte, i int) (space bool, n int) {
	if x[i] < utf8.RuneSelf {
		return (isSpace>>x[i])&1 != 0, 1
	}
	r, n := utf8.DecodeRune(x[i:])
	return unicode.IsSpace(r), n
}

// splitField consumes and returns non-whitespace in x as field,
// consumes whitespace following the field, and then returns the
// remaining bytes of x.
func splitField(x []byte) (field, rest []byte) {
	var i int
	for i < len(x) {
		space, n := isSpaceAt(x, i)
		if space {
			break
		}
		i += n
	}
	field = x[:i]
	return field, trimSpace(x[i:])
}

// trimSpace strips leading white space from x.
func trimSpace(x []byte) []byte {
	for len(x) > 0 {
		space, n := isSpaceAt(x, 0)
		if !space {
			break
		}
		x = x[n:]
	}
	return x
}
