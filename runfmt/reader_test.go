// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func parseAll(t *testing.T, data string) ([][]float64, error) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var out [][]float64
	for r.Scan() {
		out = append(out, append([]float64(nil), r.Row()...))
	}
	return out, r.Err()
}

func TestReader(t *testing.T) {
	for _, test := range []struct {
		name string
		data string
		want [][]float64
	}{
		{"empty", "", nil},
		{"single", "1 2 3\n", [][]float64{{1, 2, 3}}},
		{"noNewline", "1 2 3", [][]float64{{1, 2, 3}}},
		{"floats", "-0.5 1e-3 +2.25 \n", [][]float64{{-0.5, 1e-3, 2.25}}},
		{"tabs", "1\t2\t 3\n4 \t5 6\n", [][]float64{{1, 2, 3}, {4, 5, 6}}},
		{"leadingSpace", "   7 8\n", [][]float64{{7, 8}}},
		{"comments", "# header\n1 2\n  # indented\n3 4\n", [][]float64{{1, 2}, {3, 4}}},
		{"blank", "\n1 2\n\n   \n3 4\n", [][]float64{{1, 2}, {3, 4}}},
		{"bigInt", "99999999999999999999 1\n", [][]float64{{1e20, 1}}},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseAll(t, test.data)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestReaderErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		data string
		rows int
		want string
	}{
		{"nonNumeric", "1 2\n3 x\n", 1, `test:2: field 1: parsing "x": invalid syntax`},
		{"ragged", "1 2 3\n4 5\n", 1, "test:2: row has 2 fields, want 3"},
		{"raggedLong", "# c\n1 2\n\n4 5 6\n", 1, "test:4: row has 3 fields, want 2"},
		{"first", "nan? 1\n", 0, `test:1: field 0: parsing "nan?": invalid syntax`},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseAll(t, test.data)
			if len(got) != test.rows {
				t.Errorf("got %d rows before the error, want %d", len(got), test.rows)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("got error %v, want *SyntaxError", err)
			}
			if se.Error() != test.want {
				t.Errorf("got error %s, want %s", se, test.want)
			}
		})
	}
}

func TestReaderReset(t *testing.T) {
	r := NewReader(strings.NewReader("1 2 3\n"), "a")
	for r.Scan() {
	}
	// A new input may have a different width.
	r.Reset(strings.NewReader("4 5\n"), "b")
	if !r.Scan() {
		t.Fatalf("Scan after Reset failed: %v", r.Err())
	}
	if got := r.Row(); !reflect.DeepEqual(got, []float64{4, 5}) {
		t.Errorf("got %v, want [4 5]", got)
	}
	if r.Line() != 1 || r.Width() != 2 {
		t.Errorf("got line %d width %d, want 1 2", r.Line(), r.Width())
	}
}
