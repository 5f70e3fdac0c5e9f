// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/dilo"
	"github.com/db47h/dilo/boolexpr"
	"github.com/db47h/dilo/truth"
)

func rowString(r truth.Row) string {
	var b strings.Builder
	for i, n := range r.Names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		if r.Values[i] {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	}
	return b.String()
}

// A Mismatch reports an input combination for which two evaluations differ.
//
type Mismatch struct {
	Row      truth.Row
	Output   string
	Expected bool
	Got      bool
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s => %s=%v, got %v", rowString(m.Row), m.Output, m.Expected, m.Got)
}

// Expr returns every combination of the inputs of d for which output out
// differs from the expression expr. Expression variables are bound to the
// inputs of d by name.
//
func Expr(d dilo.Device, out string, expr *boolexpr.Expr) ([]Mismatch, error) {
	rows, err := truth.Combinations(d.Inputs())
	if err != nil {
		return nil, err
	}
	var ms []Mismatch
	for _, r := range rows {
		if err = dilo.Apply(d, r.Signals()...); err != nil {
			return nil, err
		}
		got, err := d.Output(out)
		if err != nil {
			return nil, err
		}
		ex, err := expr.Eval(r.Map())
		if err != nil {
			return nil, err
		}
		if got != ex {
			ms = append(ms, Mismatch{r, out, ex, got})
		}
	}
	return ms, nil
}

// CompareExpr checks output out of d against expr over every combination of
// the inputs of d.
//
func CompareExpr(t testing.TB, d dilo.Device, out string, expr string) {
	t.Helper()
	e, err := boolexpr.Parse(expr)
	if err != nil {
		t.Fatal(err)
	}
	ms, err := Expr(d, out, e)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range ms {
		t.Errorf("\nExpected %s", m)
	}
}

// CompareDevices takes two devices and compares their outputs given the same
// inputs. Both devices must have the same input/output interface.
//
func CompareDevices(t testing.TB, d1, d2 dilo.Device) {
	t.Helper()

	in1, in2 := d1.Inputs(), d2.Inputs()
	out1, out2 := d1.Outputs(), d2.Outputs()
	if len(in1) != len(in2) {
		t.Fatal("len(d1.Inputs()) != len(d2.Inputs())")
	}
	if len(out1) != len(out2) {
		t.Fatal("len(d1.Outputs()) != len(d2.Outputs())")
	}
	for i := range in1 {
		if in1[i] != in2[i] {
			t.Fatalf("d1.Inputs()[i] = %q != d2.Inputs()[i] = %q", in1[i], in2[i])
		}
	}
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("d1.Outputs()[i] = %q != d2.Outputs()[i] = %q", out1[i], out2[i])
		}
	}

	rows, err := truth.Combinations(in1)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range rows {
		if err = dilo.Apply(d1, r.Signals()...); err != nil {
			t.Fatal(err)
		}
		if err = dilo.Apply(d2, r.Signals()...); err != nil {
			t.Fatal(err)
		}
		for _, o := range out1 {
			v1, err := d1.Output(o)
			if err != nil {
				t.Fatal(err)
			}
			v2, err := d2.Output(o)
			if err != nil {
				t.Fatal(err)
			}
			if v1 != v2 {
				t.Fatalf("\nExpected %s", Mismatch{r, o, v1, v2})
			}
		}
	}
}
