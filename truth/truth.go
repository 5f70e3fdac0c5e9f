// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package truth generates exhaustive input combinations and truth tables.
//
package truth

import (
	"github.com/db47h/dilo"
	"github.com/pkg/errors"
)

// MaxVars is the maximum number of variables accepted by Combinations.
const MaxVars = 24

// A Row is one assignment of boolean values to an ordered list of names.
//
type Row struct {
	Names  []string
	Values []bool
}

// Map returns the row as a name to value mapping.
//
func (r Row) Map() map[string]bool {
	m := make(map[string]bool, len(r.Names))
	for i, n := range r.Names {
		m[n] = r.Values[i]
	}
	return m
}

// Signals returns the row as a list of signals, in name order.
//
func (r Row) Signals() []dilo.Signal {
	s := make([]dilo.Signal, len(r.Names))
	for i, n := range r.Names {
		s[i] = dilo.Signal{Port: n, Value: r.Values[i]}
	}
	return s
}

// Combinations returns every assignment of boolean values to names. Rows are
// in binary counter order from all false to all true, with the first name as
// the most significant bit.
//
// Names must be distinct.
//
func Combinations(names []string) ([]Row, error) {
	if len(names) > MaxVars {
		return nil, errors.Errorf("too many variables: %d > %d", len(names), MaxVars)
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return nil, errors.Errorf("duplicate name %q", n)
		}
		seen[n] = struct{}{}
	}
	names = append([]string(nil), names...)
	tot := 1 << uint(len(names))
	rows := make([]Row, tot)
	for i := 0; i < tot; i++ {
		vs := make([]bool, len(names))
		for bit := range vs {
			vs[len(vs)-bit-1] = i&(1<<uint(bit)) != 0
		}
		rows[i] = Row{Names: names, Values: vs}
	}
	return rows, nil
}

// Table returns the values of fn for every combination of names.
//
func Table(names []string, fn func(Row) (bool, error)) ([]bool, error) {
	rows, err := Combinations(names)
	if err != nil {
		return nil, err
	}
	r := make([]bool, len(rows))
	for i, row := range rows {
		if r[i], err = fn(row); err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
	}
	return r, nil
}

// DeviceTable applies every combination of the inputs of d and collects the
// value of output out after each one.
//
func DeviceTable(d dilo.Device, out string) ([]bool, error) {
	return Table(d.Inputs(), func(r Row) (bool, error) {
		if err := dilo.Apply(d, r.Signals()...); err != nil {
			return false, err
		}
		return d.Output(out)
	})
}
