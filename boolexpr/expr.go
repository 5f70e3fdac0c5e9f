// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package boolexpr parses and evaluates boolean expressions.
//
// Expressions use single letter variables, the constants 0 and 1, the postfix
// complement operator ', * for AND and + for OR. * binds tighter than +.
// Parentheses group sub-expressions:
//
//	F = y' * z + w * x * y + w' * x' * y
//	G = ((A' + B) * C + C' * D)'
//
package boolexpr

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingVariable is returned by Eval when the expression references a
// variable absent from the value mapping.
var ErrMissingVariable = errors.New("missing variable")

// An Expr is a parsed boolean expression. An Expr holds no evaluation state
// and can be evaluated concurrently.
//
type Expr struct {
	src  string
	root node
}

type node interface {
	eval(vars map[string]bool) (bool, error)
	write(b *strings.Builder)
}

type variable string

func (v variable) eval(vars map[string]bool) (bool, error) {
	b, ok := vars[string(v)]
	if !ok {
		return false, errors.Wrapf(ErrMissingVariable, "%q", string(v))
	}
	return b, nil
}

func (v variable) write(b *strings.Builder) { b.WriteString(string(v)) }

type constant bool

func (c constant) eval(map[string]bool) (bool, error) { return bool(c), nil }

func (c constant) write(b *strings.Builder) {
	if c {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
}

type not struct{ x node }

func (n not) eval(vars map[string]bool) (bool, error) {
	v, err := n.x.eval(vars)
	return !v, err
}

func (n not) write(b *strings.Builder) {
	n.x.write(b)
	b.WriteByte('\'')
}

// op is an n-ary AND or OR.
type op struct {
	and  bool
	args []node
}

func (o op) eval(vars map[string]bool) (bool, error) {
	// no short-circuit: missing variables are reported whatever the values.
	r := o.and
	for _, a := range o.args {
		v, err := a.eval(vars)
		if err != nil {
			return false, err
		}
		if o.and {
			r = r && v
		} else {
			r = r || v
		}
	}
	return r, nil
}

func (o op) write(b *strings.Builder) {
	sep := " + "
	if o.and {
		sep = " * "
	}
	b.WriteByte('(')
	for i, a := range o.args {
		if i > 0 {
			b.WriteString(sep)
		}
		a.write(b)
	}
	b.WriteByte(')')
}

// Parse parses a boolean expression.
//
func Parse(s string) (*Expr, error) {
	p := &parser{l: lexer{input: s}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.t.typ != tEOF {
		return nil, parseError(s, p.t.pos, "unexpected "+p.t.String())
	}
	return &Expr{src: s, root: root}, nil
}

// MustParse is like Parse but panics if the expression cannot be parsed.
//
func MustParse(s string) *Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Eval evaluates the expression with the given variable values. It fails with
// ErrMissingVariable if a referenced variable has no value in vars.
//
func (e *Expr) Eval(vars map[string]bool) (bool, error) {
	return e.root.eval(vars)
}

// Vars returns the sorted list of distinct variables referenced by the
// expression.
//
func (e *Expr) Vars() []string {
	seen := make(map[string]struct{})
	var walk func(n node)
	walk = func(n node) {
		switch n := n.(type) {
		case variable:
			seen[string(n)] = struct{}{}
		case not:
			walk(n.x)
		case op:
			for _, a := range n.args {
				walk(a)
			}
		}
	}
	walk(e.root)
	r := make([]string, 0, len(seen))
	for v := range seen {
		r = append(r, v)
	}
	sort.Strings(r)
	return r
}

// Source returns the expression as it was given to Parse.
//
func (e *Expr) Source() string { return e.src }

// String returns the expression in fully parenthesized form.
//
func (e *Expr) String() string {
	var b strings.Builder
	e.root.write(&b)
	return b.String()
}
