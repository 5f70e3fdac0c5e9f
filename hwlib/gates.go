// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable circuits built from the dilo
// primitives.
//
// All constructors return fully labeled circuits so that they can be nested
// into other circuits. Input names are single letters so that they can be
// used as variables of boolexpr expressions. Options are applied to the returned circuit and to any
// nested library circuit.
//
package hwlib

import (
	"sort"

	"github.com/db47h/dilo"
	"github.com/pkg/errors"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pQ   = "q"
	pX   = "x"
	pSel = "s"
	pOut = "out"
)

// builder records the first error encountered while wiring a circuit.
//
type builder struct {
	name string
	c    *dilo.Circuit
	err  error
}

func newBuilder(name string, opts []dilo.Option) *builder {
	return &builder{name: name, c: dilo.NewCircuit(opts...)}
}

func (b *builder) add(id string, d dilo.Device) {
	if b.err == nil {
		b.err = b.c.Add(id, d)
	}
}

// connect connects two "device.port" addresses.
func (b *builder) connect(from, to string) {
	if b.err != nil {
		return
	}
	src, err := dilo.ParseAddress(from)
	if err != nil {
		b.err = err
		return
	}
	dst, err := dilo.ParseAddress(to)
	if err != nil {
		b.err = err
		return
	}
	b.err = b.c.Connect(src.Device, src.Port, dst.Device, dst.Port)
}

func (b *builder) in(label string, addrs ...string) {
	if b.err == nil {
		b.err = b.c.LabelInputs(label, addrs...)
	}
}

func (b *builder) out(label, addr string) {
	if b.err == nil {
		b.err = b.c.LabelOutput(label, addr)
	}
}

// circuit returns the built circuit. Library circuits are static: a wiring
// error is a programming error.
func (b *builder) circuit() *dilo.Circuit {
	if b.err != nil {
		panic(errors.Wrap(b.err, b.name))
	}
	return b.c
}

// A NewFn returns a new instance of a library circuit.
//
type NewFn func(opts ...dilo.Option) *dilo.Circuit

var parts = map[string]NewFn{
	"halfadder": HalfAdder,
	"fulladder": FullAdder,
	"mux":       Mux,
	"dmux":      DMux,
	"srlatch":   SRLatch,
	"dlatch":    DLatch,
}

// Lookup returns the constructor of the named library circuit.
//
func Lookup(name string) (NewFn, bool) {
	fn, ok := parts[name]
	return fn, ok
}

// Names returns the sorted names of all library circuits.
//
func Names() []string {
	r := make([]string, 0, len(parts))
	for n := range parts {
		r = append(r, n)
	}
	sort.Strings(r)
	return r
}

// Mux returns a multiplexer.
//
//	Inputs: a, b, s
//	Outputs: out
//	Function: If s=0 then out=a else out=b.
//
func Mux(opts ...dilo.Option) *dilo.Circuit {
	b := newBuilder("Mux", opts)
	b.add("ns", dilo.Not())
	b.add("and0", dilo.And())
	b.add("and1", dilo.And())
	b.add("or", dilo.Or())
	b.connect("ns.q", "and0.b")
	b.connect("and0.q", "or.a")
	b.connect("and1.q", "or.b")
	b.in(pA, "and0.a")
	b.in(pB, "and1.a")
	b.in(pSel, "ns.a", "and1.b")
	b.out(pOut, "or.q")
	return b.circuit()
}

// DMux returns a demultiplexer.
//
//	Inputs: x, s
//	Outputs: a, b
//	Function: If s=0 then {a=x, b=0} else {a=0, b=x}
//
func DMux(opts ...dilo.Option) *dilo.Circuit {
	b := newBuilder("DMux", opts)
	b.add("ns", dilo.Not())
	b.add("anda", dilo.And())
	b.add("andb", dilo.And())
	b.connect("ns.q", "anda.b")
	b.in(pX, "anda.a", "andb.a")
	b.in(pSel, "ns.a", "andb.b")
	b.out(pA, "anda.q")
	b.out(pB, "andb.q")
	return b.circuit()
}
