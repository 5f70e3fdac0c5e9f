// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/dilo"

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(opts ...dilo.Option) *dilo.Circuit {
	b := newBuilder("HalfAdder", opts)
	b.add("xor", dilo.Xor())
	b.add("and", dilo.And())
	b.in(pA, "xor.a", "and.a")
	b.in(pB, "xor.b", "and.b")
	b.out("s", "xor.q")
	b.out("c", "and.q")
	return b.circuit()
}

// FullAdder returns a 3 bit adder made of two half adders.
//
//	Inputs: a, b, c
//	Outputs: s, cout
//	Function: s = lsb(a + b + c)
//	          cout = msb(a + b + c)
//
func FullAdder(opts ...dilo.Option) *dilo.Circuit {
	b := newBuilder("FullAdder", opts)
	b.add("ha1", HalfAdder(opts...))
	b.add("ha2", HalfAdder(opts...))
	b.add("or", dilo.Or())
	b.connect("ha1.s", "ha2.a")
	b.connect("ha1.c", "or.a")
	b.connect("ha2.c", "or.b")
	b.in(pA, "ha1.a")
	b.in(pB, "ha1.b")
	b.in("c", "ha2.b")
	b.out("s", "ha2.s")
	b.out("cout", "or.q")
	return b.circuit()
}
