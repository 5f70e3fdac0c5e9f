// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/dilo"

// SRLatch returns a set/reset latch made of two cross-coupled NOR gates.
//
//	Inputs: r, s
//	Outputs: q, nq
//	Function: s=1 sets q, r=1 resets q, r=s=0 holds q. nq = !q unless r=s=1.
//
// A new latch is set.
//
func SRLatch(opts ...dilo.Option) *dilo.Circuit {
	b := newBuilder("SRLatch", opts)
	b.add("r", dilo.Nor())
	b.add("s", dilo.Nor())
	b.connect("r.q", "s.a")
	b.connect("s.q", "r.b")
	b.in("r", "r.a")
	b.in("s", "s.b")
	b.out(pQ, "r.q")
	b.out("nq", "s.q")
	return b.circuit()
}

// DLatch returns a gated D latch.
//
//	Inputs: d, e
//	Outputs: q, nq
//	Function: If e=1 then q=d else q holds its value.
//
func DLatch(opts ...dilo.Option) *dilo.Circuit {
	b := newBuilder("DLatch", opts)
	b.add("nd", dilo.Not())
	b.add("set", dilo.And())
	b.add("reset", dilo.And())
	b.add("sr", SRLatch(opts...))
	b.connect("nd.q", "reset.a")
	b.connect("set.q", "sr.s")
	b.connect("reset.q", "sr.r")
	b.in("d", "nd.a", "set.a")
	b.in("e", "set.b", "reset.b")
	b.out(pQ, "sr.q")
	b.out("nq", "sr.nq")
	return b.circuit()
}
