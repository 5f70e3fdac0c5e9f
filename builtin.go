// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dilo

import (
	"github.com/pkg/errors"
)

// common pin names
const (
	pA = "a"
	pB = "b"
	pQ = "q"
)

// An UpdateFn computes the outputs of a primitive device from its inputs.
// in and out are indexed like the Inputs and Outputs of the PartSpec.
//
type UpdateFn func(in, out []bool)

// A PartSpec describes a primitive device kind: its name, its fixed input
// and output names and its update function.
//
// Custom primitives are declared like this:
//
//	var majority = &dilo.PartSpec{
//		Name:    "MAJ",
//		Inputs:  []string{"a", "b", "c"},
//		Outputs: []string{"q"},
//		Update: func(in, out []bool) {
//			out[0] = in[0] && in[1] || in[0] && in[2] || in[1] && in[2]
//		},
//	}
//
//	d := majority.New()
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct.
	Inputs []string
	// Output pin names. Must be distinct.
	Outputs []string
	// Update function. A nil Update leaves the outputs unchanged.
	Update UpdateFn
	// Init holds initial output values. If shorter than Outputs, missing
	// values default to false. Init only matters for parts whose Update does
	// not write all outputs (constants).
	Init []bool
}

// New returns a new instance of the part. The outputs of the returned part are
// computed before New returns.
//
func (p *PartSpec) New() *Part {
	d := &Part{
		spec: p,
		in:   make([]bool, len(p.Inputs)),
		out:  make([]bool, len(p.Outputs)),
	}
	copy(d.out, p.Init)
	d.update()
	return d
}

// Part is an instance of a PartSpec.
//
type Part struct {
	spec *PartSpec
	in   []bool
	out  []bool
}

// Name returns the name of the part's PartSpec.
//
func (p *Part) Name() string { return p.spec.Name }

// Inputs implements Device.
//
func (p *Part) Inputs() []string { return p.spec.Inputs }

// Outputs implements Device.
//
func (p *Part) Outputs() []string { return p.spec.Outputs }

// SetInput implements Device.
//
func (p *Part) SetInput(name string, value bool) error {
	i := indexOf(p.spec.Inputs, name)
	if i < 0 {
		return errors.Wrapf(ErrNoSuchPort, "%s has no input %q", p.spec.Name, name)
	}
	p.in[i] = value
	p.update()
	return nil
}

// Output implements Device.
//
func (p *Part) Output(name string) (bool, error) {
	i := indexOf(p.spec.Outputs, name)
	if i < 0 {
		return false, errors.Wrapf(ErrNoSuchPort, "%s has no output %q", p.spec.Name, name)
	}
	return p.out[i], nil
}

func (p *Part) update() {
	if p.spec.Update != nil {
		p.spec.Update(p.in, p.out)
	}
}

var (
	gateIn  = []string{pA, pB}
	unaryIn = []string{pA}
	gateOut = []string{pQ}
)

func newGate(name string, fn func(a, b bool) bool) *PartSpec {
	return &PartSpec{
		Name:    name,
		Inputs:  gateIn,
		Outputs: gateOut,
		Update:  func(in, out []bool) { out[0] = fn(in[0], in[1]) },
	}
}

var (
	logic0Spec = &PartSpec{Name: "LOGIC0", Outputs: gateOut, Init: []bool{false}}
	logic1Spec = &PartSpec{Name: "LOGIC1", Outputs: gateOut, Init: []bool{true}}
	bufferSpec = &PartSpec{Name: "BUFFER", Inputs: unaryIn, Outputs: gateOut,
		Update: func(in, out []bool) { out[0] = in[0] },
	}
	notSpec = &PartSpec{Name: "NOT", Inputs: unaryIn, Outputs: gateOut,
		Update: func(in, out []bool) { out[0] = !in[0] },
	}

	andSpec  = newGate("AND", func(a, b bool) bool { return a && b })
	nandSpec = newGate("NAND", func(a, b bool) bool { return !(a && b) })
	orSpec   = newGate("OR", func(a, b bool) bool { return a || b })
	norSpec  = newGate("NOR", func(a, b bool) bool { return !(a || b) })
	xorSpec  = newGate("XOR", func(a, b bool) bool { return a != b })
	xnorSpec = newGate("XNOR", func(a, b bool) bool { return a == b })
)

// Logic0 returns a constant false source.
//
//	Outputs: q
//	Function: q = false
//
func Logic0() *Part { return logic0Spec.New() }

// Logic1 returns a constant true source.
//
//	Outputs: q
//	Function: q = true
//
func Logic1() *Part { return logic1Spec.New() }

// Buffer returns a buffer.
//
//	Inputs: a
//	Outputs: q
//	Function: q = a
//
func Buffer() *Part { return bufferSpec.New() }

// Not returns an inverter.
//
//	Inputs: a
//	Outputs: q
//	Function: q = !a
//
func Not() *Part { return notSpec.New() }

// And returns an AND gate.
//
//	Inputs: a, b
//	Outputs: q
//	Function: q = a && b
//
func And() *Part { return andSpec.New() }

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: q
//	Function: q = !(a && b)
//
func Nand() *Part { return nandSpec.New() }

// Or returns an OR gate.
//
//	Inputs: a, b
//	Outputs: q
//	Function: q = a || b
//
func Or() *Part { return orSpec.New() }

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: q
//	Function: q = !(a || b)
//
func Nor() *Part { return norSpec.New() }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: q
//	Function: q = a && !b || !a && b
//
func Xor() *Part { return xorSpec.New() }

// Xnor returns a XNOR gate.
//
//	Inputs: a, b
//	Outputs: q
//	Function: q = a && b || !a && !b
//
func Xnor() *Part { return xnorSpec.New() }
