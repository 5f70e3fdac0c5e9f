// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package dilo provides a zero-delay simulator for networks of digital logic
devices.

Every simulated element implements the Device interface: a fixed set of named
boolean inputs and outputs, where outputs are recomputed synchronously each
time an input changes. Primitive devices (constants, buffers, inverters and
two input gates) are provided as built-ins, and new primitive kinds can be
declared with a PartSpec or built from a tagged struct with MakeDevice.

A Circuit is itself a Device that owns a set of child devices identified by
unique ids. Child ports are addressed as "<device-id>.<port-name>":

	c := dilo.NewCircuit()
	c.Add("n", dilo.Nor())
	c.Add("a", dilo.And())
	c.Connect("n", "q", "a", "a")

Each mutation of a circuit drives it to a stable state before returning by
repeatedly sweeping the outputs of its children and pushing changed values
through connections. Circuits with feedback (latches) are supported; a circuit
that does not settle within a bounded number of sweeps fails with
ErrOscillation.

Input and output labels expose a subset of the internal ports under circuit
level names. Once an input (resp. output) label is defined, only labeled names
are visible on that side of the circuit.

The engine is single-threaded: circuits must not be accessed concurrently.
*/
package dilo
