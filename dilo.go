// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dilo

import (
	"github.com/pkg/errors"
)

// A Device is a unit of simulation with named boolean inputs and outputs.
//
// The set of port names of a device never changes during its lifetime. Port
// names are case sensitive.
//
type Device interface {
	// Inputs returns the names of the device's inputs. The returned slice
	// must not be modified.
	Inputs() []string
	// Outputs returns the names of the device's outputs. The returned slice
	// must not be modified.
	Outputs() []string
	// SetInput sets the named input to value and synchronously recomputes
	// the device's outputs. It returns an error wrapping ErrNoSuchPort if
	// name is not an input of the device.
	SetInput(name string, value bool) error
	// Output returns the current value of the named output. It returns an
	// error wrapping ErrNoSuchPort if name is not an output of the device.
	Output(name string) (bool, error)
}

// A Signal is a value applied to a named input.
//
type Signal struct {
	Port  string
	Value bool
}

// Apply sets the inputs of d from the given signals, in order.
//
// It stops at the first failing signal and returns its error. Signals applied
// before the failure are not rolled back.
//
func Apply(d Device, signals ...Signal) error {
	for _, s := range signals {
		if err := d.SetInput(s.Port, s.Value); err != nil {
			return errors.Wrapf(err, "apply %s=%v", s.Port, s.Value)
		}
	}
	return nil
}

// Outputs returns the current values of all outputs of d, keyed by name.
//
func Outputs(d Device) (map[string]bool, error) {
	outs := d.Outputs()
	m := make(map[string]bool, len(outs))
	for _, o := range outs {
		v, err := d.Output(o)
		if err != nil {
			return nil, err
		}
		m[o] = v
	}
	return m, nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func hasPort(names []string, name string) bool {
	return indexOf(names, name) >= 0
}
