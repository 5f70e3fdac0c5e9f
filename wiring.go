// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dilo

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// An Address identifies a port of a device within a circuit. Its string form
// is "<device-id>.<port-name>".
//
type Address struct {
	Device string
	Port   string
}

func (a Address) String() string {
	return a.Device + "." + a.Port
}

// ParseAddress parses a "<device-id>.<port-name>" address. The string is split
// at the first dot: device ids cannot contain dots but port names can, which
// allows addressing ports of nested circuits ("adder.ha1.sum").
//
func ParseAddress(s string) (Address, error) {
	i := strings.IndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return Address{}, errors.Errorf("malformed port address %q", s)
	}
	return Address{s[:i], s[i+1:]}, nil
}

func less(a, b Address) bool {
	if a.Device != b.Device {
		return a.Device < b.Device
	}
	return a.Port < b.Port
}

func sortAddresses(as []Address) {
	sort.Slice(as, func(i, j int) bool { return less(as[i], as[j]) })
}

func addressStrings(as []Address) []string {
	r := make([]string, len(as))
	for i, a := range as {
		r[i] = a.String()
	}
	return r
}

func validID(id string) error {
	if id == "" {
		return errors.Wrap(ErrInvalidDevice, "empty device id")
	}
	if strings.IndexByte(id, '.') >= 0 {
		return errors.Wrapf(ErrInvalidDevice, "device id %q contains a dot", id)
	}
	return nil
}

// A Connection links the output From to the input To within a circuit.
//
type Connection struct {
	From Address
	To   Address
}

// wiring maps connected inputs to the output that drives them.
//
type wiring map[Address]Address

// fanout returns, for every connected output, the inputs it drives sorted by
// address.
//
func (w wiring) fanout() map[Address][]Address {
	f := make(map[Address][]Address)
	for dst, src := range w {
		f[src] = append(f[src], dst)
	}
	for _, dsts := range f {
		sortAddresses(dsts)
	}
	return f
}

// purge removes all connections to or from device id.
//
func (w wiring) purge(id string) {
	for dst, src := range w {
		if dst.Device == id || src.Device == id {
			delete(w, dst)
		}
	}
}

// inputLabels maps an input label to the set of internal inputs it drives.
//
type inputLabels map[string]map[Address]struct{}

// unclaim removes a from every label, dropping labels left empty.
//
func (l inputLabels) unclaim(a Address) {
	for name, set := range l {
		delete(set, a)
		if len(set) == 0 {
			delete(l, name)
		}
	}
}

// purge removes all references to device id, dropping labels left empty.
//
func (l inputLabels) purge(id string) {
	for name, set := range l {
		for a := range set {
			if a.Device == id {
				delete(set, a)
			}
		}
		if len(set) == 0 {
			delete(l, name)
		}
	}
}

func (l inputLabels) targets(name string) []Address {
	set := l[name]
	r := make([]Address, 0, len(set))
	for a := range set {
		r = append(r, a)
	}
	sortAddresses(r)
	return r
}

func sortedKeys[V any](m map[string]V) []string {
	r := make([]string, 0, len(m))
	for k := range m {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}
