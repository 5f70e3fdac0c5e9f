// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dilo

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// DefaultMaxPasses is the default limit on the number of propagation passes a
// circuit may run to reach a stable state.
//
const DefaultMaxPasses = 10

// An Option configures a Circuit.
//
type Option func(c *Circuit)

// WithMaxPasses sets the maximum number of propagation passes. Values lower
// than 1 are ignored.
//
func WithMaxPasses(n int) Option {
	return func(c *Circuit) {
		if n >= 1 {
			c.maxPasses = n
		}
	}
}

// WithLogger enables debug traces of propagation on the given logger.
//
func WithLogger(l *slog.Logger) Option {
	return func(c *Circuit) { c.log = l }
}

// Circuit is a Device composed of child devices wired together.
//
// Child devices are identified by ids unique within the circuit. Their ports
// are addressed as "<device-id>.<port-name>". A Circuit exclusively owns its
// children: a device must not be added to more than one circuit.
//
// Unless input labels are defined, the inputs of a circuit are the addresses
// of all unconnected child inputs. Unless output labels are defined, its
// outputs are the addresses of all child outputs. Port lists are sorted.
//
type Circuit struct {
	devices map[string]Device
	conns   wiring
	cache   map[Address]bool
	ins     inputLabels
	outs    map[string]Address

	// propagation order and fanout, rebuilt when nil.
	order []Address
	fan   map[Address][]Address

	maxPasses int
	log       *slog.Logger
}

// NewCircuit returns a new empty circuit.
//
func NewCircuit(opts ...Option) *Circuit {
	c := &Circuit{
		devices:   make(map[string]Device),
		conns:     make(wiring),
		cache:     make(map[Address]bool),
		ins:       make(inputLabels),
		outs:      make(map[string]Address),
		maxPasses: DefaultMaxPasses,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Add adds device d to the circuit under the given id.
//
// id must be non-empty and must not contain a dot. Add fails with
// ErrDuplicateDevice if id is already in use.
//
func (c *Circuit) Add(id string, d Device) error {
	if err := validID(id); err != nil {
		return err
	}
	if d == nil {
		return errors.Wrapf(ErrInvalidDevice, "nil device %q", id)
	}
	if d == Device(c) {
		return errors.Wrapf(ErrInvalidDevice, "circuit added to itself as %q", id)
	}
	if _, ok := c.devices[id]; ok {
		return errors.Wrapf(ErrDuplicateDevice, "device %q", id)
	}
	for _, o := range d.Outputs() {
		v, err := d.Output(o)
		if err != nil {
			return errors.Wrapf(err, "add %q", id)
		}
		c.cache[Address{id, o}] = v
	}
	c.devices[id] = d
	c.order = nil
	return nil
}

// Insert adds d to the circuit under a newly generated unique id and returns
// that id.
//
func (c *Circuit) Insert(d Device) (string, error) {
	id := xid.New().String()
	if err := c.Add(id, d); err != nil {
		return "", err
	}
	return id, nil
}

// Remove removes a device from the circuit, together with every connection,
// label and cached state referencing it. Inputs that were driven by the
// removed device keep their last value. A removed Sender or Receiver is
// unlinked from its peer.
//
func (c *Circuit) Remove(id string) error {
	if _, ok := c.devices[id]; !ok {
		return errors.Wrapf(ErrNoSuchDevice, "remove %q", id)
	}
	switch d := c.devices[id].(type) {
	case *Sender:
		d.ClearReceiver()
	case *Receiver:
		if d.send != nil {
			d.send.ClearReceiver()
		}
	}
	c.conns.purge(id)
	for a := range c.cache {
		if a.Device == id {
			delete(c.cache, a)
		}
	}
	c.ins.purge(id)
	for name, a := range c.outs {
		if a.Device == id {
			delete(c.outs, name)
		}
	}
	delete(c.devices, id)
	c.order, c.fan = nil, nil
	return nil
}

// Device returns the device with the given id.
//
func (c *Circuit) Device(id string) (Device, bool) {
	d, ok := c.devices[id]
	return d, ok
}

// Devices returns the sorted ids of the circuit's devices.
//
func (c *Circuit) Devices() []string {
	return sortedKeys(c.devices)
}

// Connections returns the circuit's connections sorted by destination.
//
func (c *Circuit) Connections() []Connection {
	dsts := make([]Address, 0, len(c.conns))
	for dst := range c.conns {
		dsts = append(dsts, dst)
	}
	sortAddresses(dsts)
	r := make([]Connection, len(dsts))
	for i, dst := range dsts {
		r[i] = Connection{From: c.conns[dst], To: dst}
	}
	return r
}

// InputLabels returns the internal inputs driven by each input label.
//
func (c *Circuit) InputLabels() map[string][]string {
	r := make(map[string][]string, len(c.ins))
	for name := range c.ins {
		r[name] = addressStrings(c.ins.targets(name))
	}
	return r
}

// OutputLabels returns the internal output exposed by each output label.
//
func (c *Circuit) OutputLabels() map[string]string {
	r := make(map[string]string, len(c.outs))
	for name, a := range c.outs {
		r[name] = a.String()
	}
	return r
}

// Inputs implements Device.
//
func (c *Circuit) Inputs() []string {
	if len(c.ins) > 0 {
		return sortedKeys(c.ins)
	}
	var r []Address
	for _, id := range c.Devices() {
		for _, p := range c.devices[id].Inputs() {
			a := Address{id, p}
			if _, ok := c.conns[a]; !ok {
				r = append(r, a)
			}
		}
	}
	sortAddresses(r)
	return addressStrings(r)
}

// Outputs implements Device.
//
func (c *Circuit) Outputs() []string {
	if len(c.outs) > 0 {
		return sortedKeys(c.outs)
	}
	var r []Address
	for _, id := range c.Devices() {
		for _, p := range c.devices[id].Outputs() {
			r = append(r, Address{id, p})
		}
	}
	sortAddresses(r)
	return addressStrings(r)
}

// freeInput checks that a is an unconnected input of a child device.
//
func (c *Circuit) freeInput(a Address) bool {
	d, ok := c.devices[a.Device]
	if !ok || !hasPort(d.Inputs(), a.Port) {
		return false
	}
	_, connected := c.conns[a]
	return !connected
}

func (c *Circuit) internalOutput(a Address) bool {
	d, ok := c.devices[a.Device]
	return ok && hasPort(d.Outputs(), a.Port)
}

// SetInput implements Device. name must be one of the names returned by
// Inputs. When name is an input label, all the inputs it labels are set.
//
// SetInput returns once the circuit is stable. It fails with ErrOscillation if
// the circuit cannot reach a stable state.
//
func (c *Circuit) SetInput(name string, value bool) error {
	var targets []Address
	if len(c.ins) > 0 {
		if _, ok := c.ins[name]; !ok {
			return errors.Wrapf(ErrNoSuchPort, "circuit has no input %q", name)
		}
		targets = c.ins.targets(name)
	} else {
		a, err := ParseAddress(name)
		if err != nil || !c.freeInput(a) {
			return errors.Wrapf(ErrNoSuchPort, "circuit has no input %q", name)
		}
		targets = []Address{a}
	}
	for _, a := range targets {
		if err := c.devices[a.Device].SetInput(a.Port, value); err != nil {
			return errors.Wrapf(err, "set %s", a)
		}
	}
	return c.Propagate()
}

// Output implements Device.
//
func (c *Circuit) Output(name string) (bool, error) {
	var a Address
	if len(c.outs) > 0 {
		var ok bool
		if a, ok = c.outs[name]; !ok {
			return false, errors.Wrapf(ErrNoSuchPort, "circuit has no output %q", name)
		}
	} else {
		var err error
		a, err = ParseAddress(name)
		if err != nil || !c.internalOutput(a) {
			return false, errors.Wrapf(ErrNoSuchPort, "circuit has no output %q", name)
		}
	}
	return c.devices[a.Device].Output(a.Port)
}

// Connect connects output srcPort of device srcID to input dstPort of device
// dstID. Any previous connection to that input is replaced and any input label
// claiming it loses it. The current value of the source is applied to the
// destination and the circuit is driven to a stable state.
//
func (c *Circuit) Connect(srcID, srcPort, dstID, dstPort string) error {
	src, ok := c.devices[srcID]
	if !ok {
		return errors.Wrapf(ErrInvalidDevice, "connect: no source device %q", srcID)
	}
	dst, ok := c.devices[dstID]
	if !ok {
		return errors.Wrapf(ErrInvalidDevice, "connect: no destination device %q", dstID)
	}
	if !hasPort(src.Outputs(), srcPort) {
		return errors.Wrapf(ErrInvalidPort, "connect: %q is not an output of %q", srcPort, srcID)
	}
	if !hasPort(dst.Inputs(), dstPort) {
		return errors.Wrapf(ErrInvalidPort, "connect: %q is not an input of %q", dstPort, dstID)
	}
	from, to := Address{srcID, srcPort}, Address{dstID, dstPort}
	c.conns[to] = from
	c.ins.unclaim(to)
	c.fan = nil

	v, err := src.Output(srcPort)
	if err != nil {
		return errors.Wrapf(err, "connect %s", from)
	}
	if err = dst.SetInput(dstPort, v); err != nil {
		return errors.Wrapf(err, "connect %s to %s", from, to)
	}
	return c.Propagate()
}

// Disconnect removes the connection driving input dstPort of device dstID.
// The input keeps its current value.
//
func (c *Circuit) Disconnect(dstID, dstPort string) error {
	to := Address{dstID, dstPort}
	if _, ok := c.conns[to]; !ok {
		return errors.Wrapf(ErrNoSuchConnection, "disconnect %s", to)
	}
	delete(c.conns, to)
	c.fan = nil
	return nil
}

// LabelInputs defines an input label driving the given internal inputs,
// replacing any label with the same name. Each address must be an unconnected
// input of a child device.
//
func (c *Circuit) LabelInputs(label string, addrs ...string) error {
	if label == "" {
		return errors.Wrap(ErrInvalidPort, "empty input label")
	}
	if len(addrs) == 0 {
		return errors.Wrapf(ErrInvalidPort, "input label %q has no target", label)
	}
	set := make(map[Address]struct{}, len(addrs))
	for _, s := range addrs {
		a, err := ParseAddress(s)
		if err != nil || !c.freeInput(a) {
			return errors.Wrapf(ErrInvalidPort, "input label %q: %q is not an unconnected input", label, s)
		}
		set[a] = struct{}{}
	}
	c.ins[label] = set
	return c.Propagate()
}

// LabelOutput defines an output label exposing the given internal output,
// replacing any label with the same name.
//
func (c *Circuit) LabelOutput(label string, addr string) error {
	if label == "" {
		return errors.Wrap(ErrInvalidPort, "empty output label")
	}
	a, err := ParseAddress(addr)
	if err != nil || !c.internalOutput(a) {
		return errors.Wrapf(ErrInvalidPort, "output label %q: %q is not an output", label, addr)
	}
	c.outs[label] = a
	return c.Propagate()
}

func (c *Circuit) rebuild() {
	if c.fan == nil {
		c.fan = c.conns.fanout()
		c.order = nil
	}
	if c.order == nil {
		c.order = c.sweepOrder()
	}
}

// sweepOrder returns the cached outputs grouped by device. A device comes
// after every device driving one of its inputs, ties going to the smallest
// id. Within a feedback loop, the smallest remaining id goes first.
//
func (c *Circuit) sweepOrder() []Address {
	ids := c.Devices()
	drivers := make(map[string]map[string]struct{})
	for dst, src := range c.conns {
		if src.Device == dst.Device {
			continue
		}
		if drivers[dst.Device] == nil {
			drivers[dst.Device] = make(map[string]struct{})
		}
		drivers[dst.Device][src.Device] = struct{}{}
	}

	ports := make(map[string][]Address, len(ids))
	for a := range c.cache {
		ports[a.Device] = append(ports[a.Device], a)
	}

	order := make([]Address, 0, len(c.cache))
	placed := make(map[string]bool, len(ids))
	for len(placed) < len(ids) {
		next := ""
	scan:
		for _, id := range ids {
			if placed[id] {
				continue
			}
			if next == "" {
				next = id
			}
			for src := range drivers[id] {
				if !placed[src] {
					continue scan
				}
			}
			next = id
			break
		}
		placed[next] = true
		as := ports[next]
		sortAddresses(as)
		order = append(order, as...)
	}
	return order
}

// Propagate drives the circuit to a stable state.
//
// Each pass visits the outputs of all child devices, every device after the
// devices that drive it, in id order otherwise. Whenever an output differs
// from the value seen in the previous pass, the new value is pushed to every
// input it is connected to. Passes are repeated until one produces no change,
// so a circuit without feedback settles in at most two passes. Propagate fails with ErrOscillation if the circuit is
// still changing after the maximum number of passes.
//
// Mutating methods call Propagate before returning. Calling it directly is
// only needed when a device was updated behind the circuit's back, as happens
// to a Receiver bound to a Sender in another circuit.
//
func (c *Circuit) Propagate() error {
	c.rebuild()
	for pass := 1; pass <= c.maxPasses; pass++ {
		changed, err := c.sweep()
		if err != nil {
			return err
		}
		if !changed {
			if c.log != nil {
				c.log.Debug("circuit stable", "passes", pass)
			}
			return nil
		}
	}
	if c.log != nil {
		c.log.Warn("circuit not stable", "passes", c.maxPasses)
	}
	return errors.Wrapf(ErrOscillation, "no stable state after %d passes", c.maxPasses)
}

func (c *Circuit) sweep() (bool, error) {
	changed := false
	for _, a := range c.order {
		v, err := c.devices[a.Device].Output(a.Port)
		if err != nil {
			return changed, errors.Wrapf(err, "read %s", a)
		}
		if v == c.cache[a] {
			continue
		}
		c.cache[a] = v
		changed = true
		for _, dst := range c.fan[a] {
			if err = c.devices[dst.Device].SetInput(dst.Port, v); err != nil {
				return changed, errors.Wrapf(err, "propagate %s to %s", a, dst)
			}
		}
	}
	return changed, nil
}
