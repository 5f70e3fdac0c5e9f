// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dilo

import (
	"github.com/pkg/errors"
)

// A Sender is a buffer that can be linked to a Receiver anywhere else,
// possibly in another circuit. Every update of the Sender is forwarded to its
// Receiver without going through any circuit connection.
//
// A Sender with no Receiver behaves as a plain buffer.
//
//	Inputs: a
//	Outputs: q
//	Function: q = a
//
type Sender struct {
	buf  *Part
	recv *Receiver
}

// NewSender returns a new unlinked Sender.
//
func NewSender() *Sender {
	return &Sender{buf: bufferSpec.New()}
}

// Inputs implements Device.
//
func (s *Sender) Inputs() []string { return s.buf.Inputs() }

// Outputs implements Device.
//
func (s *Sender) Outputs() []string { return s.buf.Outputs() }

// Output implements Device.
//
func (s *Sender) Output(name string) (bool, error) { return s.buf.Output(name) }

// SetInput implements Device. The new output value is forwarded to the
// linked Receiver, if any.
//
func (s *Sender) SetInput(name string, value bool) error {
	if err := s.buf.SetInput(name, value); err != nil {
		return err
	}
	s.forward()
	return nil
}

func (s *Sender) forward() {
	if s.recv != nil {
		s.recv.drive(s.buf.out[0])
	}
}

// Receiver returns the Receiver linked to s, or nil.
//
func (s *Sender) Receiver() *Receiver { return s.recv }

// SetReceiver links s to d, which must be a *Receiver. Any previous link of
// either end is broken first. The current value of s is forwarded to the
// Receiver immediately.
//
func (s *Sender) SetReceiver(d Device) error {
	r, ok := d.(*Receiver)
	if !ok || r == nil {
		return errors.Wrapf(ErrInvalidReceiver, "%T is not a receiver", d)
	}
	s.ClearReceiver()
	if r.send != nil {
		r.send.recv = nil
	}
	s.recv, r.send = r, s
	s.forward()
	return nil
}

// ClearReceiver breaks the link between s and its Receiver. The Receiver
// keeps its last value.
//
func (s *Sender) ClearReceiver() {
	if s.recv != nil {
		s.recv.send = nil
		s.recv = nil
	}
}

// A Receiver is the far end of a Sender link. It has no inputs: its output
// follows the value of the linked Sender.
//
// When the Sender and Receiver live in different circuits, the circuit of the
// Receiver must be settled with Circuit.Propagate after the Sender changes.
//
//	Outputs: q
//
type Receiver struct {
	buf  *Part
	send *Sender
}

// NewReceiver returns a new unlinked Receiver.
//
func NewReceiver() *Receiver {
	return &Receiver{buf: bufferSpec.New()}
}

// Inputs implements Device. A Receiver has no inputs.
//
func (r *Receiver) Inputs() []string { return nil }

// Outputs implements Device.
//
func (r *Receiver) Outputs() []string { return r.buf.Outputs() }

// Output implements Device.
//
func (r *Receiver) Output(name string) (bool, error) { return r.buf.Output(name) }

// SetInput implements Device. It always fails since a Receiver can only be
// driven by its Sender.
//
func (r *Receiver) SetInput(name string, _ bool) error {
	return errors.Wrapf(ErrNoSuchPort, "receiver has no input %q", name)
}

// Sender returns the Sender linked to r, or nil.
//
func (r *Receiver) Sender() *Sender { return r.send }

func (r *Receiver) drive(v bool) {
	r.buf.in[0] = v
	r.buf.update()
}
