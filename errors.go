// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package dilo

import "github.com/pkg/errors"

// Error kinds. Errors returned by this package wrap one of these values and
// should be tested with errors.Is.
var (
	// ErrNoSuchPort is returned when reading or writing an unknown port.
	ErrNoSuchPort = errors.New("no such port")
	// ErrNoSuchDevice is returned by Circuit.Remove for an unknown device id.
	ErrNoSuchDevice = errors.New("no such device")
	// ErrInvalidDevice is returned for unknown or malformed device ids.
	ErrInvalidDevice = errors.New("invalid device")
	// ErrInvalidPort is returned when a port exists but cannot be used in the
	// requested role.
	ErrInvalidPort = errors.New("invalid port")
	// ErrDuplicateDevice is returned when adding a device under an id already
	// in use.
	ErrDuplicateDevice = errors.New("duplicate device")
	// ErrNoSuchConnection is returned when disconnecting an unconnected input.
	ErrNoSuchConnection = errors.New("no such connection")
	// ErrInvalidReceiver is returned when binding a Sender to a device that is
	// not a Receiver.
	ErrInvalidReceiver = errors.New("invalid receiver")
	// ErrOscillation is returned when a circuit does not reach a stable state
	// within its pass limit.
	ErrOscillation = errors.New("oscillation")
)
