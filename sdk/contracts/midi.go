package contracts

import "errors"

// Errors shared by every platform client.
var (
	// ErrDeviceNotFound is returned when no enumerated port matches the requested name.
	ErrDeviceNotFound = errors.New("MIDI device not found")
	// ErrNoOutputOpen is returned by Send when OpenOutput has not succeeded yet.
	ErrNoOutputOpen = errors.New("no MIDI output open")
)

// RawMessage is one raw MIDI message as delivered by the platform driver:
// a status byte plus up to three data bytes, with a driver timestamp.
type RawMessage struct {
	Timestamp uint64 // Time the message was received, driver clock.
	Status    byte   // Status byte; high nibble is the message kind, low nibble the channel.
	Data      []byte // Data bytes following the status byte.
}

// Sender writes raw MIDI bytes to an open output port.
type Sender interface {
	Send(data []byte) error
}

// ClientMIDI is the device shim every platform client implements.
// OnMessage callbacks may run on a driver-owned thread; implementations must not
// require any shared state beyond the message itself.
type ClientMIDI interface {
	ListInputDevices() ([]DeviceInfo, error)  // Enumerates input ports in driver order.
	ListOutputDevices() ([]DeviceInfo, error) // Enumerates output ports in driver order.

	// OpenInput opens the named input port and delivers every incoming raw
	// message to onMessage. Returns ErrDeviceNotFound if the name matches no port.
	OpenInput(name string, onMessage func(msg RawMessage)) error

	// OpenOutput opens the named output port for Send.
	// Returns ErrDeviceNotFound if the name matches no port.
	OpenOutput(name string) error

	// Send writes one raw message (status byte plus data bytes) to the open output.
	Send(data []byte) error

	// Stop closes any open ports and releases driver resources.
	Stop() error
}
