// Package message decodes raw MIDI channel-voice messages into typed events.
package message

import (
	"errors"
	"fmt"
)

// ErrMalformedMessage is returned when a raw message carries fewer data bytes
// than its status byte requires.
var ErrMalformedMessage = errors.New("malformed MIDI message")

// ChannelModeChannel is the sentinel channel of a channel-mode message, which
// addresses the whole instrument rather than a single channel.
const ChannelModeChannel uint8 = 16

// Raw is a MIDI message as delivered by the device driver: a status byte plus
// the data bytes that followed it.
type Raw struct {
	Stamp  uint64
	Status byte
	Data   []byte
}

// NewRaw builds a Raw message.
func NewRaw(stamp uint64, status byte, data []byte) Raw {
	return Raw{Stamp: stamp, Status: status, Data: data}
}

// Status is the decoded message kind, from the status byte's high nibble.
type Status int

const (
	NoteOff Status = iota
	NoteOn
	PolyphonicKeyPressure
	ControlChange
	ProgramChange
	ChannelPressure
	PitchBend
	Unknown
)

var statusNames = [...]string{
	"NoteOff",
	"NoteOn",
	"PolyphonicKeyPressure",
	"ControlChange",
	"ProgramChange",
	"ChannelPressure",
	"PitchBend",
	"Unknown",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Unknown"
	}
	return statusNames[s]
}

// DataKind tags the meaning of one decoded data slot. None is the zero value
// so an unused slot reads as empty.
type DataKind int

const (
	None DataKind = iota
	KeyNumber
	Velocity
	ControllerNumber
	ControllerValue
	PressureAmount
	ProgramNumber
	PressureValue
	MSB
	LSB
	ResetAllControllers
	LocalControl
	AllNotesOff
	OmniModeOff
	OmniModeOn
	MonoModeOn
	PolyModeOn
)

var dataKindNames = [...]string{
	"None",
	"KeyNumber",
	"Velocity",
	"ControllerNumber",
	"ControllerValue",
	"PressureAmount",
	"ProgramNumber",
	"PressureValue",
	"MSB",
	"LSB",
	"ResetAllControllers",
	"LocalControl",
	"AllNotesOff",
	"OmniModeOff",
	"OmniModeOn",
	"MonoModeOn",
	"PolyModeOn",
}

func (k DataKind) String() string {
	if k < 0 || int(k) >= len(dataKindNames) {
		return "None"
	}
	return dataKindNames[k]
}

// valued reports whether the kind carries a numeric parameter.
func (k DataKind) valued() bool {
	switch k {
	case KeyNumber, Velocity, ControllerNumber, ControllerValue, PressureAmount,
		ProgramNumber, PressureValue, MSB, LSB, LocalControl:
		return true
	}
	return false
}

// Data is one decoded data slot: a kind tag plus, for valued kinds, the byte.
type Data struct {
	Kind  DataKind
	Value byte
}

func (d Data) String() string {
	if d.Kind.valued() {
		return fmt.Sprintf("%s(%d)", d.Kind, d.Value)
	}
	return d.Kind.String()
}

// Event is a decoded MIDI message: channel 0-15, or 16 for channel-mode
// messages, plus up to two typed data slots.
type Event struct {
	Channel uint8
	Stamp   uint64
	Status  Status
	Data    [2]Data
}

func (e Event) String() string {
	return fmt.Sprintf("%s ch=%d [%s %s]", e.Status, e.Channel, e.Data[0], e.Data[1])
}
