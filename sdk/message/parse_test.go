package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChannelVoiceMessages(t *testing.T) {
	cases := []struct {
		name    string
		status  byte
		data    []byte
		kind    Status
		channel uint8
		d0, d1  Data
	}{
		{"note on", 0x90, []byte{60, 100}, NoteOn, 0, Data{KeyNumber, 60}, Data{Velocity, 100}},
		{"note off channel 5", 0x85, []byte{60, 0}, NoteOff, 5, Data{KeyNumber, 60}, Data{Velocity, 0}},
		{"poly key pressure", 0xA3, []byte{64, 90}, PolyphonicKeyPressure, 3, Data{KeyNumber, 64}, Data{PressureAmount, 90}},
		{"control change", 0xB2, []byte{7, 100}, ControlChange, 2, Data{ControllerNumber, 7}, Data{ControllerValue, 100}},
		{"program change", 0xC1, []byte{5}, ProgramChange, 1, Data{Kind: ProgramNumber, Value: 5}, Data{Kind: None}},
		{"channel pressure", 0xD2, []byte{44}, ChannelPressure, 2, Data{Kind: PressureValue, Value: 44}, Data{Kind: None}},
		{"pitch bend", 0xE0, []byte{0x21, 0x42}, PitchBend, 0, Data{MSB, 0x21}, Data{LSB, 0x42}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ev, err := NewRaw(7, c.status, c.data).Parse()
			assert.NoError(t, err)
			assert.Equal(t, c.kind, ev.Status)
			assert.Equal(t, c.channel, ev.Channel)
			assert.Equal(t, uint64(7), ev.Stamp)
			assert.Equal(t, [2]Data{c.d0, c.d1}, ev.Data)
		})
	}
}

func TestParseChannelModeMessages(t *testing.T) {
	cases := []struct {
		name       string
		controller byte
		mode       DataKind
	}{
		{"reset all controllers", 0x79, ResetAllControllers},
		{"all notes off", 0x7B, AllNotesOff},
		{"omni mode off", 0x7C, OmniModeOff},
		{"omni mode on", 0x7D, OmniModeOn},
		{"mono mode on", 0x7E, MonoModeOn},
		{"poly mode on", 0x7F, PolyModeOn},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ev, err := NewRaw(0, 0xB0, []byte{0, c.controller}).Parse()
			assert.NoError(t, err)
			assert.Equal(t, ControlChange, ev.Status)
			assert.Equal(t, ChannelModeChannel, ev.Channel)
			assert.Equal(t, [2]Data{{Kind: c.mode}, {Kind: None}}, ev.Data)
		})
	}
}

func TestParseLocalControlTakesValueFromThirdByte(t *testing.T) {
	ev, err := NewRaw(0, 0xB0, []byte{0, 0x7A, 127}).Parse()
	assert.NoError(t, err)
	assert.Equal(t, ControlChange, ev.Status)
	assert.Equal(t, ChannelModeChannel, ev.Channel)
	assert.Equal(t, [2]Data{{Kind: LocalControl, Value: 127}, {Kind: None}}, ev.Data)
}

func TestParseUnknownHighNibble(t *testing.T) {
	ev, err := NewRaw(3, 0xF0, nil).Parse()
	assert.NoError(t, err)
	assert.Equal(t, Unknown, ev.Status)
	assert.Equal(t, uint8(0), ev.Channel)
	assert.Equal(t, [2]Data{{Kind: None}, {Kind: None}}, ev.Data)
}

func TestParseMalformedMessages(t *testing.T) {
	cases := []struct {
		name   string
		status byte
		data   []byte
	}{
		{"note on with one data byte", 0x90, []byte{60}},
		{"note off with no data", 0x80, nil},
		{"control change with one data byte", 0xB0, []byte{7}},
		{"local control missing its value", 0xB0, []byte{0, 0x7A}},
		{"program change with no data", 0xC0, nil},
		{"pitch bend with one data byte", 0xE0, []byte{1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewRaw(0, c.status, c.data).Parse()
			assert.ErrorIs(t, err, ErrMalformedMessage)
		})
	}
}

func TestEventString(t *testing.T) {
	ev, err := NewRaw(0, 0x90, []byte{60, 100}).Parse()
	assert.NoError(t, err)
	assert.Equal(t, "NoteOn ch=0 [KeyNumber(60) Velocity(100)]", ev.String())

	mode, err := NewRaw(0, 0xB0, []byte{0, 0x7B}).Parse()
	assert.NoError(t, err)
	assert.Equal(t, "ControlChange ch=16 [AllNotesOff None]", mode.String())
}
