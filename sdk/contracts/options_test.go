package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMIDIEventFilterAllows(t *testing.T) {
	assert := assert.New(t)

	var nilFilter *MIDIEventFilter
	assert.True(nilFilter.Allows(0x90))
	assert.True(nilFilter.Allows(0xF0))

	filter := &MIDIEventFilter{Commands: []MIDICommand{NoteOn, NoteOff}}
	assert.True(filter.Allows(0x90))
	assert.True(filter.Allows(0x95)) // same kind, other channel
	assert.True(filter.Allows(0x80))
	assert.False(filter.Allows(0xB0))
	assert.False(filter.Allows(0xF0))
}
