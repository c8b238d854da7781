package music

import (
	"time"

	"github.com/miditools/muse/sdk/contracts"
)

const (
	noteOnStatus  byte = 0x90
	noteOffStatus byte = 0x80
)

// Play sounds the note on channel 0: note-on, a blocking sleep for the
// duration, then note-off.
func (n Note) Play(out contracts.Sender, duration time.Duration, velocity byte) error {
	key := n.KeyNumber()
	if err := out.Send([]byte{noteOnStatus, key, velocity}); err != nil {
		return err
	}
	time.Sleep(duration)
	return out.Send([]byte{noteOffStatus, key, velocity})
}

// Play sounds all notes of the chord simultaneously for the duration.
// Note-offs are sent for every note even if one of them fails.
func (c Chord) Play(out contracts.Sender, duration time.Duration, velocity byte) error {
	for _, note := range c.Notes {
		if err := out.Send([]byte{noteOnStatus, note.KeyNumber(), velocity}); err != nil {
			return err
		}
	}
	time.Sleep(duration)
	var firstErr error
	for _, note := range c.Notes {
		if err := out.Send([]byte{noteOffStatus, note.KeyNumber(), velocity}); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
