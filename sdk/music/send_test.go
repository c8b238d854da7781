package music

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSender records every message written to it.
type fakeSender struct {
	sent [][]byte
	err  error
}

func (f *fakeSender) Send(data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, append([]byte(nil), data...))
	return nil
}

func TestNotePlaySendsOnThenOff(t *testing.T) {
	out := &fakeSender{}
	note := NewNote(C, 4)

	err := note.Play(out, 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, [][]byte{
		{0x90, note.KeyNumber(), 100},
		{0x80, note.KeyNumber(), 100},
	}, out.sent)
}

func TestChordPlaySoundsAllNotesSimultaneously(t *testing.T) {
	out := &fakeSender{}
	chord, err := ChordFromTokens([]string{"C4", "E4", "G4"})
	assert.NoError(t, err)

	err = chord.Play(out, 0, 127)
	assert.NoError(t, err)
	assert.Len(t, out.sent, 6)
	for i, note := range chord.Notes {
		assert.Equal(t, []byte{0x90, note.KeyNumber(), 127}, out.sent[i])
		assert.Equal(t, []byte{0x80, note.KeyNumber(), 127}, out.sent[i+3])
	}
}

func TestPlayPropagatesSendErrors(t *testing.T) {
	sendErr := errors.New("port closed")
	out := &fakeSender{err: sendErr}

	assert.ErrorIs(t, NewNote(C, 4).Play(out, 0, 100), sendErr)

	chord, err := ChordFromTokens([]string{"C4", "E4"})
	assert.NoError(t, err)
	assert.ErrorIs(t, chord.Play(out, 0, 100), sendErr)
}
