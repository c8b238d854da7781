package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteFromKeyRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for k := uint8(21); k <= 127; k++ {
		note, err := NoteFromKey(k)
		assert.NoError(err)
		assert.Equal(Keyboard[(k-21)%12], note.Letter)
		assert.Equal((k-21)/12, note.Octave)
		assert.Equal(k, note.KeyNumber())
	}
}

func TestNoteFromKeyOutOfRange(t *testing.T) {
	for _, k := range []uint8{0, 5, 20} {
		_, err := NoteFromKey(k)
		assert.ErrorIs(t, err, ErrKeyNumberOutOfRange)
	}
}

func TestParseNote(t *testing.T) {
	cases := []struct {
		token  string
		letter Letter
		octave uint8
	}{
		{"A0", A, 0},
		{"Bb2", Bb, 2},
		{"C0", C, 0},
		{"Gb7", Gb, 7},
		{"D10", D, 10},
	}
	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			note, err := ParseNote(c.token)
			assert.NoError(t, err)
			assert.Equal(t, c.letter, note.Letter)
			assert.Equal(t, c.octave, note.Octave)
		})
	}
}

func TestParseNoteRejectsMalformedTokens(t *testing.T) {
	for _, token := range []string{"", "H2", "bb2", "C#4", "4"} {
		_, err := ParseNote(token)
		assert.ErrorIs(t, err, ErrInvalidNoteToken, token)
	}
	for _, token := range []string{"C", "Bb"} {
		_, err := ParseNote(token)
		assert.ErrorIs(t, err, ErrInvalidOctave, token)
	}
}

func TestDistanceBetweenNotes(t *testing.T) {
	assert := assert.New(t)

	c0 := NewNote(C, 0)
	e0 := NewNote(E, 0)
	e1 := NewNote(E, 1)
	b0 := NewNote(B, 0)
	c1 := NewNote(C, 1)

	assert.Equal(uint8(4), c0.DistanceTo(e0))
	assert.Equal(uint8(4), e0.DistanceTo(c0))
	assert.Equal(uint8(16), c0.DistanceTo(e1))
	assert.Equal(uint8(16), e1.DistanceTo(c0))
	assert.Equal(uint8(1), b0.DistanceTo(c1))
	assert.Equal(uint8(0), c0.DistanceTo(c0))
}

func TestAddInterval(t *testing.T) {
	cases := []struct {
		name     string
		start    Note
		interval Interval
		want     Note
	}{
		{"major third stays in octave", NewNote(C, 0), MajorThird, NewNote(E, 0)},
		{"semitone wraps to next octave", NewNote(B, 0), MinorSecond, NewNote(C, 1)},
		{"octave carries", NewNote(C, 0), Octave, NewNote(C, 1)},
		{"wrap with carry", NewNote(A, 0), MajorThird, NewNote(Db, 1)},
		{"ninth spans two octave boundaries", NewNote(Bb, 1), MajorNinth, NewNote(C, 3)},
		{"double octave", NewNote(Eb, 2), DoubleOctave, NewNote(Eb, 4)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.start.Add(c.interval))
		})
	}
}

func TestNoteString(t *testing.T) {
	assert.Equal(t, "Bb2", NewNote(Bb, 2).String())
	assert.Equal(t, "C0", NewNote(C, 0).String())
}
