package music

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors returned by note construction.
var (
	ErrInvalidNoteToken    = errors.New("invalid note token")
	ErrInvalidOctave       = errors.New("invalid octave")
	ErrKeyNumberOutOfRange = errors.New("key number out of range")
)

// baseKeyNumber is the MIDI key number of C0, the lowest key of the supported
// keyboard layout.
const (
	baseKeyNumber = 21
	maxKeyNumber  = 127
)

// Note is a pitch: a Letter plus an octave.
type Note struct {
	Letter Letter
	Octave uint8
}

// NewNote builds a Note from an explicit letter and octave.
func NewNote(letter Letter, octave uint8) Note {
	return Note{Letter: letter, Octave: octave}
}

// ParseNote parses a compact token of the form <Letter><Octave>, e.g. "Bb2".
// The letter prefix is every leading non-digit character and must be one of the
// 12 recognized spellings; the rest is a non-negative decimal octave.
func ParseNote(token string) (Note, error) {
	split := 0
	for split < len(token) && (token[split] < '0' || token[split] > '9') {
		split++
	}
	letter, ok := parseLetter(token[:split])
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteToken, token)
	}
	octave, err := strconv.ParseUint(token[split:], 10, 8)
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidOctave, token)
	}
	return Note{Letter: letter, Octave: uint8(octave)}, nil
}

// NoteFromKey converts an absolute MIDI key number to a Note.
// Key numbers below C0 (21) are outside the supported keyboard.
func NoteFromKey(key uint8) (Note, error) {
	if key < baseKeyNumber || key > maxKeyNumber {
		return Note{}, fmt.Errorf("%w: %d", ErrKeyNumberOutOfRange, key)
	}
	return Note{
		Letter: Keyboard[(key-baseKeyNumber)%12],
		Octave: (key - baseKeyNumber) / 12,
	}, nil
}

// KeyNumber is the absolute MIDI key number of the note.
func (n Note) KeyNumber() uint8 {
	return baseKeyNumber + n.Octave*12 + uint8(letterIndex(n.Letter))
}

// DistanceTo is the linear semitone distance between two notes. It is
// symmetric and counts across octaves, not around the octave cycle.
func (n Note) DistanceTo(other Note) uint8 {
	d := letterIndex(n.Letter) - letterIndex(other.Letter) + 12*(int(n.Octave)-int(other.Octave))
	if d < 0 {
		d = -d
	}
	return uint8(d)
}

// Add transposes the note up by an interval, carrying into the octave when the
// letter wraps past B. Correct for intervals spanning multiple octaves.
func (n Note) Add(interval Interval) Note {
	total := letterIndex(n.Letter) + interval.Semitones()
	return Note{
		Letter: Keyboard[total%12],
		Octave: n.Octave + uint8(total/12),
	}
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Letter, n.Octave)
}
