package music

import "strings"

// Chord is an ordered collection of notes sounded together. Order is the
// voicing order: Notes[0] is the lowest-voiced note for inversion purposes.
type Chord struct {
	Notes []Note
}

// NewChord builds a chord from an explicit note sequence.
func NewChord(notes []Note) Chord {
	return Chord{Notes: notes}
}

// ChordFromTokens parses each token with ParseNote, preserving order.
// A malformed token fails the whole chord; members are never silently dropped.
func ChordFromTokens(tokens []string) (Chord, error) {
	notes := make([]Note, 0, len(tokens))
	for _, token := range tokens {
		note, err := ParseNote(token)
		if err != nil {
			return Chord{}, err
		}
		notes = append(notes, note)
	}
	return Chord{Notes: notes}, nil
}

// Invert applies n successive inversions and returns the result. One inversion
// moves the lowest note to the top, raised one octave. The receiver is not
// modified.
func (c Chord) Invert(n int) Chord {
	notes := append([]Note(nil), c.Notes...)
	for ; n > 0 && len(notes) > 0; n-- {
		lowest := notes[0]
		notes = append(notes[1:], lowest.Add(Octave))
	}
	return Chord{Notes: notes}
}

// Transpose shifts every note up by the interval and returns a new chord.
func (c Chord) Transpose(interval Interval) Chord {
	notes := make([]Note, len(c.Notes))
	for i, note := range c.Notes {
		notes[i] = note.Add(interval)
	}
	return Chord{Notes: notes}
}

func (c Chord) String() string {
	names := make([]string, len(c.Notes))
	for i, note := range c.Notes {
		names[i] = note.String()
	}
	return "Chord(" + strings.Join(names, ",") + ")"
}
