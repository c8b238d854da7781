package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChordFromTokens(t *testing.T) {
	chord, err := ChordFromTokens([]string{"C0", "E0", "G0"})
	assert.NoError(t, err)
	assert.Len(t, chord.Notes, 3)
	assert.Equal(t, []Note{NewNote(C, 0), NewNote(E, 0), NewNote(G, 0)}, chord.Notes)
}

func TestChordFromTokensFailsOnMalformedToken(t *testing.T) {
	_, err := ChordFromTokens([]string{"C0", "X0", "G0"})
	assert.ErrorIs(t, err, ErrInvalidNoteToken)
}

func TestInvertMovesLowestNoteUpAnOctave(t *testing.T) {
	chord, err := ChordFromTokens([]string{"C0", "E0", "G0"})
	assert.NoError(t, err)

	first := chord.Invert(1)
	assert.Len(t, first.Notes, 3)
	assert.Equal(t, []Note{NewNote(E, 0), NewNote(G, 0), NewNote(C, 1)}, first.Notes)

	// The receiver keeps its original voicing.
	assert.Equal(t, []Note{NewNote(C, 0), NewNote(E, 0), NewNote(G, 0)}, chord.Notes)
}

func TestInvertByChordLengthShiftsWholeChordUpAnOctave(t *testing.T) {
	chord, err := ChordFromTokens([]string{"C0", "E0", "G0"})
	assert.NoError(t, err)

	full := chord.Invert(len(chord.Notes))
	assert.Equal(t, []Note{NewNote(C, 1), NewNote(E, 1), NewNote(G, 1)}, full.Notes)
}

func TestInvertRepeatedEqualsSuccessive(t *testing.T) {
	chord, err := ChordFromTokens([]string{"C0", "E0", "G0", "B0"})
	assert.NoError(t, err)
	assert.Equal(t, chord.Invert(1).Invert(1), chord.Invert(2))
}

func TestTransposeShiftsEveryNote(t *testing.T) {
	chord, err := ChordFromTokens([]string{"C0", "E0", "G0"})
	assert.NoError(t, err)

	fifthUp := chord.Transpose(Fifth)
	assert.Equal(t, []Note{NewNote(G, 0), NewNote(B, 0), NewNote(D, 1)}, fifthUp.Notes)
	// Original not mutated.
	assert.Equal(t, []Note{NewNote(C, 0), NewNote(E, 0), NewNote(G, 0)}, chord.Notes)
}

func TestChordString(t *testing.T) {
	chord, err := ChordFromTokens([]string{"C0", "E0", "G0"})
	assert.NoError(t, err)
	assert.Equal(t, "Chord(C0,E0,G0)", chord.String())
}
