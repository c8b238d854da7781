package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func letters(notes []Note) []Letter {
	res := make([]Letter, len(notes))
	for i, n := range notes {
		res[i] = n.Letter
	}
	return res
}

func TestScaleNotes(t *testing.T) {
	scale := NewScale(NewNote(C, 0), []Interval{Unison, MajorSecond})
	notes := scale.Notes()
	assert.Equal(t, []Letter{C, D}, letters(notes))
}

func TestMajorScaleLetters(t *testing.T) {
	scale := MajorScale(NewNote(C, 0))
	assert.Equal(t, []Letter{C, D, E, F, G, A, B}, letters(scale.Notes()))
}

func TestMinorScaleLetters(t *testing.T) {
	scale := MinorScale(NewNote(A, 0))
	assert.Equal(t, []Letter{A, B, C, D, E, F, G}, letters(scale.Notes()))
}

func TestHarmonicMinorScaleLetters(t *testing.T) {
	scale := HarmonicMinorScale(NewNote(A, 0))
	assert.Equal(t, []Letter{A, B, C, D, E, F, Ab}, letters(scale.Notes()))
}

func TestDegreeChordsBuiltByThirds(t *testing.T) {
	scale := MajorScale(NewNote(C, 0))

	one := scale.One(3)
	assert.Equal(t, []Letter{C, E, G}, letters(one.Notes))

	two := scale.Two(3)
	assert.Equal(t, []Letter{D, F, A}, letters(two.Notes))

	five := scale.Five(3)
	assert.Equal(t, []Letter{G, B, D}, letters(five.Notes))
}

func TestSeventhChordCrossesIntoSecondOctave(t *testing.T) {
	scale := MajorScale(NewNote(C, 0))

	seven := scale.One(4)
	assert.Equal(t, []Note{
		NewNote(C, 0),
		NewNote(E, 0),
		NewNote(G, 0),
		NewNote(B, 0),
	}, seven.Notes)

	five := scale.Five(4)
	assert.Equal(t, []Note{
		NewNote(G, 0),
		NewNote(B, 0),
		NewNote(D, 1),
		NewNote(F, 1),
	}, five.Notes)
}

func TestDegreeChordCyclesBeyondTwoOctaves(t *testing.T) {
	scale := MajorScale(NewNote(C, 0))

	// Stacking thirds past the doubled sequence keeps climbing: each full lap
	// around the 14 doubled intervals adds two octaves.
	stack := scale.DegreeChord(0, 2, 8)
	assert.Equal(t, []Note{
		NewNote(C, 0),
		NewNote(E, 0),
		NewNote(G, 0),
		NewNote(B, 0),
		NewNote(D, 1),
		NewNote(F, 1),
		NewNote(A, 1),
		NewNote(C, 2),
	}, stack.Notes)
}

func TestDegreeChordDegenerateCases(t *testing.T) {
	assert.Empty(t, MajorScale(NewNote(C, 0)).DegreeChord(0, 2, 0).Notes)
	assert.Empty(t, NewScale(NewNote(C, 0), nil).DegreeChord(0, 2, 3).Notes)
}

func TestScaleString(t *testing.T) {
	scale := NewScale(NewNote(C, 0), []Interval{Unison, Fifth})
	assert.Equal(t, "Scale(C0,G0)", scale.String())
}
