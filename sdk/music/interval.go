package music

// Interval is a named semitone offset, the right-hand operand of Note.Add.
// Two octaves of names are defined so chords can be built across the doubled
// interval sequence of a scale.
type Interval uint8

const (
	Unison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	Fourth
	Tritone
	Fifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
	Octave
	MinorNinth
	MajorNinth
	MinorTenth
	MajorTenth
	Eleventh
	AugmentedEleventh
	Twelfth
	MinorThirteenth
	MajorThirteenth
	MinorFourteenth
	MajorFourteenth
	DoubleOctave
)

// OctaveUp is the same interval one octave higher.
func (i Interval) OctaveUp() Interval {
	return i + Octave
}

// Semitones is the integer width of the interval.
func (i Interval) Semitones() int {
	return int(i)
}
