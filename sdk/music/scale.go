package music

import "strings"

// Scale is a root note plus the ordered intervals of its degrees.
type Scale struct {
	Root      Note
	Intervals []Interval
}

var (
	majorIntervals = []Interval{Unison, MajorSecond, MajorThird, Fourth, Fifth, MajorSixth, MajorSeventh}
	minorIntervals = []Interval{Unison, MajorSecond, MinorThird, Fourth, Fifth, MinorSixth, MinorSeventh}

	harmonicMinorIntervals = []Interval{Unison, MajorSecond, MinorThird, Fourth, Fifth, MinorSixth, MajorSeventh}
)

// NewScale builds a scale from a root and an explicit interval sequence.
func NewScale(root Note, intervals []Interval) Scale {
	return Scale{Root: root, Intervals: intervals}
}

// MajorScale is the major scale rooted at root.
func MajorScale(root Note) Scale {
	return NewScale(root, majorIntervals)
}

// MinorScale is the natural minor scale rooted at root.
func MinorScale(root Note) Scale {
	return NewScale(root, minorIntervals)
}

// HarmonicMinorScale is the harmonic minor scale rooted at root.
func HarmonicMinorScale(root Note) Scale {
	return NewScale(root, harmonicMinorIntervals)
}

// Notes maps every interval through the root, in degree order.
func (s Scale) Notes() []Note {
	notes := make([]Note, len(s.Intervals))
	for i, interval := range s.Intervals {
		notes[i] = s.Root.Add(interval)
	}
	return notes
}

// DegreeChord builds a chord by starting at the zero-based degree and taking
// every step-th interval from the scale's doubled interval sequence (the
// degrees, then the same degrees one octave up). Stepping wraps around the
// doubled sequence indefinitely, gaining a further two octaves per lap, so any
// length is valid.
func (s Scale) DegreeChord(degree, step, length int) Chord {
	if len(s.Intervals) == 0 || length <= 0 {
		return Chord{}
	}

	doubled := make([]Interval, 0, 2*len(s.Intervals))
	doubled = append(doubled, s.Intervals...)
	for _, interval := range s.Intervals {
		doubled = append(doubled, interval.OctaveUp())
	}

	notes := make([]Note, 0, length)
	for pos := degree; len(notes) < length; pos += step {
		lap := pos / len(doubled)
		interval := doubled[pos%len(doubled)] + Interval(24*lap)
		notes = append(notes, s.Root.Add(interval))
	}
	return Chord{Notes: notes}
}

// One is the chord built by thirds on the first degree.
func (s Scale) One(length int) Chord { return s.DegreeChord(0, 2, length) }

// Two is the chord built by thirds on the second degree.
func (s Scale) Two(length int) Chord { return s.DegreeChord(1, 2, length) }

// Three is the chord built by thirds on the third degree.
func (s Scale) Three(length int) Chord { return s.DegreeChord(2, 2, length) }

// Four is the chord built by thirds on the fourth degree.
func (s Scale) Four(length int) Chord { return s.DegreeChord(3, 2, length) }

// Five is the chord built by thirds on the fifth degree.
func (s Scale) Five(length int) Chord { return s.DegreeChord(4, 2, length) }

// Six is the chord built by thirds on the sixth degree.
func (s Scale) Six(length int) Chord { return s.DegreeChord(5, 2, length) }

// Seven is the chord built by thirds on the seventh degree.
func (s Scale) Seven(length int) Chord { return s.DegreeChord(6, 2, length) }

func (s Scale) String() string {
	notes := s.Notes()
	names := make([]string, len(notes))
	for i, note := range notes {
		names[i] = note.String()
	}
	return "Scale(" + strings.Join(names, ",") + ")"
}
