package music

// Letter is one of the 12 pitch classes, flats spelled with a "b" suffix.
type Letter int

const (
	C Letter = iota
	Db
	D
	Eb
	E
	F
	Gb
	G
	Ab
	A
	Bb
	B
)

// Keyboard is the chromatic ordering of the alphabet. All semitone distance
// and transposition math indexes into this array; index 0 is C.
var Keyboard = [12]Letter{C, Db, D, Eb, E, F, Gb, G, Ab, A, Bb, B}

var letterNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

func (l Letter) String() string {
	if l < 0 || int(l) >= len(letterNames) {
		return "?"
	}
	return letterNames[l]
}

// letterIndex is the position of l in Keyboard.
func letterIndex(l Letter) int {
	for i, k := range Keyboard {
		if k == l {
			return i
		}
	}
	return 0
}

func parseLetter(s string) (Letter, bool) {
	for i, name := range letterNames {
		if s == name {
			return Letter(i), true
		}
	}
	return 0, false
}
