// Package pitch models western music pitches on the line of fifths.
//
// A single value type covers pitch classes (names without register, "F#"),
// notes (name plus octave, "F#3") and intervals (directed distances, "-M3").
// Every value is a pair of integer coordinates: a position on the line of
// fifths and an octave offset. Transposition and distance reduce to plain
// coordinate addition and subtraction, no chromatic lookup tables involved.
package pitch

import "math"

// Kind discriminates the pitch variants.
type Kind uint8

const (
	Invalid Kind = iota
	Class        // pitch name without register
	Note         // pitch name with octave
	Interval     // directed distance with quality
)

func (k Kind) String() string {
	switch k {
	case Class:
		return "pitch class"
	case Note:
		return "note"
	case Interval:
		return "interval"
	default:
		return "invalid"
	}
}

// Pitch is an immutable point on the line of fifths. The zero value is
// invalid, valid values come out of NewClass, NewNote, NewInterval or the
// arithmetic functions. For intervals both coordinates are premultiplied
// by the direction, so raw coordinates already carry the sign and
// transposition needs no special casing.
type Pitch struct {
	kind   Kind
	fifths int // signed position on the line of fifths, C=0 G=1 F=-1
	octs   int // octave offset, see encode.go for the exact meaning
	dir    int // +1 or -1, intervals only
}

func (p Pitch) Kind() Kind       { return p.kind }
func (p Pitch) Valid() bool      { return p.kind != Invalid }
func (p Pitch) IsClass() bool    { return p.kind == Class }
func (p Pitch) IsNote() bool     { return p.kind == Note }
func (p Pitch) IsInterval() bool { return p.kind == Interval }

// Coord exposes the raw coordinates. octs is meaningless for pitch
// classes and dir is zero for anything that is not an interval.
func (p Pitch) Coord() (fifths, octs, dir int) {
	return p.fifths, p.octs, p.dir
}

// Dir returns the interval direction, +1 or -1, and zero for
// non-intervals.
func (p Pitch) Dir() int { return p.dir }

const invalidHeight = math.MinInt32

// Height is a total ordering key: 7 semitone-steps per fifth plus 12 per
// octave offset. Pitch classes have no register, so they get an estimate
// derived from the fifths coordinate alone, pushed below any practical
// note so classes still compare consistently with each other. Invalid
// values sort below everything.
func (p Pitch) Height() int {
	switch p.kind {
	case Note, Interval:
		return p.fifths*7 + p.octs*12
	case Class:
		return mod12(p.fifths*7) - 12*99
	default:
		return invalidHeight
	}
}

// Chroma is the pitch class number 0-11 (C=0). Reported for classes and
// notes only.
func (p Pitch) Chroma() (int, bool) {
	if p.kind != Class && p.kind != Note {
		return 0, false
	}
	return mod12(p.fifths * 7), true
}

// Ascending reports whether a sorts strictly below b.
func Ascending(a, b Pitch) bool { return a.Height() < b.Height() }

// Descending reports whether a sorts strictly above b.
func Descending(a, b Pitch) bool { return a.Height() > b.Height() }

func mod7(n int) int {
	m := n % 7
	if m < 0 {
		m += 7
	}
	return m
}

func mod12(n int) int {
	m := n % 12
	if m < 0 {
		m += 12
	}
	return m
}

// floorDiv rounds towards negative infinity, unlike Go's integer
// division which truncates towards zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
