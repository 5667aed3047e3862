package pitch

// Line-of-fifths position of each unaltered step, indexed C D E F G A B.
// Adding a sharp moves 7 positions right, a flat 7 left, which is why
// enharmonic spellings differ by multiples of 7 in the fifths coordinate.
var stepFifths = [7]int{0, 2, 4, -1, 1, 3, 5}

// Inverse lookup: diatonic step for ((fifths+1) mod 7).
var fifthsSteps = [7]int{3, 0, 4, 1, 5, 2, 6}

// Octaves spanned by each unaltered step's fifths position,
// floor(stepFifths*7/12).
var stepOcts = [7]int{0, 1, 2, -1, 0, 1, 2}

// Components is the musical spelling of a pitch.
type Components struct {
	Step int // diatonic step, 0=C .. 6=B
	Alt  int // accidental count, sharps positive, flats negative
	Oct  int // octave for notes, octave span for intervals
	Dir  int // +1 ascending, -1 descending, intervals only
}

// NewClass builds a pitch class from a diatonic step and an accidental
// count. Steps outside 0..6 yield the invalid zero value.
func NewClass(step, alt int) Pitch {
	if step < 0 || step > 6 {
		return Pitch{}
	}
	return Pitch{kind: Class, fifths: stepFifths[step] + 7*alt}
}

// NewNote builds a register-qualified note. The stored octave offset is
// chosen so that note+interval transposition is plain coordinate
// addition: the offset absorbs the octave drift accidentals would
// otherwise introduce.
func NewNote(step, alt, oct int) Pitch {
	if step < 0 || step > 6 {
		return Pitch{}
	}
	return Pitch{
		kind:   Note,
		fifths: stepFifths[step] + 7*alt,
		octs:   oct - stepOcts[step] - 4*alt,
	}
}

// NewInterval builds a directed interval from the spelling of its
// magnitude. dir is normalized to +1 or -1 and both coordinates are
// premultiplied by it.
func NewInterval(step, alt, oct, dir int) Pitch {
	if step < 0 || step > 6 {
		return Pitch{}
	}
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}
	f := stepFifths[step] + 7*alt
	o := oct - stepOcts[step] - 4*alt
	return Pitch{kind: Interval, fifths: dir * f, octs: dir * o, dir: dir}
}

// Decode recovers the spelling that produced a pitch. For intervals the
// direction premultiplication is undone first, so the returned
// components describe the magnitude with Dir carrying the sign.
func (p Pitch) Decode() (Components, bool) {
	switch p.kind {
	case Class:
		step, alt := DecodeFifths(p.fifths)
		return Components{Step: step, Alt: alt}, true
	case Note:
		step, alt := DecodeFifths(p.fifths)
		return Components{Step: step, Alt: alt, Oct: p.octs + 4*alt + stepOcts[step]}, true
	case Interval:
		f, o := p.dir*p.fifths, p.dir*p.octs
		step, alt := DecodeFifths(f)
		return Components{Step: step, Alt: alt, Oct: o + 4*alt + stepOcts[step], Dir: p.dir}, true
	default:
		return Components{}, false
	}
}

// DecodeFifths splits a line-of-fifths position into a diatonic step and
// an accidental count.
func DecodeFifths(fifths int) (step, alt int) {
	step = fifthsSteps[mod7(fifths+1)]
	alt = floorDiv(fifths+1, 7)
	return step, alt
}

// DecodeCoord converts raw coordinates back to step, accidental count
// and octave without undoing any direction premultiplication. The
// serializer relies on this to spell descending intervals.
func DecodeCoord(fifths, octs int) (step, alt, oct int) {
	step, alt = DecodeFifths(fifths)
	return step, alt, octs + 4*alt + stepOcts[step]
}

func classFromCoord(fifths int) Pitch {
	return Pitch{kind: Class, fifths: fifths}
}

func noteFromCoord(fifths, octs int) Pitch {
	return Pitch{kind: Note, fifths: fifths, octs: octs}
}

// intervalFromCoord derives the direction from the sign of the combined
// semitone size. A size of exactly zero counts as ascending.
func intervalFromCoord(fifths, octs int) Pitch {
	dir := 1
	if fifths*7+octs*12 < 0 {
		dir = -1
	}
	return Pitch{kind: Interval, fifths: fifths, octs: octs, dir: dir}
}
