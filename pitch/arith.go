package pitch

// Transpose moves a pitch class or note by an interval. Exactly one
// operand must be an interval; the operands may come in either order.
// Anything else yields the invalid zero value, so chained computations
// short-circuit without error plumbing.
func Transpose(p, ivl Pitch) Pitch {
	if p.kind == Interval && ivl.kind != Interval {
		p, ivl = ivl, p
	}
	if ivl.kind != Interval {
		return Pitch{}
	}
	switch p.kind {
	case Class:
		return classFromCoord(p.fifths + ivl.fifths)
	case Note:
		return noteFromCoord(p.fifths+ivl.fifths, p.octs+ivl.octs)
	default:
		return Pitch{}
	}
}

// TransposeBy returns a transposition function fixed to one interval,
// handy for mapping over note sequences.
func TransposeBy(ivl Pitch) func(Pitch) Pitch {
	return func(p Pitch) Pitch { return Transpose(p, ivl) }
}

// Distance measures the interval from one pitch to another. Both
// operands must be of the same kind. The distance between two pitch
// classes is normalized to the smallest ascending interval regardless of
// operand order; notes and intervals subtract component-wise with the
// direction taken from the sign of the result.
func Distance(from, to Pitch) Pitch {
	if from.kind != to.kind {
		return Pitch{}
	}
	switch from.kind {
	case Class:
		f := to.fifths - from.fifths
		return intervalFromCoord(f, -floorDiv(f*7, 12))
	case Note, Interval:
		return intervalFromCoord(to.fifths-from.fifths, to.octs-from.octs)
	default:
		return Pitch{}
	}
}

// DistanceFrom returns a distance function fixed to one starting pitch.
func DistanceFrom(from Pitch) func(Pitch) Pitch {
	return func(to Pitch) Pitch { return Distance(from, to) }
}

// Add sums two intervals component-wise.
func Add(a, b Pitch) Pitch {
	if a.kind != Interval || b.kind != Interval {
		return Pitch{}
	}
	return intervalFromCoord(a.fifths+b.fifths, a.octs+b.octs)
}

// Subtract returns a minus b, both intervals.
func Subtract(a, b Pitch) Pitch {
	if a.kind != Interval || b.kind != Interval {
		return Pitch{}
	}
	return intervalFromCoord(a.fifths-b.fifths, a.octs-b.octs)
}

// Simplify reduces an interval to its equivalent within a single octave,
// keeping quality and direction. An exact octave stays an octave rather
// than collapsing to a unison.
func Simplify(ivl Pitch) Pitch {
	if ivl.kind != Interval {
		return Pitch{}
	}
	c, _ := ivl.Decode()
	oct := 0
	if c.Step == 0 && c.Oct == 1 {
		oct = 1
	}
	return NewInterval(c.Step, c.Alt, oct, c.Dir)
}

// SimplifyAscending simplifies and additionally forces the ascending
// direction: a descending simple interval is raised by one octave, which
// turns it into its ascending complement. Pitch class distances are
// reported this way.
func SimplifyAscending(ivl Pitch) Pitch {
	s := Simplify(ivl)
	if !s.Valid() || s.Height() >= 0 {
		return s
	}
	return intervalFromCoord(s.fifths, s.octs+1)
}

// Invert flips an interval around the octave: thirds become sixths,
// seconds become sevenths. Octave count and direction are preserved. The
// accidental flip differs between perfect and major classes because
// diminished sits one semitone from perfect but two from major.
func Invert(ivl Pitch) Pitch {
	if ivl.kind != Interval {
		return Pitch{}
	}
	c, _ := ivl.Decode()
	alt := -c.Alt
	if !Perfectable(c.Step) {
		alt = -(c.Alt + 1)
	}
	return NewInterval((7-c.Step)%7, alt, c.Oct, c.Dir)
}

// stepClasses marks each diatonic step's interval class: unisons,
// fourths and fifths are perfect, the rest take major/minor qualities.
const stepClasses = "PMMPPMM"

// Perfectable reports whether intervals built on the given step belong
// to the perfect class.
func Perfectable(step int) bool {
	return step >= 0 && step <= 6 && stepClasses[step] == 'P'
}
