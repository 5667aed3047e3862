package notation

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/tonalab/tonal/pitch"
)

// Transpose moves a note (or pitch class) by an interval, both given as
// text, and spells the result. The operands may come in either order,
// but exactly one of them must be an interval. Text like "A4" reads as
// both a note and an augmented fourth, so the note-then-interval role
// assignment is tried first and only then the swapped one.
func Transpose(a, b string) (string, error) {
	if n, err := Note(a); err == nil {
		if i, err := Interval(b); err == nil {
			return FormatNote(pitch.Transpose(n, i))
		}
	}
	if i, err := Interval(a); err == nil {
		if n, err := Note(b); err == nil {
			return FormatNote(pitch.Transpose(n, i))
		}
	}
	return "", fmt.Errorf("transposing %q by %q: need one note or pitch class and one interval", a, b)
}

// TransposeBy returns a transposition function fixed to one interval,
// for mapping over note sequences. The interval is parsed once; a bad
// interval surfaces as an error from every call.
func TransposeBy(ivl string) func(string) (string, error) {
	i, ivlErr := Interval(ivl)
	shift := pitch.TransposeBy(i)
	return func(note string) (string, error) {
		if ivlErr != nil {
			return "", ivlErr
		}
		p, err := Any(note)
		if err != nil {
			return "", err
		}
		res := shift(p)
		if !res.Valid() {
			return "", fmt.Errorf("cannot transpose %q", note)
		}
		return FormatNote(res)
	}
}

// Distance spells the interval from one pitch to another. Both operands
// must parse to the same kind: two pitch classes, two notes or two
// intervals.
func Distance(from, to string) (string, error) {
	pf, err := Any(from)
	if err != nil {
		return "", err
	}
	pt, err := Any(to)
	if err != nil {
		return "", err
	}
	d := pitch.Distance(pf, pt)
	if !d.Valid() {
		return "", fmt.Errorf("no distance from %s %q to %s %q", pf.Kind(), from, pt.Kind(), to)
	}
	return FormatInterval(d)
}

// Harmonize transposes one root by each interval in turn, producing a
// note sequence. Fails on the first operand that does not parse.
func Harmonize(root string, intervals []string) ([]string, error) {
	notes := make([]string, 0, len(intervals))
	for _, ivl := range intervals {
		n, err := Transpose(root, ivl)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Sorted orders pitch names ascending by height. Unparseable entries
// rank below everything and stay in the result, equal heights keep
// their input order.
func Sorted(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.SliceStable(out, func(i, j int) bool {
		return height(out[i]) < height(out[j])
	})
	return out
}

// Max picks the highest of the given pitch names, errors when nothing
// parses.
func Max(names []string) (string, error) {
	best, bestHeight := "", 0
	found := false
	for _, name := range names {
		p, err := Any(name)
		if err != nil {
			continue
		}
		if h := p.Height(); !found || h > bestHeight {
			best, bestHeight, found = name, h, true
		}
	}
	if !found {
		return "", fmt.Errorf("no valid pitch among %d names", len(names))
	}
	return best, nil
}

func height(name string) int {
	p, err := Any(name)
	if err != nil {
		return pitch.Pitch{}.Height()
	}
	return p.Height()
}

// Midi resolves note text, or a raw number already within 0..127, to a
// MIDI number.
func Midi(text string) (int, error) {
	if n, err := strconv.Atoi(text); err == nil {
		if n < 0 || n > 127 {
			return 0, fmt.Errorf("midi number outside of 0-127 range: %d", n)
		}
		return n, nil
	}
	p, err := Note(text)
	if err != nil {
		return 0, err
	}
	m, ok := pitch.Midi(p)
	if !ok {
		return 0, fmt.Errorf("%q has no midi number", text)
	}
	return m, nil
}

// Freq resolves note text, or a raw MIDI number, to Hz at the given
// tuning (use pitch.StandardTuning for A440).
func Freq(text string, referenceHz float64) (float64, error) {
	m, err := Midi(text)
	if err != nil {
		return 0, err
	}
	return referenceHz * math.Pow(2, (float64(m)-69)/12), nil
}
