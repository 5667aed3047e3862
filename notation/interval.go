package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tonalab/tonal/pitch"
)

// Both shorthand orders are in common use: "P5" and "5P" mean the same
// thing. Qualities: P perfect, M major, m minor, A.. augmented,
// d.. diminished (stacked letters stack the alteration).
var (
	ivlQualFirst = regexp.MustCompile(`^([-+]?)(d{1,4}|m|M|P|A{1,4})(\d+)$`)
	ivlNumFirst  = regexp.MustCompile(`^([-+]?\d+)(d{1,4}|m|M|P|A{1,4})$`)
)

// parseInterval recognizes interval shorthand. The interval number is
// translated to a 0-based simple step plus an implied octave count, the
// quality to an accidental-like alteration.
func parseInterval(text string) (pitch.Pitch, error) {
	var quality, numText string
	if m := ivlQualFirst.FindStringSubmatch(text); m != nil {
		quality, numText = m[2], m[1]+m[3]
	} else if m := ivlNumFirst.FindStringSubmatch(text); m != nil {
		numText, quality = m[1], m[2]
	} else {
		return pitch.Pitch{}, fmt.Errorf("%q is not an interval", text)
	}

	num, err := strconv.Atoi(numText)
	if err != nil {
		return pitch.Pitch{}, fmt.Errorf("parsing interval number failed: %w", err)
	}
	if num == 0 {
		return pitch.Pitch{}, fmt.Errorf("interval number cannot be zero")
	}

	dir := 1
	if num < 0 {
		dir, num = -1, -num
	}
	step := (num - 1) % 7
	oct := (num - 1) / 7

	alt, err := qualityAlt(step, quality)
	if err != nil {
		return pitch.Pitch{}, fmt.Errorf("%q: %w", text, err)
	}
	return pitch.NewInterval(step, alt, oct, dir), nil
}

// qualityAlt translates a quality to an alteration. Perfect-class steps
// have no major/minor qualities and their diminished alteration sits one
// closer to zero than on the major class.
func qualityAlt(step int, quality string) (int, error) {
	perfect := pitch.Perfectable(step)
	switch {
	case quality == "P" && perfect:
		return 0, nil
	case quality == "M" && !perfect:
		return 0, nil
	case quality == "m" && !perfect:
		return -1, nil
	case quality[0] == 'A':
		return len(quality), nil
	case quality[0] == 'd':
		if perfect {
			return -len(quality), nil
		}
		return -len(quality) - 1, nil
	}
	return 0, fmt.Errorf("quality %q does not apply to this interval number", quality)
}

// FormatInterval spells an interval as sign, quality and number.
//
// Descending intervals are spelled from the raw premultiplied
// coordinates: the magnitude is (8-step)-7*(oct+1) and the alteration
// sign flips differently for perfect and imperfect classes, because
// diminished sits one semitone from perfect but two from major. The
// round-trip tests pin this branching down, resist unifying it.
func FormatInterval(p pitch.Pitch) (string, error) {
	if !p.IsInterval() {
		return "", fmt.Errorf("cannot spell a %s as an interval", p.Kind())
	}

	f, o, dir := p.Coord()
	step, alt, oct := pitch.DecodeCoord(f, o)
	perfect := pitch.Perfectable(step)

	if dir < 0 {
		num := (8 - step) - 7*(oct+1)
		if !perfect {
			alt = alt + 1
		}
		return fmt.Sprintf("-%s%d", altQuality(perfect, -alt), num), nil
	}
	return fmt.Sprintf("%s%d", altQuality(perfect, alt), step+1+7*oct), nil
}

func altQuality(perfect bool, alt int) string {
	switch {
	case alt == 0:
		if perfect {
			return "P"
		}
		return "M"
	case alt == -1 && !perfect:
		return "m"
	case alt > 0:
		return strings.Repeat("A", alt)
	default:
		if perfect {
			return strings.Repeat("d", -alt)
		}
		return strings.Repeat("d", -alt-1)
	}
}

// Format spells any valid pitch: note names for classes and notes,
// shorthand for intervals.
func Format(p pitch.Pitch) (string, error) {
	if p.IsInterval() {
		return FormatInterval(p)
	}
	return FormatNote(p)
}
