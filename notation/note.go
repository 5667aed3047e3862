// Package notation converts pitch text to pitch values and back.
//
// Two grammars are covered: note names (letter, accidental run, optional
// signed octave, "C#4" "Bb" "F##-1") and interval shorthand ("P5" "-M3"
// "AA4", with the quality accepted on either side of the number).
// Failed parses are plain errors, never panics, and a bounded cache
// keeps repeated text from hitting the grammars twice.
package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tonalab/tonal/pitch"
)

const noteLetters = "CDEFGAB"

var noteRegex = regexp.MustCompile(`^([a-gA-G])(#+|b+)?(-?\d+)?$`)

// parseNote recognizes note text: without an octave it encodes a pitch
// class, with one a note.
func parseNote(text string) (pitch.Pitch, error) {
	m := noteRegex.FindStringSubmatch(text)
	if m == nil {
		return pitch.Pitch{}, fmt.Errorf("%q is not a note name", text)
	}

	step := strings.IndexByte(noteLetters, strings.ToUpper(m[1])[0])

	var alt int
	if m[2] != "" {
		if m[2][0] == '#' {
			alt = len(m[2])
		} else {
			alt = -len(m[2])
		}
	}

	if m[3] == "" {
		return pitch.NewClass(step, alt), nil
	}
	oct, err := strconv.Atoi(m[3])
	if err != nil {
		return pitch.Pitch{}, fmt.Errorf("parsing octave failed: %w", err)
	}
	return pitch.NewNote(step, alt, oct), nil
}

// FormatNote spells a pitch class or note as letter, accidental run and,
// for notes, the octave. Intervals and invalid values do not have a note
// spelling.
func FormatNote(p pitch.Pitch) (string, error) {
	c, ok := p.Decode()
	if !ok || p.IsInterval() {
		return "", fmt.Errorf("cannot spell a %s as a note name", p.Kind())
	}

	name := string(noteLetters[c.Step]) + accidentals(c.Alt)
	if p.IsNote() {
		name += strconv.Itoa(c.Oct)
	}
	return name, nil
}

func accidentals(alt int) string {
	if alt >= 0 {
		return strings.Repeat("#", alt)
	}
	return strings.Repeat("b", -alt)
}
