package pitch

import (
	"fmt"
	"math"
)

// StandardTuning is the reference frequency of A4 (MIDI 69).
const StandardTuning = 440.0

// midiOffset anchors the height scale so that C4 lands on MIDI 60.
const midiOffset = 12

// Midi maps a note to its MIDI number. Pitch classes have no register
// and notes outside 0..127 have no MIDI number, so both report false.
func Midi(p Pitch) (int, bool) {
	if p.kind != Note {
		return 0, false
	}
	m := p.Height() + midiOffset
	if m < 0 || m > 127 {
		return 0, false
	}
	return m, true
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// ChromaticName returns a naming function for raw MIDI numbers. Black
// keys are spelled a semitone above the lower white key with a sharp, or
// a semitone below the upper one with a flat, per useSharps. Numbers
// outside 0..127 name to the empty string.
func ChromaticName(useSharps bool) func(int) string {
	names := &flatNames
	if useSharps {
		names = &sharpNames
	}
	return func(m int) string {
		if m < 0 || m > 127 {
			return ""
		}
		return fmt.Sprintf("%s%d", names[m%12], m/12-1)
	}
}

// FromMidi names a MIDI number with flats, the conventional spelling
// when no key context is available to pick between enharmonics.
func FromMidi(m int) string {
	return ChromaticName(false)(m)
}

// Freq returns a Pitch→Hz function in twelve-tone equal temperament,
// tuned so that MIDI 69 sounds at the given reference frequency.
func Freq(referenceHz float64) func(Pitch) (float64, bool) {
	return func(p Pitch) (float64, bool) {
		m, ok := Midi(p)
		if !ok {
			return 0, false
		}
		return referenceHz * math.Pow(2, float64(m-69)/12), true
	}
}

// Frequency resolves a note to Hz at standard A440 tuning.
func Frequency(p Pitch) (float64, bool) {
	return Freq(StandardTuning)(p)
}
