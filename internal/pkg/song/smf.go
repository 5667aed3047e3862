package song

import (
	"fmt"

	mmidi "github.com/moutend/go-midi"
	mmidiev "github.com/moutend/go-midi/event"

	"github.com/tonalab/tonal/pitch"
)

// FromSMF extracts the played pitches of a standard midi file, in track
// order, named with the given spelling preference. Without any key
// context flats are the conventional pick.
func FromSMF(data []byte, useSharps bool) (Song, error) {
	parser := mmidi.NewParser(data)
	parsed, err := parser.Parse()
	if err != nil {
		return Song{}, fmt.Errorf("parsing midi file failed: %w", err)
	}

	name := pitch.ChromaticName(useSharps)
	var s Song
	for _, track := range parsed.Tracks {
		for _, event := range track.Events {
			on, ok := event.(*mmidiev.NoteOnEvent)
			if !ok || on.Velocity() == 0 {
				continue
			}
			if n := name(int(on.Note())); n != "" {
				s.Notes = append(s.Notes, n)
			}
		}
	}

	if len(s.Notes) == 0 {
		return Song{}, fmt.Errorf("midi file contains no notes")
	}
	return s, nil
}
