// Package song handles note-sequence files for the CLI: YAML or TOML
// documents listing note names, transposition over whole sequences, a
// change watcher and standard midi file import.
package song

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tonalab/tonal/notation"
)

// Song is a named sequence of note names.
type Song struct {
	Name  string   `yaml:"name" toml:"name"`
	Notes []string `yaml:"notes" toml:"notes"`
}

// Load reads a song from a YAML (.yaml/.yml) or TOML (.toml) file,
// picked by extension. Unknown fields are rejected for TOML, matching
// how strict the config format should be about typos.
func Load(path string) (Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Song{}, fmt.Errorf("reading song file failed: %w", err)
	}

	var s Song
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Song{}, fmt.Errorf("parsing yaml failed: %w", err)
		}
	case ".toml":
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		if err := d.Decode(&s); err != nil {
			return Song{}, fmt.Errorf("parsing toml failed: %w", err)
		}
	default:
		return Song{}, fmt.Errorf("unsupported song format: %q", ext)
	}

	if len(s.Notes) == 0 {
		return Song{}, fmt.Errorf("song %q has no notes", path)
	}
	for i, note := range s.Notes {
		if _, err := notation.Note(note); err != nil {
			return Song{}, fmt.Errorf("note %d: %w", i, err)
		}
	}
	return s, nil
}

// Transposed returns a copy of the song with every note moved by the
// given interval.
func (s Song) Transposed(interval string) (Song, error) {
	shift := notation.TransposeBy(interval)
	out := Song{Name: s.Name, Notes: make([]string, len(s.Notes))}
	for i, note := range s.Notes {
		moved, err := shift(note)
		if err != nil {
			return Song{}, fmt.Errorf("note %d: %w", i, err)
		}
		out.Notes[i] = moved
	}
	return out, nil
}
