package config

import (
	"fmt"
	"os"

	"github.com/go-ini/ini"

	"github.com/tonalab/tonal/notation"
	"github.com/tonalab/tonal/pitch"
)

// Config holds CLI settings loaded from an ini file.
type Config struct {
	Tuning struct {
		ReferenceHz  float64 // frequency of A4
		PreferSharps bool    // spelling for midi-derived note names
	}
	Parser struct {
		CacheSize int
	}
}

func Default() Config {
	var c Config
	c.Tuning.ReferenceHz = pitch.StandardTuning
	c.Tuning.PreferSharps = false
	c.Parser.CacheSize = notation.DefaultCacheSize
	return c
}

// Load reads settings from path on top of the defaults. A missing file
// is not an error, the defaults simply apply.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading config file failed: %w", err)
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return c, fmt.Errorf("parsing config file failed: %w", err)
	}

	tuning := cfg.Section("tuning")
	c.Tuning.ReferenceHz = tuning.Key("reference_hz").MustFloat64(c.Tuning.ReferenceHz)
	c.Tuning.PreferSharps = tuning.Key("prefer_sharps").MustBool(c.Tuning.PreferSharps)

	parser := cfg.Section("parser")
	c.Parser.CacheSize = parser.Key("cache_size").MustInt(c.Parser.CacheSize)

	if c.Tuning.ReferenceHz <= 0 {
		return c, fmt.Errorf("reference_hz must be positive, got %v", c.Tuning.ReferenceHz)
	}
	return c, nil
}
