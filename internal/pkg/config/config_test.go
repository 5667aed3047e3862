package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonalab/tonal/notation"
	"github.com/tonalab/tonal/pitch"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, pitch.StandardTuning, c.Tuning.ReferenceHz)
	assert.False(t, c.Tuning.PreferSharps)
	assert.Equal(t, notation.DefaultCacheSize, c.Parser.CacheSize)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tonal.ini")
	content := `[tuning]
reference_hz = 432
prefer_sharps = true

[parser]
cache_size = 16
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 432.0, c.Tuning.ReferenceHz)
	assert.True(t, c.Tuning.PreferSharps)
	assert.Equal(t, 16, c.Parser.CacheSize)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tonal.ini")
	assert.NoError(t, os.WriteFile(path, []byte("[tuning]\nprefer_sharps = true\n"), 0o644))

	c, err := Load(path)
	assert.NoError(t, err)
	assert.True(t, c.Tuning.PreferSharps)
	assert.Equal(t, pitch.StandardTuning, c.Tuning.ReferenceHz)
	assert.Equal(t, notation.DefaultCacheSize, c.Parser.CacheSize)
}

func TestLoadRejectsBadReference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tonal.ini")
	assert.NoError(t, os.WriteFile(path, []byte("[tuning]\nreference_hz = -440\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
