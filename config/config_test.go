package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(env(nil))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.CellSize)
	assert.Equal(t, 60.0, cfg.EraseRadius)
	assert.Equal(t, 0.9, cfg.ArtScale)
	assert.Equal(t, "LIMBO", cfg.MaskText)
	assert.Equal(t, DefaultRegistryURL, cfg.RegistryURL)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(env(map[string]string{
		"LIMBO_WIDTH":             "400",
		"LIMBO_HEIGHT":            "300",
		"LIMBO_CELL_SIZE":         "8",
		"LIMBO_ERASE_RADIUS":      "42.5",
		"LIMBO_ARTIST":            "ana",
		"LIMBO_FINE_POINTER_ONLY": "true",
		"LIMBO_LOG_LEVEL":         "warn",
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, 8, cfg.CellSize)
	assert.Equal(t, 42.5, cfg.EraseRadius)
	assert.Equal(t, "ana", cfg.Artist)
	assert.True(t, cfg.FinePointerOnly)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
}

func TestFromLookup_DebugForcesDebugLevel(t *testing.T) {
	cfg, err := FromLookup(env(map[string]string{"DEBUG": "1", "LIMBO_LOG_LEVEL": "error"}))
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestFromLookup_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"bad int", map[string]string{"LIMBO_WIDTH": "wide"}},
		{"bad float", map[string]string{"LIMBO_ERASE_RADIUS": "far"}},
		{"bad bool", map[string]string{"LIMBO_HIDPI": "maybe"}},
		{"bad level", map[string]string{"LIMBO_LOG_LEVEL": "loud"}},
		{"zero cell", map[string]string{"LIMBO_CELL_SIZE": "0"}},
		{"art scale above one", map[string]string{"LIMBO_ART_SCALE": "1.5"}},
		{"blank mask", map[string]string{"LIMBO_MASK_TEXT": "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(env(tt.vars))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	dir := t.TempDir()

	loadDotenv(log, filepath.Join(dir, "missing.env"))
	assert.Empty(t, hook.AllEntries(), "a missing file is not worth a log line")

	// A directory opens fine but cannot be read as a file.
	unreadable := filepath.Join(dir, "dir.env")
	require.NoError(t, os.Mkdir(unreadable, 0o755))
	loadDotenv(log, unreadable)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	good := filepath.Join(dir, "good.env")
	require.NoError(t, os.WriteFile(good, []byte("LIMBO_TEST_DOTENV=yes\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("LIMBO_TEST_DOTENV") })
	hook.Reset()
	loadDotenv(log, good)
	assert.Empty(t, hook.AllEntries())
	assert.Equal(t, "yes", os.Getenv("LIMBO_TEST_DOTENV"))
}
