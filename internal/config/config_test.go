package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"HANGMAN_LOG_LEVEL", "HANGMAN_COLOR", "HANGMAN_REPLAY", "HANGMAN_DAILY_SALT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "warn", Color: true, Replay: true, DailySalt: "local_dev_salt"}, cfg)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)
}

func TestLoad_File(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "hangman.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\ncolor: false\nreplay: false\ndaily_salt: pepper\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Color)
	assert.False(t, cfg.Replay)
	assert.Equal(t, "pepper", cfg.DailySalt)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoad_HomeConfig(t *testing.T) {
	isolate(t)

	dir := filepath.Join(os.Getenv("HOME"), ".config", "hangman")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("replay: false\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Replay)
	assert.True(t, cfg.Color)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("HANGMAN_LOG_LEVEL", "INFO")
	t.Setenv("HANGMAN_COLOR", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Color)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: chatty\n"), 0o600))
		_, err := Load(path)
		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestLevel(t *testing.T) {
	t.Parallel()

	lvl, err := (&Config{LogLevel: " Debug "}).Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = (&Config{LogLevel: "chatty"}).Level()
	assert.ErrorContains(t, err, `invalid log level "chatty"`)
}
