package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/letsssgooo/quizmaster/internal/results"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "quiz_results.txt", cfg.ResultsFile)
	assert.Equal(t, results.FormatText, cfg.Format())
	assert.Equal(t, time.Second, cfg.Pause)
	assert.Equal(t, 100, cfg.Stars)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.NoClear)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{
		"--results-file", "out.jsonl",
		"--results-format", "jsonl",
		"--pause", "0s",
		"--stars", "0",
		"--no-color",
		"--no-clear",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "out.jsonl", cfg.ResultsFile)
	assert.Equal(t, results.FormatJSONL, cfg.Format())
	assert.Equal(t, time.Duration(0), cfg.Pause)
	assert.Equal(t, 0, cfg.Stars)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.NoClear)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("QUIZ_RESULTS_FILE", "env_results.txt")
	t.Setenv("QUIZ_PAUSE", "250ms")
	t.Setenv("QUIZ_NO_COLOR", "true")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "env_results.txt", cfg.ResultsFile)
	assert.Equal(t, 250*time.Millisecond, cfg.Pause)
	assert.True(t, cfg.NoColor)
}

func TestLoad_FlagWinsOverEnv(t *testing.T) {
	t.Setenv("QUIZ_RESULTS_FILE", "env_results.txt")

	cfg, err := Load([]string{"--results-file", "flag_results.txt"})
	require.NoError(t, err)

	assert.Equal(t, "flag_results.txt", cfg.ResultsFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizmaster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("results_file: file_results.txt\nstars: 5\npause: 2s\n"), 0o644))

	t.Setenv("QUIZ_STARS", "7")

	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, "file_results.txt", cfg.ResultsFile)
	assert.Equal(t, 7, cfg.Stars)
	assert.Equal(t, 2*time.Second, cfg.Pause)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown format", args: []string{"--results-format", "xml"}},
		{name: "negative pause", args: []string{"--pause", "-1s"}},
		{name: "negative stars", args: []string{"--stars", "-3"}},
		{name: "zero width", args: []string{"--width", "0"}},
		{name: "empty results file", args: []string{"--results-file", ""}},
		{name: "bad log level", args: []string{"--log-level", "loud"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(tc.args)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_Help(t *testing.T) {
	_, err := Load([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestLoad_FormatNormalized(t *testing.T) {
	t.Setenv("QUIZ_RESULTS_FORMAT", " JSONL ")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, results.FormatJSONL, cfg.Format())
}
