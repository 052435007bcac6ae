package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config directory at an empty temp dir so a
// developer's own config.yaml never leaks into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 0.95, cfg.Playback.Rate)
	assert.Equal(t, "ja-JP", cfg.Playback.Lang)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.IntroPause)
	assert.Equal(t, 450*time.Millisecond, cfg.Playback.Gap)
	assert.True(t, cfg.Playback.Intro)
	assert.Equal(t, 1, cfg.Playback.MinDan)
	assert.Equal(t, 9, cfg.Playback.MaxDan)
	assert.Equal(t, "wav", cfg.Playback.Ext)
	assert.Equal(t, "none", cfg.Speech.Backend)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("KAKEZAN_PLAYBACK_RATE", "0.8")
	t.Setenv("KAKEZAN_PLAYBACK_GAP", "600ms")
	t.Setenv("KAKEZAN_PLAYBACK_INTRO", "false")
	t.Setenv("KAKEZAN_SPEECH_BACKEND", "google")
	t.Setenv("KAKEZAN_LOG_LEVEL", "debug")
	t.Setenv("KAKEZAN_DB", "/tmp/kakezan-test.db")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.Playback.Rate)
	assert.Equal(t, 600*time.Millisecond, cfg.Playback.Gap)
	assert.False(t, cfg.Playback.Intro)
	assert.Equal(t, "google", cfg.Speech.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/kakezan-test.db", cfg.DB)
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
playback:
  rate: 1.05
  min_dan: 2
  max_dan: 5
  ext: mp3
speech:
  backend: openai
  openai_voice: shimmer
`), 0o644))

	// Env beats the file.
	t.Setenv("KAKEZAN_PLAYBACK_MAX_DAN", "4")

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)

	assert.Equal(t, 1.05, cfg.Playback.Rate)
	assert.Equal(t, 2, cfg.Playback.MinDan)
	assert.Equal(t, 4, cfg.Playback.MaxDan)
	assert.Equal(t, "mp3", cfg.Playback.Ext)
	assert.Equal(t, "openai", cfg.Speech.Backend)
	assert.Equal(t, "shimmer", cfg.Speech.OpenAIVoice)
}

func TestLoadDefaultConfigDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "kakezan"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kakezan", "config.yaml"),
		[]byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(Options{File: filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)
}

func TestLoadFlags(t *testing.T) {
	isolate(t)
	t.Setenv("KAKEZAN_SPEECH_BACKEND", "google")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("speech", "", "")
	flags.Float64("rate", 0, "")
	flags.Bool("no-intro", false, "")
	flags.Int("unrelated", 0, "")
	require.NoError(t, flags.Parse([]string{"--db", "flag.db", "--speech", "gemini", "--rate", "0.75", "--no-intro"}))

	cfg, err := Load(Options{Flags: flags})
	require.NoError(t, err)

	assert.Equal(t, "flag.db", cfg.DB)
	assert.Equal(t, "gemini", cfg.Speech.Backend)
	assert.Equal(t, 0.75, cfg.Playback.Rate)
	assert.False(t, cfg.Playback.Intro)
}

func TestLoadUnsetFlagsKeepLowerSources(t *testing.T) {
	isolate(t)
	t.Setenv("KAKEZAN_PLAYBACK_RATE", "0.9")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float64("rate", 1.1, "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(Options{Flags: flags})
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.Playback.Rate)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"rate too fast", map[string]string{"KAKEZAN_PLAYBACK_RATE": "1.5"}, "Playback.Rate"},
		{"gap too short", map[string]string{"KAKEZAN_PLAYBACK_GAP": "50ms"}, "Playback.Gap"},
		{"intro pause too long", map[string]string{"KAKEZAN_PLAYBACK_INTRO_PAUSE": "2s"}, "Playback.IntroPause"},
		{"dan range inverted", map[string]string{"KAKEZAN_PLAYBACK_MIN_DAN": "7", "KAKEZAN_PLAYBACK_MAX_DAN": "3"}, "Playback.MaxDan"},
		{"unknown backend", map[string]string{"KAKEZAN_SPEECH_BACKEND": "espeak"}, "Speech.Backend"},
		{"unknown log level", map[string]string{"KAKEZAN_LOG_LEVEL": "loud"}, "Log.Level"},
		{"unknown llm provider", map[string]string{"KAKEZAN_LLM_PROVIDER": "llama"}, "LLM.Provider"},
		{"bad extension", map[string]string{"KAKEZAN_PLAYBACK_EXT": "flac"}, "Playback.Ext"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
