package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. KAKEZAN_PLAYBACK_RATE.
const EnvPrefix = "KAKEZAN"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"db":        "db",
	"log-level": "log.level",
	"log-file":  "log.file",
	"speech":    "speech.backend",
	"clips":     "playback.clip_dir",
	"rate":      "playback.rate",
	"gap":       "playback.gap",
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. When empty, config.yaml in the
	// user config directory is read if it exists.
	File string

	// Flags are bound over every other source. Unknown flags are ignored.
	Flags *pflag.FlagSet
}

// Load builds a validated Config.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readFile(v, opts.File); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("playback.rate", 0.95)
	v.SetDefault("playback.pitch", 1.0)
	v.SetDefault("playback.lang", "ja-JP")
	v.SetDefault("playback.intro_pause", 250*time.Millisecond)
	v.SetDefault("playback.gap", 450*time.Millisecond)
	v.SetDefault("playback.intro", true)
	v.SetDefault("playback.min_dan", 1)
	v.SetDefault("playback.max_dan", 9)
	v.SetDefault("playback.clip_dir", "")
	v.SetDefault("playback.ext", "wav")
	v.SetDefault("playback.sample_rate", 44100)

	v.SetDefault("speech.backend", "none")
	v.SetDefault("speech.cache_dir", "")
	v.SetDefault("speech.google_url", "")
	v.SetDefault("speech.openai_api_key", "")
	v.SetDefault("speech.openai_model", "")
	v.SetDefault("speech.openai_voice", "")
	v.SetDefault("speech.gemini_api_key", "")
	v.SetDefault("speech.gemini_model", "")
	v.SetDefault("speech.gemini_voice", "")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.timeout", 30*time.Second)
}

func readFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
		return nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		// No config directory means no config file; env and flags still apply.
		return nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(dir, "kakezan"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	// --no-intro is the negation of playback.intro.
	if f := flags.Lookup("no-intro"); f != nil && f.Changed {
		v.Set("playback.intro", false)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint and reports them together.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (%s=%v)",
			strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
