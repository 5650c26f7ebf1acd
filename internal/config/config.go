// Package config loads wordring settings from defaults, an optional config
// file, WORDRING_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wordring/chain"
	"github.com/katalvlaran/wordring/internal/wordlist"
)

// EnvPrefix is prepended to every environment override, e.g. WORDRING_LOG_LEVEL.
const EnvPrefix = "WORDRING"

// Keys understood by Load.
const (
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyInputFormat   = "input.format"
	KeySkipEmpty     = "words.skip_empty"
	KeyCaseSensitive = "words.case_sensitive"
	KeyOutputFormat  = "output.format"
)

// ErrInvalid indicates a setting with an unsupported value.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved wordring configuration.
type Config struct {
	Log    Log    `mapstructure:"log"`
	Input  Input  `mapstructure:"input"`
	Words  Words  `mapstructure:"words"`
	Output Output `mapstructure:"output"`
}

// Log configures the CLI logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

// Input configures how word files are decoded.
type Input struct {
	Format string `mapstructure:"format"` // auto | lines | yaml | json | toml
}

// Words configures the chainability checker.
type Words struct {
	SkipEmpty     bool `mapstructure:"skip_empty"`
	CaseSensitive bool `mapstructure:"case_sensitive"`
}

// Output configures how the verdict is rendered.
type Output struct {
	Format string `mapstructure:"format"` // text | json | yaml
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyInputFormat, string(wordlist.Auto))
	v.SetDefault(KeySkipEmpty, false)
	v.SetDefault(KeyCaseSensitive, false)
	v.SetDefault(KeyOutputFormat, "text")
}

// Load resolves the configuration held by v. Flags must already be bound
// with v.BindPFlag. path, when non-empty, names a config file in any
// format viper reads (yaml, toml, json, ...).
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil || lvl == zerolog.NoLevel {
		return fmt.Errorf("%w: %s=%q", ErrInvalid, KeyLogLevel, c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %s=%q", ErrInvalid, KeyLogFormat, c.Log.Format)
	}
	if _, err := wordlist.ParseFormat(c.Input.Format); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyInputFormat, err)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: %s=%q", ErrInvalid, KeyOutputFormat, c.Output.Format)
	}

	return nil
}

// ChainOptions translates the word settings into chain options.
func (c *Config) ChainOptions(logger zerolog.Logger) []chain.Option {
	opts := []chain.Option{chain.WithLogger(logger)}
	if c.Words.SkipEmpty {
		opts = append(opts, chain.WithEmptyPolicy(chain.EmptySkip))
	}
	if c.Words.CaseSensitive {
		opts = append(opts, chain.WithCaseSensitive())
	}

	return opts
}

// InputFormat returns the validated input format.
func (c *Config) InputFormat() wordlist.Format {
	f, err := wordlist.ParseFormat(c.Input.Format)
	if err != nil {
		return wordlist.Auto
	}

	return f
}
