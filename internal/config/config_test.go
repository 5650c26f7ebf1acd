package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordring/chain"
	"github.com/katalvlaran/wordring/internal/config"
	"github.com/katalvlaran/wordring/internal/wordlist"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "auto", cfg.Input.Format)
	assert.False(t, cfg.Words.SkipEmpty)
	assert.False(t, cfg.Words.CaseSensitive)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, wordlist.Auto, cfg.InputFormat())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordring.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "warn"
format = "json"

[words]
skip_empty = true

[output]
format = "yaml"
`), 0o600))

	// env beats file
	t.Setenv("WORDRING_LOG_LEVEL", "debug")

	// flag beats env
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output", "text", "")
	require.NoError(t, fs.Parse([]string{"--output=json"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag(config.KeyOutputFormat, fs.Lookup("output")))

	cfg, err := config.Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level, "env overrides file")
	assert.Equal(t, "json", cfg.Log.Format, "file overrides default")
	assert.True(t, cfg.Words.SkipEmpty)
	assert.Equal(t, "json", cfg.Output.Format, "flag overrides file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"WORDRING_LOG_LEVEL":     "loud",
		"WORDRING_LOG_FORMAT":    "xml",
		"WORDRING_INPUT_FORMAT":  "csv",
		"WORDRING_OUTPUT_FORMAT": "html",
	}
	for env, val := range cases {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, val)
			_, err := config.Load(viper.New(), "")
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestValidate_EmptyLevel(t *testing.T) {
	cfg := &config.Config{
		Log:    config.Log{Level: "", Format: "console"},
		Input:  config.Input{Format: "auto"},
		Output: config.Output{Format: "text"},
	}
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestChainOptions(t *testing.T) {
	cfg := &config.Config{Words: config.Words{SkipEmpty: true, CaseSensitive: true}}
	opts := cfg.ChainOptions(zerolog.Nop())

	ok, err := chain.IsChainable([]string{"Ab", "", "ba"}, opts...)
	require.NoError(t, err, "empty word skipped")
	assert.False(t, ok, "case-sensitive: A and a differ")

	ok, err = chain.IsChainable([]string{"Ab", "ba"}, (&config.Config{}).ChainOptions(zerolog.Nop())...)
	require.NoError(t, err)
	assert.True(t, ok, "folded: a→b, b→a")

	ok, err = chain.IsChainable([]string{"Ab", "", "ba"}, (&config.Config{}).ChainOptions(zerolog.Nop())...)
	assert.ErrorIs(t, err, chain.ErrEmptyWord)
	assert.False(t, ok)
}
