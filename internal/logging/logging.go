// Package logging builds the zerolog logger used by the wordring CLI.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wordring/internal/config"
)

// New returns a timestamped logger writing to w at cfg.Level. Format
// "console" renders human-readable lines; "json" emits one object per event.
func New(cfg config.Log, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: %w", err)
	}

	var out io.Writer
	switch cfg.Format {
	case "json":
		out = w
	case "console", "":
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		cw.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		}
		out = cw
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
