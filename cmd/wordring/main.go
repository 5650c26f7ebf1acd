// Command wordring reports whether a list of words can be chained into a
// circle, last letter to first letter.
package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and maps the outcome to an exit status:
// 0 success, 1 error, 2 not chainable under --exit-code.
func run(args []string, stdout, stderr io.Writer) int {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNotChainable):
		return 2
	default:
		logger := a.logger
		if a.cfg == nil {
			// configuration never loaded, so no configured logger exists
			logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
				With().Timestamp().Logger()
		}
		logger.Error().Err(err).Msg("wordring failed")
		return 1
	}
}
