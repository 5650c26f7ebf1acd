package chain

import (
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrEmptyWord indicates a zero-length word under the EmptyReject policy.
	ErrEmptyWord = errors.New("chain: empty word")

	// ErrInvalidUTF8 indicates a word that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("chain: invalid UTF-8 in word")

	// ErrUnknownEmptyPolicy indicates an EmptyPolicy value outside the defined set.
	ErrUnknownEmptyPolicy = errors.New("chain: unknown empty-word policy")
)

// EmptyPolicy selects how zero-length words are handled.
type EmptyPolicy int

const (
	// EmptyReject fails the whole query with ErrEmptyWord.
	EmptyReject EmptyPolicy = iota
	// EmptySkip ignores zero-length words as if they were absent.
	EmptySkip
)

// String returns the policy name as used in configuration.
func (p EmptyPolicy) String() string {
	switch p {
	case EmptyReject:
		return "reject"
	case EmptySkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Option configures a Checker.
type Option func(*Options)

// Options holds the Checker configuration.
type Options struct {
	// EmptyPolicy controls zero-length words. Default EmptyReject.
	EmptyPolicy EmptyPolicy

	// CaseSensitive disables case folding of boundary characters.
	// Default false: "GeeK" and "geek" have the same boundaries.
	CaseSensitive bool

	// Logger receives debug events. Default zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns Options with:
//   - EmptyReject
//   - case folding enabled
//   - a disabled logger
func DefaultOptions() Options {
	return Options{
		EmptyPolicy:   EmptyReject,
		CaseSensitive: false,
		Logger:        zerolog.Nop(),
	}
}

// WithEmptyPolicy sets the zero-length word policy.
func WithEmptyPolicy(p EmptyPolicy) Option {
	return func(o *Options) {
		o.EmptyPolicy = p
	}
}

// WithCaseSensitive compares boundary characters exactly, without folding.
func WithCaseSensitive() Option {
	return func(o *Options) {
		o.CaseSensitive = true
	}
}

// WithLogger installs l for debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Report explains a chainability verdict in terms of characters.
type Report struct {
	// Chainable is the verdict, identical to Check's result.
	Chainable bool `json:"chainable" yaml:"chainable"`

	// Words is the number of words that contributed an edge.
	Words int `json:"words" yaml:"words"`

	// Skipped counts zero-length words dropped under EmptySkip.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Characters lists the boundary characters in id order.
	Characters []string `json:"characters" yaml:"characters"`

	// Unreachable lists characters that are not mutually reachable with the
	// first boundary character.
	Unreachable []string `json:"unreachable,omitempty" yaml:"unreachable,omitempty"`

	// Unbalanced lists characters that start and end a different number of words.
	Unbalanced []CharImbalance `json:"unbalanced,omitempty" yaml:"unbalanced,omitempty"`
}

// CharImbalance reports a boundary character whose count as a last
// character (In) differs from its count as a first character (Out).
type CharImbalance struct {
	Char string `json:"char" yaml:"char"`
	In   int    `json:"in" yaml:"in"`
	Out  int    `json:"out" yaml:"out"`
}
