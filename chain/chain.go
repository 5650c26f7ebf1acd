package chain

import (
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/wordring/digraph"
)

// Checker answers chainability queries with a fixed set of Options.
// It holds no per-query state and may be shared between goroutines.
type Checker struct {
	opts Options
}

// NewChecker applies opts over DefaultOptions.
// Returns ErrUnknownEmptyPolicy for an invalid policy.
func NewChecker(opts ...Option) (*Checker, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.EmptyPolicy != EmptyReject && o.EmptyPolicy != EmptySkip {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEmptyPolicy, int(o.EmptyPolicy))
	}

	return &Checker{opts: o}, nil
}

// IsChainable reports whether words can be arranged in a circle where each
// word's last character equals the next word's first character.
// An empty list is chainable. See Checker.Check.
func IsChainable(words []string, opts ...Option) (bool, error) {
	c, err := NewChecker(opts...)
	if err != nil {
		return false, err
	}

	return c.Check(words)
}

// BuildGraph returns the boundary-character graph of words together with
// the index that maps its node ids back to characters.
func BuildGraph(words []string, opts ...Option) (*digraph.Graph, *CharacterIndex, error) {
	c, err := NewChecker(opts...)
	if err != nil {
		return nil, nil, err
	}
	b, err := c.build(words)
	if err != nil {
		return nil, nil, err
	}

	return b.graph, b.index, nil
}

// Check reports whether words chain into a circle.
// Returns ErrEmptyWord (wrapped with the word position) when a zero-length
// word is met under EmptyReject, and ErrInvalidUTF8 for a word that is not
// valid UTF-8.
// Complexity: Time O(L + N + W) where L is the total input length,
// N the number of distinct boundary characters and W the word count.
func (c *Checker) Check(words []string) (bool, error) {
	b, err := c.build(words)
	if err != nil {
		return false, err
	}

	ok := b.graph.IsEulerianCircuit()
	c.opts.Logger.Debug().
		Int("words", b.words).
		Int("characters", b.index.Len()).
		Bool("chainable", ok).
		Msg("chain verdict")

	return ok, nil
}

// Explain is Check plus a character-level diagnosis of the verdict.
func (c *Checker) Explain(words []string) (*Report, error) {
	b, err := c.build(words)
	if err != nil {
		return nil, err
	}

	a := b.graph.Analyze()
	char := func(id int) string {
		r, _ := b.index.Rune(id)
		return string(r)
	}

	rep := &Report{
		Chainable:  a.Eulerian,
		Words:      b.words,
		Skipped:    b.skipped,
		Characters: lo.Map(b.index.Runes(), func(r rune, _ int) string { return string(r) }),
		Unbalanced: lo.Map(a.Unbalanced, func(im digraph.Imbalance, _ int) CharImbalance {
			return CharImbalance{Char: char(im.Node), In: im.In, Out: im.Out}
		}),
	}
	if !a.StronglyConnected {
		for v := 0; v < a.Nodes; v++ {
			if !a.ForwardReach[v] || !a.BackwardReach[v] {
				rep.Unreachable = append(rep.Unreachable, char(v))
			}
		}
	}

	c.opts.Logger.Debug().
		Int("words", rep.Words).
		Int("unreachable", len(rep.Unreachable)).
		Int("unbalanced", len(rep.Unbalanced)).
		Bool("chainable", rep.Chainable).
		Msg("chain explained")

	return rep, nil
}

// built is the product of one build pass.
type built struct {
	graph   *digraph.Graph
	index   *CharacterIndex
	words   int
	skipped int
}

// build normalizes, folds, indexes and wires words into a fresh graph.
func (c *Checker) build(words []string) (*built, error) {
	// cases.Caser keeps state between calls, so each query gets its own.
	var fold cases.Caser
	if !c.opts.CaseSensitive {
		fold = cases.Fold()
	}

	// 1. First pass: boundary runes and ids; the node count must be known
	//    before the graph is allocated.
	idx := NewCharacterIndex()
	pairs := make([][2]int, 0, len(words))
	skipped := 0
	var (
		i           int
		w           string
		first, last rune
	)
	for i, w = range words {
		if w == "" {
			if c.opts.EmptyPolicy == EmptySkip {
				skipped++
				continue
			}
			return nil, fmt.Errorf("%w at position %d", ErrEmptyWord, i)
		}
		if !utf8.ValidString(w) {
			return nil, fmt.Errorf("%w at position %d", ErrInvalidUTF8, i)
		}
		w = norm.NFC.String(w)
		if !c.opts.CaseSensitive {
			w = fold.String(w)
		}
		first, _ = utf8.DecodeRuneInString(w)
		last, _ = utf8.DecodeLastRuneInString(w)
		pairs = append(pairs, [2]int{idx.ID(first), idx.ID(last)})
	}

	// 2. Second pass: one edge per word
	g, err := digraph.New(idx.Len())
	if err != nil {
		return nil, fmt.Errorf("chain: %w", err)
	}
	var p [2]int
	for _, p = range pairs {
		if err = g.AddEdge(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("chain: %w", err)
		}
	}

	c.opts.Logger.Debug().
		Int("words", len(pairs)).
		Int("skipped", skipped).
		Int("nodes", g.N()).
		Int("edges", g.EdgeCount()).
		Msg("chain graph built")

	return &built{graph: g, index: idx, words: len(pairs), skipped: skipped}, nil
}
