// Package wordring decides whether a list of words can be chained into a
// circle, each word's last letter matching the next word's first letter.
//
// The question reduces to graph theory: boundary letters become nodes, each
// word becomes a directed edge first→last, and the words chain iff that
// multigraph has an Eulerian circuit.
//
// Packages:
//
//	digraph/            dense directed multigraph, reachability, transpose,
//	                    strong connectivity and the Eulerian-circuit test
//	chain/              letter indexing, case folding, empty-word policy and
//	                    the chainability verdict with an optional diagnosis
//	internal/config     viper-backed settings (defaults, file, env, flags)
//	internal/logging    zerolog construction
//	internal/wordlist   word lists from text, YAML, JSON or TOML
//	cmd/wordring        cobra command line
//
// Quick example:
//
//	ok, err := chain.IsChainable([]string{"for", "geek", "rig", "kaf"})
//	// ok == true: for → rig → geek → kaf → for
//
//	go install github.com/katalvlaran/wordring/cmd/wordring@latest
package wordring
