// Package chain decides whether a collection of words can be arranged in a
// circle where every word's last character equals the next word's first
// character.
//
// Algorithm:
//
//  1. Normalize each word to NFC (golang.org/x/text/unicode/norm), so
//     precomposed and decomposed forms of a letter meet, then case-fold it
//     (golang.org/x/text/cases.Fold) unless WithCaseSensitive is given.
//  2. Take its first and last rune (UTF-8 aware) as boundary characters.
//  3. Give every distinct boundary character a dense id in order of first
//     appearance (CharacterIndex).
//  4. Build a digraph.Graph with one edge first→last per word; parallel
//     edges are kept and single-rune words become self-loops.
//  5. The words chain iff that graph has an Eulerian circuit.
//
// Policies:
//
//   - An empty word list is trivially chainable: there is no constraint to
//     violate.
//   - A zero-length word has no boundary characters. EmptyReject (default)
//     fails with ErrEmptyWord; EmptySkip drops it before indexing.
//   - A word that is not valid UTF-8 fails with ErrInvalidUTF8. Invalid
//     bytes would all decode to U+FFFD and merge distinct boundaries.
//
// Only the yes/no answer is computed; Explain adds a diagnosis of why a
// list does not chain, but never an ordering.
//
// Errors:
//
//   - ErrEmptyWord           zero-length word under EmptyReject
//   - ErrInvalidUTF8         word is not valid UTF-8
//   - ErrUnknownEmptyPolicy  invalid EmptyPolicy passed to WithEmptyPolicy
package chain
