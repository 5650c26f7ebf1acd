package chain

import "unicode/utf8"

// CharacterIndex assigns dense ids [0, Len()) to runes in order of first
// appearance. ASCII runes are resolved through a fixed table; other runes
// through a map created on first use.
type CharacterIndex struct {
	ascii [utf8.RuneSelf]int // id+1, 0 = unassigned
	other map[rune]int       // non-ASCII rune → id
	runes []rune             // id → rune
}

// NewCharacterIndex returns an empty index.
func NewCharacterIndex() *CharacterIndex {
	return &CharacterIndex{}
}

// ID returns r's id, assigning the next free id on first sight.
// Complexity: O(1) amortized.
func (x *CharacterIndex) ID(r rune) int {
	if id, ok := x.Lookup(r); ok {
		return id
	}

	id := len(x.runes)
	x.runes = append(x.runes, r)
	if r >= 0 && r < utf8.RuneSelf {
		x.ascii[r] = id + 1
	} else {
		if x.other == nil {
			x.other = make(map[rune]int)
		}
		x.other[r] = id
	}

	return id
}

// Lookup returns r's id without assigning one.
func (x *CharacterIndex) Lookup(r rune) (int, bool) {
	if r >= 0 && r < utf8.RuneSelf {
		id := x.ascii[r] - 1
		return id, id >= 0
	}
	id, ok := x.other[r]

	return id, ok
}

// Rune returns the rune that owns id.
func (x *CharacterIndex) Rune(id int) (rune, bool) {
	if id < 0 || id >= len(x.runes) {
		return 0, false
	}

	return x.runes[id], true
}

// Len returns the number of distinct runes indexed so far.
func (x *CharacterIndex) Len() int { return len(x.runes) }

// Runes returns a copy of the indexed runes in id order.
func (x *CharacterIndex) Runes() []rune {
	return append([]rune(nil), x.runes...)
}
