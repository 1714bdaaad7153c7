package avro

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/derekparker/trie"
	"golang.org/x/text/cases"
)

// exceptionTable holds whole-word overrides in both directions:
// Roman word → Bengali word for transliteration, and Bengali word → Roman
// word for reverse transliteration.
type exceptionTable struct {
	caseSensitive bool
	forward       *trie.Trie // (folded) Roman word → Bengali
	reverse       *trie.Trie // Bengali word → Roman
	count         int
}

func newExceptionTable(caseSensitive bool) *exceptionTable {
	return &exceptionTable{
		caseSensitive: caseSensitive,
		forward:       trie.New(),
		reverse:       trie.New(),
	}
}

// key normalizes a Roman word for lookup. A Caser is stateful, so a fresh
// one is created per call.
func (et *exceptionTable) key(word string) string {
	if et.caseSensitive {
		return word
	}
	return cases.Fold().String(word)
}

// add registers word → replacement. Re-adding an identical entry is a no-op;
// a different replacement for the same key is a conflict.
func (et *exceptionTable) add(word, replacement string) error {
	if word == "" || replacement == "" {
		return fmt.Errorf("%w: empty exception %q → %q", ErrExceptionConflict, word, replacement)
	}
	k := et.key(word)
	if node, ok := et.forward.Find(k); ok {
		if prev := node.Meta().(string); prev != replacement {
			return fmt.Errorf("%w: %q maps to %q and %q", ErrExceptionConflict, word, prev, replacement)
		}
		return nil
	}
	et.forward.Add(k, replacement)
	if _, ok := et.reverse.Find(replacement); !ok {
		et.reverse.Add(replacement, word)
	}
	et.count++
	return nil
}

func (et *exceptionTable) lookup(word string) (string, bool) {
	if et == nil || et.count == 0 {
		return "", false
	}
	if node, ok := et.forward.Find(et.key(word)); ok {
		return node.Meta().(string), true
	}
	return "", false
}

func (et *exceptionTable) lookupReverse(word string) (string, bool) {
	if et == nil || et.count == 0 {
		return "", false
	}
	if node, ok := et.reverse.Find(word); ok {
		return node.Meta().(string), true
	}
	return "", false
}

// withPrefix lists the Roman exception words starting with prefix, sorted.
func (et *exceptionTable) withPrefix(prefix string) []string {
	if et == nil || et.count == 0 {
		return nil
	}
	var words []string
	if prefix == "" {
		words = et.forward.Keys()
	} else {
		words = et.forward.PrefixSearch(et.key(prefix))
	}
	sort.Strings(words)
	return words
}

// isWordRune tells which runes make up a word for exception matching.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

// wordAt returns the end of the word starting at input[at], or -1 if at is
// not the start of a word.
func wordAt(input []rune, at int) int {
	if at >= len(input) || !isWordRune(input[at]) {
		return -1
	}
	if at > 0 && isWordRune(input[at-1]) {
		return -1
	}
	end := at + 1
	for end < len(input) && isWordRune(input[end]) {
		end++
	}
	return end
}
