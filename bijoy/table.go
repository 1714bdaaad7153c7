package bijoy

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

// ErrInvalidTable is returned for malformed glyph tables.
var ErrInvalidTable = errors.New("invalid glyph table")

// Entry maps a Unicode cluster to the Bijoy glyph sequence drawing it.
type Entry struct {
	Unicode string
	Legacy  string
}

// Classes lists the Bengali code points which govern glyph ordering.
type Classes struct {
	Prekar      []string // vowel signs drawn before their consonant
	Postkar     []string // vowel signs drawn after their consonant
	Banjonborno string   // consonants
	Halant      string   // virama
	Nukta       []string // signs attaching to a syllable: ং ঃ ঁ
}

// Table is a validated glyph table with collisions resolved: the last entry
// for a Unicode key decides its glyphs, and the last entry for a glyph
// sequence decides its Unicode cluster.
type Table struct {
	entries    []Entry
	classes    Classes
	toLegacy   map[string]string
	toUnicode  map[string]string
	collisions []string
}

// NewTable checks entries and classes and resolves collisions.
func NewTable(entries []Entry, classes Classes) (*Table, error) {
	if utf8.RuneCountInString(classes.Halant) != 1 {
		return nil, fmt.Errorf("%w: halant must be a single code point, is %q", ErrInvalidTable, classes.Halant)
	}
	for _, group := range [][]string{classes.Prekar, classes.Postkar, classes.Nukta} {
		for _, s := range group {
			if utf8.RuneCountInString(s) != 1 {
				return nil, fmt.Errorf("%w: class entry %q is not a single code point", ErrInvalidTable, s)
			}
		}
	}
	t := &Table{
		entries:   slices.Clone(entries),
		classes:   classes,
		toLegacy:  make(map[string]string, len(entries)),
		toUnicode: make(map[string]string, len(entries)),
	}
	seen := make(map[string]bool)
	for i, e := range entries {
		if e.Unicode == "" || e.Legacy == "" {
			return nil, fmt.Errorf("%w: entry %d is empty (%q → %q)", ErrInvalidTable, i, e.Unicode, e.Legacy)
		}
		if prev, ok := t.toLegacy[e.Unicode]; ok && prev != e.Legacy && !seen[e.Unicode] {
			t.collisions = append(t.collisions, e.Unicode)
			seen[e.Unicode] = true
		}
		if prev, ok := t.toUnicode[e.Legacy]; ok && prev != e.Unicode && !seen[e.Legacy] {
			t.collisions = append(t.collisions, e.Legacy)
			seen[e.Legacy] = true
		}
		t.toLegacy[e.Unicode] = e.Legacy
		t.toUnicode[e.Legacy] = e.Unicode
	}
	for _, key := range t.collisions {
		tracer().Infof("glyph table collision for %q, last entry wins", key)
	}
	tracer().Debugf("glyph table: %d entries, %d unicode keys, %d legacy keys",
		len(entries), len(t.toLegacy), len(t.toUnicode))
	return t, nil
}

// Len returns the number of entries, collisions included.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry { return slices.Clone(t.entries) }

// Classes returns the ordering classes of the table.
func (t *Table) Classes() Classes { return t.classes }

// Legacy returns the glyph sequence for a Unicode cluster.
func (t *Table) Legacy(unicode string) (string, bool) {
	s, ok := t.toLegacy[unicode]
	return s, ok
}

// Unicode returns the Unicode cluster for a glyph sequence.
func (t *Table) Unicode(legacy string) (string, bool) {
	s, ok := t.toUnicode[legacy]
	return s, ok
}

// Collisions lists the keys (Unicode clusters or glyph sequences) which
// appear in more than one entry with different values, in table order.
func (t *Table) Collisions() []string {
	return slices.Clone(t.collisions)
}
