package avro

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Pattern is one entry of the ordered pattern table.
//
// Token is the Roman input to match (for example "ng", "kkh"). Replacement
// is the Bengali output used when no rule fires; it may be empty (the
// inherent vowel "o"). Reverse is the canonical Roman spelling used for
// reverse transliteration; empty means the token itself.
//
// A pattern without Token is reverse-only: it only takes part in
// Bengali-to-Roman conversion.
type Pattern struct {
	Token       string
	Replacement string
	Reverse     string
	Rules       []Rule
}

// storedPattern is a pattern with compiled rules.
type storedPattern struct {
	Pattern
	rules []compiledRule
}

// replacement selects the output for the token matched at input[start:end]:
// the replacement of the first rule which fires, or the default.
func (p *storedPattern) replacement(input []rune, start, end int, classes *classTable) string {
	for i := range p.rules {
		if p.rules[i].fires(input, start, end, classes) {
			return p.rules[i].replacement
		}
	}
	return p.Replacement
}

// reverseToken is the Roman spelling emitted for this pattern in reverse
// transliteration.
func (p *storedPattern) reverseToken() string {
	if p.Reverse != "" {
		return p.Reverse
	}
	return p.Token
}

// patternStore keeps the pattern table in canonical order. Slots are
// indices into the table and are referenced by the trie indexes.
type patternStore struct {
	entries        []storedPattern
	maxTokenLength int
}

func newPatternStore(capacity int) *patternStore {
	return &patternStore{entries: make([]storedPattern, 0, capacity)}
}

// Add appends a validated pattern and returns its slot.
func (s *patternStore) Add(p Pattern) (int, error) {
	if p.Token == "" && p.Replacement == "" {
		return -1, ErrEmptyPattern
	}
	if p.Token == "" && p.Reverse == "" {
		return -1, fmt.Errorf("%w: reverse-only pattern %q has no reverse token", ErrEmptyPattern, p.Replacement)
	}
	rules, err := compileRules(p.Rules)
	if err != nil {
		return -1, err
	}
	if p.Token == "" && len(rules) > 0 {
		return -1, fmt.Errorf("%w: reverse-only pattern %q carries rules", ErrInvalidCondition, p.Replacement)
	}
	p.Rules = slices.Clone(p.Rules)
	s.entries = append(s.entries, storedPattern{Pattern: p, rules: rules})
	if n := utf8.RuneCountInString(p.Token); n > s.maxTokenLength {
		s.maxTokenLength = n
	}
	return len(s.entries) - 1, nil
}

// At returns the pattern stored in slot.
func (s *patternStore) At(slot int) *storedPattern {
	assert(slot >= 0 && slot < len(s.entries), "pattern slot out of range")
	return &s.entries[slot]
}

// Len returns the number of stored patterns.
func (s *patternStore) Len() int { return len(s.entries) }

// Drop removes the last stored pattern. Used when a redundant duplicate has
// been detected after Add.
func (s *patternStore) Drop() {
	s.entries = s.entries[:len(s.entries)-1]
}

// samePattern reports whether two patterns define the same behaviour.
func samePattern(a, b Pattern) bool {
	if a.Token != b.Token || a.Replacement != b.Replacement || a.Reverse != b.Reverse {
		return false
	}
	return slices.EqualFunc(a.Rules, b.Rules, func(x, y Rule) bool {
		return x.Replacement == y.Replacement && slices.Equal(x.Conditions, y.Conditions)
	})
}
