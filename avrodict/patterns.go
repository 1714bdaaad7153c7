package avrodict

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/avro"
)

// PatternReader streams patterns of a parsed definition in table order.
type PatternReader struct {
	patterns []PatternDoc
	pos      int
}

// NewPatternReader creates a reader over the patterns of doc.
func NewPatternReader(doc *Document) *PatternReader {
	return &PatternReader{patterns: doc.Patterns}
}

// Next returns the next pattern. It returns io.EOF when exhausted.
func (r *PatternReader) Next() (avro.Pattern, error) {
	if r.pos >= len(r.patterns) {
		return avro.Pattern{}, io.EOF
	}
	pd := r.patterns[r.pos]
	r.pos++
	p := avro.Pattern{
		Token:       pd.Find,
		Replacement: pd.Replace,
		Reverse:     pd.Reverse,
	}
	for i, rd := range pd.Rules {
		rule := avro.Rule{Replacement: rd.Replace}
		for j, md := range rd.Matches {
			c, err := Condition(md)
			if err != nil {
				return avro.Pattern{}, fmt.Errorf("pattern %d (%q), rule %d, match %d: %w",
					r.pos-1, pd.Find, i, j, err)
			}
			rule.Conditions = append(rule.Conditions, c)
		}
		p.Rules = append(p.Rules, rule)
	}
	return p, nil
}

// Condition translates a match of the definition format into a condition.
//
//	prefix + punctuation        → AtWordStart
//	suffix + punctuation        → AtWordEnd
//	prefix + vowel | consonant  → PreviousIsClass
//	suffix + vowel | consonant  → NextIsClass
//	prefix + exact              → PreviousIs
//	suffix + exact              → NextIs
//
// A scope starting with "!" negates the condition.
func Condition(md MatchDoc) (avro.Condition, error) {
	var c avro.Condition
	scope, negated := strings.CutPrefix(md.Scope, "!")
	c.Negate = negated
	var prefix bool
	switch md.Type {
	case "prefix":
		prefix = true
	case "suffix":
	default:
		return c, fmt.Errorf("%w: unknown match type %q", avro.ErrInvalidCondition, md.Type)
	}
	switch scope {
	case "punctuation":
		c.Kind = pick(prefix, avro.AtWordStart, avro.AtWordEnd)
	case "vowel":
		c.Kind, c.Class = pick(prefix, avro.PreviousIsClass, avro.NextIsClass), avro.Vowel
	case "consonant":
		c.Kind, c.Class = pick(prefix, avro.PreviousIsClass, avro.NextIsClass), avro.Consonant
	case "exact":
		if md.Value == "" {
			return c, fmt.Errorf("%w: exact match without value", avro.ErrInvalidCondition)
		}
		c.Kind, c.Value = pick(prefix, avro.PreviousIs, avro.NextIs), md.Value
	default:
		return c, fmt.Errorf("%w: unknown match scope %q", avro.ErrInvalidCondition, md.Scope)
	}
	return c, nil
}

func pick(prefix bool, before, after avro.ConditionKind) avro.ConditionKind {
	if prefix {
		return before
	}
	return after
}
