package avro

import "fmt"

// ConditionKind selects what a Condition tests.
type ConditionKind uint8

// Condition kinds. "Previous" and "next" refer to the input immediately
// before and after the matched token.
const (
	PreviousIs      ConditionKind = iota + 1 // input before the match equals Value
	NextIs                                   // input after the match equals Value
	PreviousIsClass                          // rune before the match is in Class
	NextIsClass                              // rune after the match is in Class
	AtWordStart                              // match starts a word
	AtWordEnd                                // match ends a word
)

var kindNames = map[ConditionKind]string{
	PreviousIs:      "PreviousIs",
	NextIs:          "NextIs",
	PreviousIsClass: "PreviousIsClass",
	NextIsClass:     "NextIsClass",
	AtWordStart:     "AtWordStart",
	AtWordEnd:       "AtWordEnd",
}

func (k ConditionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ConditionKind(%d)", k)
}

// Condition is a lookbehind/lookahead predicate over the input relative to a
// matched token. Only the field needed by Kind is used: Value for PreviousIs
// and NextIs, Class for the class kinds. Negate inverts the outcome,
// including at the edges of the input.
type Condition struct {
	Kind   ConditionKind
	Class  Class
	Value  string
	Negate bool
}

func (c Condition) String() string {
	neg := ""
	if c.Negate {
		neg = "!"
	}
	switch c.Kind {
	case PreviousIs, NextIs:
		return fmt.Sprintf("%s%s(%q)", neg, c.Kind, c.Value)
	case PreviousIsClass, NextIsClass:
		return fmt.Sprintf("%s%s(%s)", neg, c.Kind, c.Class)
	}
	return neg + c.Kind.String()
}

func (c Condition) validate() error {
	switch c.Kind {
	case PreviousIs, NextIs:
		if c.Value == "" {
			return fmt.Errorf("%w: %s without value", ErrInvalidCondition, c.Kind)
		}
	case PreviousIsClass, NextIsClass:
		if c.Class == NoClass || c.Class >= classCount {
			return fmt.Errorf("%w: %s with class %s", ErrInvalidCondition, c.Kind, c.Class)
		}
	case AtWordStart, AtWordEnd:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidCondition, c.Kind)
	}
	return nil
}

// Rule replaces a pattern's default replacement if all of its conditions
// hold.
type Rule struct {
	Conditions  []Condition
	Replacement string
}

// compiledCondition caches the rune form of Value.
type compiledCondition struct {
	Condition
	value []rune
}

type compiledRule struct {
	conditions  []compiledCondition
	replacement string
}

func compileRules(rules []Rule) ([]compiledRule, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	compiled := make([]compiledRule, len(rules))
	for i, rule := range rules {
		compiled[i].replacement = rule.Replacement
		compiled[i].conditions = make([]compiledCondition, len(rule.Conditions))
		for j, c := range rule.Conditions {
			if err := c.validate(); err != nil {
				return nil, fmt.Errorf("rule %d, condition %d: %w", i, j, err)
			}
			compiled[i].conditions[j] = compiledCondition{Condition: c, value: []rune(c.Value)}
		}
	}
	return compiled, nil
}

// holds evaluates c for the token input[start:end].
func (c *compiledCondition) holds(input []rune, start, end int, classes *classTable) bool {
	var ok bool
	switch c.Kind {
	case PreviousIs:
		ok = equalAt(input, start-len(c.value), c.value)
	case NextIs:
		ok = equalAt(input, end, c.value)
	case PreviousIsClass:
		ok = start > 0 && classes.has(c.Class, input[start-1])
	case NextIsClass:
		ok = end < len(input) && classes.has(c.Class, input[end])
	case AtWordStart:
		ok = start == 0 || classes.isBoundary(input[start-1])
	case AtWordEnd:
		ok = end >= len(input) || classes.isBoundary(input[end])
	}
	return ok != c.Negate
}

func equalAt(input []rune, at int, value []rune) bool {
	if at < 0 || at+len(value) > len(input) {
		return false
	}
	for i, r := range value {
		if input[at+i] != r {
			return false
		}
	}
	return true
}

// fires reports whether every condition of the rule holds.
func (r *compiledRule) fires(input []rune, start, end int, classes *classTable) bool {
	for i := range r.conditions {
		if !r.conditions[i].holds(input, start, end, classes) {
			return false
		}
	}
	return true
}
