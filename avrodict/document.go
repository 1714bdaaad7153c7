/*
Package avrodict reads phonetic dictionaries from YAML definitions.

A definition holds the ordered pattern table, the character classes, a list
of whole-word exceptions and, optionally, the Bijoy glyph table:

	name: "avro-phonetic"
	patterns:
	  - find: "kh"
	    replace: "খ"
	    reverse: "kh"
	  - find: "o"
	    replace: ""
	    rules:
	      - matches:
	          - {type: "prefix", scope: "!consonant"}
	        replace: "অ"
	exceptions:
	  "গুগল": "Google"
	vowel: "aeiou"
	...
	bijoy:
	  mappings:
	    - {unicode: "ক", legacy: "K"}

Exceptions map the Bengali word to the Roman spelling triggering it. The
definition the package is shipped with is available through Builtin.
*/
package avrodict

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'avro.avrodict'
func tracer() tracing.Trace {
	return tracing.Select("avro.avrodict")
}

// ErrNoGlyphTable is returned by LoadGlyphTable for definitions without a
// bijoy section.
var ErrNoGlyphTable = errors.New("definition has no bijoy glyph table")

// Document is the YAML form of a dictionary definition.
type Document struct {
	Name          string            `yaml:"name"`
	Options       DocumentOptions   `yaml:"options,omitempty"`
	Patterns      []PatternDoc      `yaml:"patterns"`
	Exceptions    map[string]string `yaml:"exceptions,omitempty"`
	Vowel         string            `yaml:"vowel"`
	Consonant     string            `yaml:"consonant"`
	CaseSensitive string            `yaml:"casesensitive"`
	Number        string            `yaml:"number"`
	Shorborno     string            `yaml:"shorborno"`
	Shongkha      string            `yaml:"shongkha"`
	Banjonborno   string            `yaml:"banjonborno"`
	Kar           []string          `yaml:"kar"`
	Ignore        []string          `yaml:"ignore"`
	Bijoy         *BijoyDoc         `yaml:"bijoy,omitempty"`
}

// DocumentOptions mirror avro.Options.
type DocumentOptions struct {
	AllowShadowing          bool `yaml:"allow_shadowing"`
	CaseSensitiveExceptions bool `yaml:"case_sensitive_exceptions"`
}

// PatternDoc is one entry of the pattern table.
type PatternDoc struct {
	Find    string    `yaml:"find,omitempty"`
	Replace string    `yaml:"replace"`
	Reverse string    `yaml:"reverse,omitempty"`
	Rules   []RuleDoc `yaml:"rules,omitempty"`
}

// RuleDoc is a contextual rule of a pattern.
type RuleDoc struct {
	Matches []MatchDoc `yaml:"matches"`
	Replace string     `yaml:"replace"`
}

// MatchDoc is a condition of a rule.
//
// Type is "prefix" (input before the match) or "suffix" (input after it).
// Scope is one of "vowel", "consonant", "punctuation" or "exact", optionally
// negated with a leading "!". Value is used by "exact" only.
type MatchDoc struct {
	Type  string `yaml:"type"`
	Scope string `yaml:"scope"`
	Value string `yaml:"value,omitempty"`
}

// BijoyDoc is the glyph table section.
type BijoyDoc struct {
	Mappings    []MappingDoc `yaml:"mappings"`
	Prekar      []string     `yaml:"prekar"`
	Postkar     []string     `yaml:"postkar"`
	Banjonborno string       `yaml:"banjonborno"`
	Halant      string       `yaml:"halant"`
	Nukta       []string     `yaml:"nukta"`
}

// MappingDoc is one glyph table entry.
type MappingDoc struct {
	Unicode string `yaml:"unicode"`
	Legacy  string `yaml:"legacy"`
}

// Parse reads a YAML definition. Unknown fields are rejected.
func Parse(reader io.Reader) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary: %w", err)
	}
	if len(doc.Patterns) == 0 {
		return nil, fmt.Errorf("failed to parse dictionary %q: no patterns", doc.Name)
	}
	return &doc, nil
}
