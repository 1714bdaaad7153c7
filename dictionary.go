package avro

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
)

// PatternReader yields patterns one-by-one, in table order.
// It should return io.EOF when the stream is exhausted.
type PatternReader interface {
	Next() (Pattern, error)
}

// ExceptionReader yields whole-word exceptions one-by-one: a Roman input
// word and the Bengali word replacing it.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word, replacement string, err error)
}

// Options control load-time validation.
type Options struct {
	// AllowShadowing accepts differing patterns for the same token. The first
	// one in table order wins, later ones are unreachable.
	AllowShadowing bool
	// CaseSensitiveExceptions matches exception words exactly instead of
	// case-folded.
	CaseSensitiveExceptions bool
}

// Definition is an already parsed dictionary definition.
type Definition struct {
	Name       string
	Patterns   []Pattern
	Classes    CharacterClasses
	Exceptions map[string]string // Roman word → Bengali word
	Options    Options
}

// Dictionary is a loaded phonetic dictionary.
//
// A dictionary contains:
//   - the pattern table in canonical order, indexed by token for
//     transliteration and by replacement for reverse transliteration
//   - the character classes referenced by contextual rules
//   - whole-word exceptions loaded through ExceptionReader.
//
// Once loaded, a dictionary is read-only and safe for concurrent use.
// AddException and LoadExceptions belong to loading and must not run
// concurrently with conversions.
type Dictionary struct {
	Identifier string // identifies the dictionary
	patterns   *patternStore
	tokens     patternIndex // token → slot
	outputs    patternIndex // replacement → slot, rule-less patterns only
	classes    classTable
	exceptions *exceptionTable
	shadowed   int
}

// PatternTrieStats reports density metrics for the token trie.
func (dict *Dictionary) PatternTrieStats() (backend string, usedSlots, totalSlots, keys int, fillRatio float64) {
	if dict == nil || dict.tokens == nil {
		return "", 0, 0, 0, 0
	}
	stats := dict.tokens.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.Keys, stats.FillRatio()
}

// LoadPatterns compiles patterns from a streaming, format-agnostic source.
//
// File format parsing is outside the base package. Package avrodict parses
// YAML definitions and feeds this API.
func LoadPatterns(name string, reader PatternReader, classes CharacterClasses, opts Options) (dict *Dictionary, err error) {
	dict = &Dictionary{
		Identifier: fmt.Sprintf("patterns: %s", name),
		patterns:   newPatternStore(512),
		tokens:     mustNewDATBackend(),
		outputs:    mustNewDATBackend(),
		exceptions: newExceptionTable(opts.CaseSensitiveExceptions),
	}
	if dict.classes, err = compileClasses(classes); err != nil {
		tracer().Errorf("dictionary %s: %v", name, err)
		return nil, err
	}
	var p Pattern
	for n := 0; ; n++ {
		p, err = reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err = dict.addPattern(p, opts); err != nil {
			err = fmt.Errorf("pattern %d (%q): %w", n, p.Token, err)
			tracer().Errorf("dictionary %s: %v", name, err)
			return nil, err
		}
	}
	dict.tokens.Freeze()
	dict.outputs.Freeze()
	backend, used, total, keys, fill := dict.PatternTrieStats()
	tracer().Infof("pattern trie stats backend=%s keys=%d used=%d total=%d fill=%.2f",
		backend, keys, used, total, fill)
	tracer().Infof("dictionary %s: %d patterns, %d shadowed, max token length %d",
		name, dict.patterns.Len(), dict.shadowed, dict.patterns.maxTokenLength)
	return dict, nil
}

// LoadPatternList compiles patterns from an in-memory slice.
func LoadPatternList(name string, patterns []Pattern, classes CharacterClasses, opts Options) (*Dictionary, error) {
	return LoadPatterns(name, &sliceReader{patterns: patterns}, classes, opts)
}

// Load builds a dictionary from a complete definition, including its
// exceptions.
func Load(def Definition) (*Dictionary, error) {
	dict, err := LoadPatternList(def.Name, def.Patterns, def.Classes, def.Options)
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(def.Exceptions))
	for w := range def.Exceptions {
		words = append(words, w)
	}
	sort.Strings(words) // deterministic conflict reports
	for _, w := range words {
		if err = dict.AddException(w, def.Exceptions[w]); err != nil {
			tracer().Errorf("dictionary %s: %v", def.Name, err)
			return nil, err
		}
	}
	return dict, nil
}

func (dict *Dictionary) addPattern(p Pattern, opts Options) error {
	if p.Token != "" {
		if slot, found := dict.tokens.Slot(p.Token); found {
			prev := dict.patterns.At(slot).Pattern
			if samePattern(prev, p) {
				tracer().Debugf("skipping redundant pattern %q", p.Token)
				return nil
			}
			if !opts.AllowShadowing {
				return ErrDuplicatePattern
			}
			// validate, but keep it out of the token index
			if _, err := compileRules(p.Rules); err != nil {
				return err
			}
			tracer().Infof("pattern %q shadowed by an earlier definition", p.Token)
			dict.shadowed++
			return nil
		}
	}
	slot, err := dict.patterns.Add(p)
	if err != nil {
		return err
	}
	if p.Token != "" {
		if err = dict.tokens.Insert(p.Token, slot); err != nil {
			dict.patterns.Drop()
			return err
		}
	}
	if p.Replacement != "" && len(p.Rules) == 0 {
		if _, found := dict.outputs.Slot(p.Replacement); !found {
			if err = dict.outputs.Insert(p.Replacement, slot); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadExceptions loads exception entries from a streaming source.
func (dict *Dictionary) LoadExceptions(reader ExceptionReader) (err error) {
	for {
		var word, replacement string
		word, replacement, err = reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			break
		}
		if err = dict.AddException(word, replacement); err != nil {
			break
		}
	}
	return err
}

// AddException registers one whole-word exception: word (Roman) is
// transliterated to replacement (Bengali), and replacement is reversed back
// to word.
func (dict *Dictionary) AddException(word, replacement string) error {
	return dict.exceptions.add(word, replacement)
}

// Exception returns the Bengali replacement for a Roman word, if any.
func (dict *Dictionary) Exception(word string) (string, bool) {
	return dict.exceptions.lookup(word)
}

// ExceptionsWithPrefix lists the exception words starting with prefix, in
// sorted order. An empty prefix lists all of them.
func (dict *Dictionary) ExceptionsWithPrefix(prefix string) []string {
	return dict.exceptions.withPrefix(prefix)
}

// ExceptionCount returns the number of registered exceptions.
func (dict *Dictionary) ExceptionCount() int {
	return dict.exceptions.count
}

// Patterns returns a copy of the reachable pattern table in canonical order.
func (dict *Dictionary) Patterns() []Pattern {
	pp := make([]Pattern, dict.patterns.Len())
	for i := range pp {
		pp[i] = dict.patterns.At(i).Pattern
		pp[i].Rules = slices.Clone(pp[i].Rules)
	}
	return pp
}

// Len returns the number of reachable patterns.
func (dict *Dictionary) Len() int {
	return dict.patterns.Len()
}

// MaxTokenLength returns the length in code points of the longest token.
func (dict *Dictionary) MaxTokenLength() int {
	return dict.patterns.maxTokenLength
}

// Classes returns the character classes the dictionary was loaded with.
func (dict *Dictionary) Classes() CharacterClasses {
	cc := dict.classes.def
	cc.Kar = slices.Clone(cc.Kar)
	cc.Ignore = slices.Clone(cc.Ignore)
	return cc
}

// Has tests membership of r in class c. Roman classes are tested
// case-insensitively.
func (dict *Dictionary) Has(c Class, r rune) bool {
	return dict.classes.has(c, r)
}

type sliceReader struct {
	patterns []Pattern
	pos      int
}

func (sr *sliceReader) Next() (Pattern, error) {
	if sr.pos >= len(sr.patterns) {
		return Pattern{}, io.EOF
	}
	sr.pos++
	return sr.patterns[sr.pos-1], nil
}
