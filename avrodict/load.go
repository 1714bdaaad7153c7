package avrodict

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/avro"
	"github.com/npillmayer/avro/bijoy"
)

// Dictionary compiles the phonetic part of doc, exceptions included.
func Dictionary(doc *Document) (*avro.Dictionary, error) {
	classes := avro.CharacterClasses{
		Vowels:        doc.Vowel,
		Consonants:    doc.Consonant,
		Numbers:       doc.Number,
		CaseSensitive: doc.CaseSensitive,
		Shorborno:     doc.Shorborno,
		Shongkha:      doc.Shongkha,
		Banjonborno:   doc.Banjonborno,
		Kar:           doc.Kar,
		Ignore:        doc.Ignore,
	}
	opts := avro.Options{
		AllowShadowing:          doc.Options.AllowShadowing,
		CaseSensitiveExceptions: doc.Options.CaseSensitiveExceptions,
	}
	dict, err := avro.LoadPatterns(doc.Name, NewPatternReader(doc), classes, opts)
	if err != nil {
		return nil, err
	}
	if err = dict.LoadExceptions(NewExceptionReader(doc)); err != nil {
		return nil, err
	}
	tracer().Infof("dictionary %s: %d patterns, %d exceptions", doc.Name, dict.Len(), dict.ExceptionCount())
	return dict, nil
}

// GlyphTable compiles the bijoy section of doc.
func GlyphTable(doc *Document) (*bijoy.Table, error) {
	if doc.Bijoy == nil {
		return nil, ErrNoGlyphTable
	}
	entries := make([]bijoy.Entry, len(doc.Bijoy.Mappings))
	for i, m := range doc.Bijoy.Mappings {
		entries[i] = bijoy.Entry{Unicode: m.Unicode, Legacy: m.Legacy}
	}
	table, err := bijoy.NewTable(entries, bijoy.Classes{
		Prekar:      doc.Bijoy.Prekar,
		Postkar:     doc.Bijoy.Postkar,
		Banjonborno: doc.Bijoy.Banjonborno,
		Halant:      doc.Bijoy.Halant,
		Nukta:       doc.Bijoy.Nukta,
	})
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", doc.Name, err)
	}
	return table, nil
}

// LoadDictionary parses a YAML definition and compiles its phonetic part.
func LoadDictionary(reader io.Reader) (*avro.Dictionary, error) {
	doc, err := Parse(reader)
	if err != nil {
		return nil, err
	}
	return Dictionary(doc)
}

// LoadGlyphTable parses a YAML definition and compiles its glyph table.
func LoadGlyphTable(reader io.Reader) (*bijoy.Table, error) {
	doc, err := Parse(reader)
	if err != nil {
		return nil, err
	}
	return GlyphTable(doc)
}

// Load parses a YAML definition and compiles both parts. A definition
// without glyph table yields a nil table.
func Load(reader io.Reader) (*avro.Dictionary, *bijoy.Table, error) {
	doc, err := Parse(reader)
	if err != nil {
		return nil, nil, err
	}
	dict, err := Dictionary(doc)
	if err != nil {
		return nil, nil, err
	}
	if doc.Bijoy == nil {
		return dict, nil, nil
	}
	table, err := GlyphTable(doc)
	if err != nil {
		return nil, nil, err
	}
	return dict, table, nil
}

//go:embed data/avro.yaml
var builtinDefinition []byte

var builtin struct {
	once  sync.Once
	dict  *avro.Dictionary
	table *bijoy.Table
	err   error
}

// Builtin returns the dictionary and glyph table shipped with the package.
// They are compiled on first use and shared afterwards.
func Builtin() (*avro.Dictionary, *bijoy.Table, error) {
	builtin.once.Do(func() {
		builtin.dict, builtin.table, builtin.err = Load(bytes.NewReader(builtinDefinition))
		if builtin.err != nil {
			tracer().Errorf("builtin dictionary: %v", builtin.err)
		}
	})
	return builtin.dict, builtin.table, builtin.err
}

// BuiltinDefinition returns the YAML source of the builtin dictionary.
func BuiltinDefinition() []byte {
	return bytes.Clone(builtinDefinition)
}
