/*
Package avro converts Roman-alphabet phonetic input into Bengali Unicode
text, following the Avro phonetic scheme.

A Dictionary holds an ordered pattern table, a set of character classes and
a table of whole-word exceptions. Patterns are compiled into a frozen
double-array trie (DAT). Transliteration walks the input once, left to
right: at each position the longest matching token wins, and among patterns
with the same token the first one in table order wins. A pattern may carry
contextual rules which inspect the characters around the match (previous or
next character, character class, word boundaries) and override the pattern's
default replacement.

	dict, err := avro.Load(definition)
	...
	bn := dict.Transliterate("ami banglay gan gai", true) // "আমি বাংলায় গান গাই"

Unknown input is never an error: characters without a pattern are copied to
the output unchanged, which keeps punctuation and text already in Bengali
intact.

The reverse direction (Bengali to Roman) uses the same table read by
replacement. Conversion to the legacy Bijoy glyph encoding lives in package
bijoy, dictionary file formats in package avrodict.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package avro

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avro'
func tracer() tracing.Trace {
	return tracing.Select("avro")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
