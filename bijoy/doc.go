/*
Package bijoy converts Bengali Unicode text to the legacy Bijoy glyph
encoding and back.

Bijoy text is a sequence of Windows-1252 characters, each standing for a
glyph of a Bengali font. A Table lists which Unicode cluster is drawn by
which glyph sequence. Conversion is a single left-to-right pass taking the
longest matching key at each position; keys are compiled into double-array
tries.

Unicode stores vowel signs in logical order, after the consonant they
follow, while Bijoy stores them in visual order. The codec therefore moves
the pre-base vowel signs ি ৈ ে in front of their consonant cluster, and the
reph (র্) behind it, before mapping, and undoes this after mapping back.

	codec := bijoy.NewCodec(table)
	legacy := codec.ToLegacy("আমি বাংলায় গান গাই") // "Avwg evsjvq Mvb MvB"

If a table holds more than one entry for the same key, the last entry
wins. Collisions are reported by Table.Collisions.
*/
package bijoy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avro.bijoy'
func tracer() tracing.Trace {
	return tracing.Select("avro.bijoy")
}
