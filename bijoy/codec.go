package bijoy

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/avro/dat"
)

const ra = '\u09b0' // র

// canonical rewrites Unicode input into the forms the glyph table is keyed
// by: split two-part vowel signs, precomposed nukta consonants, and the ZWNJ
// spelling of ra + ya-phala.
var canonical = strings.NewReplacer(
	"\u09cb", "\u09c7\u09be", // ো → ে া
	"\u09cc", "\u09c7\u09d7", // ৌ → ে ৗ
	"\u09a1\u09bc", "\u09dc", // ড + ় → ড়
	"\u09a2\u09bc", "\u09dd", // ঢ + ় → ঢ়
	"\u09af\u09bc", "\u09df", // য + ় → য়
	"\u09b0\u200d\u09cd\u09af", "\u09b0\u200c\u09cd\u09af",
)

var recombine = strings.NewReplacer("\u0985\u09be", "\u0986") // অ া → আ

// Codec converts between Unicode and Bijoy with a compiled glyph table.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	table    *Table
	forward  *dat.DAT // unicode cluster → index into legacy
	backward *dat.DAT // glyph sequence → index into unicode
	legacy   []string
	unicode  []string
	reph     int32 // index of র্ in unicode, or NoValue
	classes  runeClasses
}

// NewCodec compiles t.
func NewCodec(t *Table) *Codec {
	c := &Codec{table: t, reph: dat.NoValue, classes: compileRuneClasses(t.classes)}
	c.forward, c.legacy = compile(t.toLegacy, t.entries, func(e Entry) string { return e.Unicode })
	c.backward, c.unicode = compile(t.toUnicode, t.entries, func(e Entry) string { return e.Legacy })
	rephCluster := string([]rune{ra, c.classes.halant})
	for i, u := range c.unicode {
		if u == rephCluster {
			c.reph = int32(i)
		}
	}
	tracer().Debugf("codec: %d forward keys, %d backward keys", len(c.legacy), len(c.unicode))
	return c
}

// compile builds a DAT over the resolved keys of m, visiting keys in table
// order. Keys the DAT cannot hold (outside the BMP) are skipped.
func compile(m map[string]string, entries []Entry, key func(Entry) string) (*dat.DAT, []string) {
	b := dat.NewBuilder()
	values := make([]string, 0, len(m))
	for _, e := range entries {
		k := key(e)
		if _, done := b.Get(k); done {
			continue
		}
		if err := b.Insert(k, int32(len(values))); err != nil {
			tracer().Errorf("glyph table key %q skipped: %v", k, err)
			continue
		}
		values = append(values, m[k])
	}
	return b.Freeze(), values
}

// Table returns the glyph table the codec was compiled from.
func (c *Codec) Table() *Table { return c.table }

// ToLegacy converts Unicode Bengali text to Bijoy glyphs. Characters
// without a glyph are copied unchanged.
func (c *Codec) ToLegacy(text string) string {
	if text == "" {
		return text
	}
	input := c.toVisualOrder([]rune(canonical.Replace(text)))
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(input); {
		v, n := c.forward.LongestPrefix(input, i)
		if n == 0 {
			out.WriteRune(input[i])
			i++
			continue
		}
		out.WriteString(c.legacy[v])
		i += n
	}
	return out.String()
}

// ToUnicode converts Bijoy glyphs to Unicode Bengali text. Characters
// without a mapping are copied unchanged.
func (c *Codec) ToUnicode(text string) string {
	if text == "" {
		return text
	}
	input := []rune(text)
	out := make([]rune, 0, len(input)*2)
	marks := make([]bool, 0, len(input)*2) // runes of a reph glyph
	for i := 0; i < len(input); {
		v, n := c.backward.LongestPrefix(input, i)
		if n == 0 {
			out = append(out, input[i])
			marks = append(marks, false)
			i++
			continue
		}
		for _, r := range c.unicode[v] {
			out = append(out, r)
			marks = append(marks, v == c.reph)
		}
		i += n
	}
	return recombine.Replace(string(c.toLogicalOrder(out, marks)))
}

// runeClasses is the rune-set form of Classes.
type runeClasses struct {
	prekar, postkar, banjonborno, nukta map[rune]bool
	halant                              rune
}

func compileRuneClasses(cl Classes) runeClasses {
	rc := runeClasses{
		prekar:      singles(cl.Prekar),
		postkar:     singles(cl.Postkar),
		nukta:       singles(cl.Nukta),
		banjonborno: make(map[rune]bool),
	}
	for _, r := range cl.Banjonborno {
		rc.banjonborno[r] = true
	}
	rc.halant, _ = utf8.DecodeRuneInString(cl.Halant)
	return rc
}

func singles(ss []string) map[rune]bool {
	set := make(map[rune]bool, len(ss))
	for _, s := range ss {
		r, _ := utf8.DecodeRuneInString(s)
		set[r] = true
	}
	return set
}

func (rc *runeClasses) isKar(r rune) bool {
	return rc.prekar[r] || rc.postkar[r]
}
