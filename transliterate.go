package avro

import "strings"

// Transliterate converts Roman phonetic text to Bengali script.
//
// At each position the longest pattern token matching the case-fixed input
// is taken; among patterns with equal tokens the first in table order wins.
// Its rules are tried in order and the first firing rule supplies the
// replacement, else the pattern's default replacement is used. Input which
// no pattern matches is copied unchanged.
//
// With remapWords set, whole words found in the exception table are replaced
// before any pattern matching takes place.
//
// Example:
//
//	"ami banglay gan gai" => "আমি বাংলায় গান গাই".
func (dict *Dictionary) Transliterate(text string, remapWords bool) string {
	if text == "" || dict == nil || dict.tokens == nil {
		return text
	}
	raw := []rune(text)
	fixed := dict.classes.fixCase(raw)
	var out strings.Builder
	out.Grow(len(text) * 2)
	for i := 0; i < len(raw); {
		if remapWords {
			if end := wordAt(raw, i); end > 0 {
				if replacement, ok := dict.exceptions.lookup(string(raw[i:end])); ok {
					out.WriteString(replacement)
					i = end
					continue
				}
			}
		}
		slot, n := dict.tokens.LongestMatch(fixed, i)
		if n == 0 {
			out.WriteRune(raw[i]) // pass through
			i++
			continue
		}
		p := dict.patterns.At(slot)
		out.WriteString(p.replacement(fixed, i, i+n, &dict.classes))
		i += n
	}
	return out.String()
}
