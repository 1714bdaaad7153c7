package avro

import "strings"

const halant = '্' // ্

// Reverse converts Bengali text back to a Roman phonetic spelling.
//
// At each position the longest replacement of a rule-less pattern is
// matched; among patterns with equal replacements the first in table order
// wins. The match is emitted as the pattern's reverse token, or its find
// token if it has none. After a consonant which is followed by another
// letter of the same word and no vowel sign, the inherent vowel "o" is
// appended. Input which no pattern matches is copied unchanged.
//
// With remapWords set, whole Bengali words found in the exception table are
// replaced by their Roman word first.
//
// Example:
//
//	"রহিম" => "rohim".
func (dict *Dictionary) Reverse(text string, remapWords bool) string {
	if text == "" || dict == nil || dict.outputs == nil {
		return text
	}
	input := []rune(text)
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(input); {
		if remapWords {
			if end := wordAt(input, i); end > 0 {
				if word, ok := dict.exceptions.lookupReverse(string(input[i:end])); ok {
					out.WriteString(word)
					i = end
					continue
				}
			}
		}
		slot, n := dict.outputs.LongestMatch(input, i)
		if n == 0 {
			out.WriteRune(input[i])
			i++
			continue
		}
		p := dict.patterns.At(slot)
		out.WriteString(p.reverseToken())
		if p.Reverse != "" && dict.inherentVowel(input, i, i+n) {
			out.WriteByte('o')
		}
		i += n
	}
	return out.String()
}

// inherentVowel decides whether the consonant cluster input[start:end] is
// pronounced with an inherent "o".
func (dict *Dictionary) inherentVowel(input []rune, start, end int) bool {
	last := input[end-1]
	if !dict.classes.has(Banjonborno, last) || dict.classes.has(Ignore, last) {
		return false
	}
	if end >= len(input) {
		return false // word final
	}
	next := input[end]
	if next == halant || dict.classes.has(Kar, next) {
		return false
	}
	if !dict.classes.has(Banjonborno, next) && !dict.classes.has(Shorborno, next) {
		return false // word ends
	}
	if start > 0 && isWordRune(input[start-1]) &&
		end+1 < len(input) && dict.classes.has(Kar, input[end+1]) {
		return false
	}
	return true
}
