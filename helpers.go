package avro

// IsVowel reports whether r is a Roman vowel of the dictionary's classes.
// Comparison is case-insensitive, as for all Roman classes.
func (dict *Dictionary) IsVowel(r rune) bool {
	return dict.classes.has(Vowel, r)
}

// IsConsonant reports whether r is a Roman consonant.
func (dict *Dictionary) IsConsonant(r rune) bool {
	return dict.classes.has(Consonant, r)
}

// IsNumber reports whether r is a Roman digit.
func (dict *Dictionary) IsNumber(r rune) bool {
	return dict.classes.has(Number, r)
}

// IsPunctuation reports whether r is neither a vowel nor a consonant.
func (dict *Dictionary) IsPunctuation(r rune) bool {
	return !dict.IsVowel(r) && !dict.IsConsonant(r)
}

// IsCaseSensitive reports whether r keeps its case during transliteration.
func (dict *Dictionary) IsCaseSensitive(r rune) bool {
	return dict.classes.has(CaseSensitive, r)
}

// CountVowels counts the Roman vowels in text.
func (dict *Dictionary) CountVowels(text string) int {
	return dict.count(Vowel, text)
}

// CountConsonants counts the Roman consonants in text.
func (dict *Dictionary) CountConsonants(text string) int {
	return dict.count(Consonant, text)
}

func (dict *Dictionary) count(c Class, text string) int {
	n := 0
	for _, r := range text {
		if dict.classes.has(c, r) {
			n++
		}
	}
	return n
}
