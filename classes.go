package avro

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Class names a character class of a dictionary.
type Class uint8

// Character classes. The first four hold Roman input letters and are tested
// case-insensitively, the others hold Bengali code points.
const (
	NoClass       Class = iota
	Vowel               // Roman vowels
	Consonant           // Roman consonants
	Number              // Roman digits
	CaseSensitive       // letters whose upper case form is a different token
	Shorborno           // Bengali independent vowels
	Shongkha            // Bengali digits
	Kar                 // Bengali dependent vowel signs
	Ignore              // modifiers and punctuation that do not break words
	Banjonborno         // Bengali consonants, including nukta signs
	classCount
)

var classNames = [classCount]string{
	"none", "vowel", "consonant", "number", "casesensitive",
	"shorborno", "shongkha", "kar", "ignore", "banjonborno",
}

func (c Class) String() string {
	if c >= classCount {
		return fmt.Sprintf("Class(%d)", c)
	}
	return classNames[c]
}

// ParseClass returns the class for a class name as used in dictionary files.
func ParseClass(name string) (Class, error) {
	for c := Vowel; c < classCount; c++ {
		if classNames[c] == name {
			return c, nil
		}
	}
	return NoClass, fmt.Errorf("%w: %q", ErrInvalidClass, name)
}

func (c Class) folded() bool {
	return c >= Vowel && c <= CaseSensitive
}

// CharacterClasses defines the class contents of a dictionary. String fields
// list every member code point; Kar and Ignore list one code point per entry.
type CharacterClasses struct {
	Vowels        string
	Consonants    string
	Numbers       string
	CaseSensitive string
	Shorborno     string
	Shongkha      string
	Banjonborno   string
	Kar           []string
	Ignore        []string
}

// classTable is the compiled, read-only form of CharacterClasses.
type classTable struct {
	def  CharacterClasses
	sets [classCount]map[rune]struct{}
}

func compileClasses(cc CharacterClasses) (classTable, error) {
	t := classTable{def: cc}
	t.sets[Vowel] = runeSet(cc.Vowels)
	t.sets[Consonant] = runeSet(cc.Consonants)
	t.sets[Number] = runeSet(cc.Numbers)
	t.sets[CaseSensitive] = runeSet(cc.CaseSensitive)
	t.sets[Shorborno] = runeSet(cc.Shorborno)
	t.sets[Shongkha] = runeSet(cc.Shongkha)
	t.sets[Banjonborno] = runeSet(cc.Banjonborno)
	var err error
	if t.sets[Kar], err = singleRuneSet(Kar, cc.Kar); err != nil {
		return t, err
	}
	if t.sets[Ignore], err = singleRuneSet(Ignore, cc.Ignore); err != nil {
		return t, err
	}
	return t, nil
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

func singleRuneSet(c Class, entries []string) (map[rune]struct{}, error) {
	set := make(map[rune]struct{}, len(entries))
	for _, e := range entries {
		if utf8.RuneCountInString(e) != 1 {
			return nil, fmt.Errorf("%w: %s entry %q is not a single code point", ErrInvalidClass, c, e)
		}
		r, _ := utf8.DecodeRuneInString(e)
		set[r] = struct{}{}
	}
	return set, nil
}

// has tests class membership of r.
func (t *classTable) has(c Class, r rune) bool {
	if c == NoClass || c >= classCount || t.sets[c] == nil {
		return false
	}
	if c.folded() {
		r = unicode.ToLower(r)
	}
	_, ok := t.sets[c][r]
	return ok
}

// isBoundary reports whether r separates words: it is neither a vowel nor a
// consonant, and not one of the ignored symbols.
func (t *classTable) isBoundary(r rune) bool {
	return !t.has(Vowel, r) && !t.has(Consonant, r) && !t.has(Ignore, r)
}

// fixCase lower-cases every rune which is not case-sensitive. Case
// sensitive letters keep their case, so "O" and "o" stay distinct tokens.
func (t *classTable) fixCase(text []rune) []rune {
	fixed := make([]rune, len(text))
	for i, r := range text {
		if t.has(CaseSensitive, r) {
			fixed[i] = r
		} else {
			fixed[i] = unicode.ToLower(r)
		}
	}
	return fixed
}
