package converter

// The functions below panic if the builtin dictionary cannot be loaded,
// which only happens for a broken build.

func mustDefault() *Converter {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse transliterates text with the builtin dictionary, optionally
// continuing to Bijoy.
func Parse(text string, bijoy, remapWords bool) string {
	return mustDefault().Parse(text, ParseOptions{Bijoy: bijoy, RemapWords: remapWords})
}

// ToLegacy converts Bengali Unicode text to Bijoy with the builtin table.
func ToLegacy(text string) string {
	return mustDefault().ToLegacy(text)
}

// ToUnicode converts Bijoy text to Bengali Unicode with the builtin table.
func ToUnicode(text string) string {
	return mustDefault().ToUnicode(text)
}

// Reverse converts Bengali text to Roman phonetic text with the builtin
// dictionary.
func Reverse(text string, fromBijoy, remapWords bool) string {
	return mustDefault().Reverse(text, ReverseOptions{FromBijoy: fromBijoy, RemapWords: remapWords})
}
