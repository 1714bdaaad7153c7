package avrodict

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/avro"
	"github.com/npillmayer/avro/bijoy"
)

func mustBuiltin(t *testing.T) (*avro.Dictionary, *bijoy.Codec) {
	t.Helper()
	dict, table, err := Builtin()
	if err != nil {
		t.Fatalf("cannot load builtin dictionary: %v", err)
	}
	return dict, bijoy.NewCodec(table)
}

func TestBuiltinTransliterate(t *testing.T) {
	dict, _ := mustBuiltin(t)
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"ami banglay gan gai;", "আমি বাংলায় গান গাই;"},
		{"ayre,", "আয়রে,"},
		{"aমি বাংলায় gaন গাi", "আমি বাংলায় গান গাই"},
		{"বaba gO", "বআবা গো"},
		{"o", "অ"},
		{"a", "আ"},
		{"i", "ই"},
		{"I", "ঈ"},
		{"u", "উ"},
		{"U", "ঊ"},
		{"e", "এ"},
		{"OI", "ঐ"},
		{"O", "ও"},
		{"OU", "ঔ"},
		{"112", "১১২"},
		{".", "।"},
		{"..", "।।"},
		{"...", "..."},
		{"ng", "ং"},
		{"kh", "খ"},
		{"stbdh bk", "স্তব্ধ বক"},
		{"rahim", "রাহিম"},
		{"ekhon", "এখন"},
		{"kemon acho?", "কেমন আছ?"},
	}
	for _, tt := range tests {
		if got := dict.Transliterate(tt.in, true); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuiltinExceptions(t *testing.T) {
	dict, _ := mustBuiltin(t)
	if got := dict.Transliterate("Google facebook", true); got != "গুগল ফেসবুক" {
		t.Fatalf("exceptions not applied: %q", got)
	}
	if got := dict.Transliterate("facebook", false); got == "ফেসবুক" {
		t.Fatalf("exceptions applied although disabled")
	}
	if got := dict.ExceptionsWithPrefix("face"); len(got) != 1 || got[0] != "facebook" {
		t.Fatalf("ExceptionsWithPrefix(face) = %v", got)
	}
	if dict.ExceptionCount() != 24 {
		t.Fatalf("expected 24 exceptions, have %d", dict.ExceptionCount())
	}
}

func TestBuiltinReverse(t *testing.T) {
	dict, _ := mustBuiltin(t)
	tests := []struct {
		in, want string
	}{
		{"রহিম", "rohim"},
		{"ডাকছে", "dakche"},
		{"বাংলায়", "banglay"},
		{"রওনা", "rowna"},
		{"এখন", "ekhon"},
		{"আমি বাংলায় গান গাই", "ami banglay gan gai"},
		{"তোমায়", "tomay"},
		{"১২৩", "123"},
		{"গুগল", "Google"},
	}
	for _, tt := range tests {
		if got := dict.Reverse(tt.in, true); got != tt.want {
			t.Errorf("Reverse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := dict.Reverse("গুগল", false); got != "gugol" {
		t.Fatalf("Reverse(গুগল) without exceptions = %q, want gugol", got)
	}
}

func TestBuiltinBijoy(t *testing.T) {
	_, codec := mustBuiltin(t)
	tests := []struct {
		unicode, legacy string
	}{
		{"আমি বাংলায় গান গাই;", "Avwg evsjvq Mvb MvB;"},
		{"আমি বাংলার গান গাই।", "Avwg evsjvi Mvb MvB|"},
		{"আমি আমার আমিকে চিরদিন এই বাংলায় খুঁজে পাই!", "Avwg Avgvi Avwg‡K wPiw`b GB evsjvq Lyu‡R cvB!"},
		{"সোনার", "‡mvbvi"},
		{"কর্ম", "Kg©"},
	}
	for _, tt := range tests {
		if got := codec.ToLegacy(tt.unicode); got != tt.legacy {
			t.Errorf("ToLegacy(%q) = %q, want %q", tt.unicode, got, tt.legacy)
		}
		if got := codec.ToUnicode(tt.legacy); got != tt.unicode {
			t.Errorf("ToUnicode(%q) = %q, want %q", tt.legacy, got, tt.unicode)
		}
	}
}

func TestBuiltinGlyphTableCollisions(t *testing.T) {
	_, codec := mustBuiltin(t)
	collisions := codec.Table().Collisions()
	if len(collisions) != 1 || collisions[0] != "দ্ব" {
		t.Fatalf("unexpected collisions %v", collisions)
	}
	if got := codec.ToLegacy("দ্ব"); got != "Ø" {
		t.Fatalf("ToLegacy(দ্ব) = %q, last entry should win", got)
	}
}

func TestBuiltinRoundTrip(t *testing.T) {
	_, codec := mustBuiltin(t)
	collided := map[string]bool{}
	for _, k := range codec.Table().Collisions() {
		collided[k] = true
	}
	for _, e := range codec.Table().Entries() {
		if collided[e.Unicode] {
			continue
		}
		if got := codec.ToUnicode(codec.ToLegacy(e.Unicode)); got != e.Unicode {
			t.Errorf("ToUnicode(ToLegacy(%q)) = %q", e.Unicode, got)
		}
		if got := codec.ToLegacy(codec.ToUnicode(e.Legacy)); got != e.Legacy {
			t.Errorf("ToLegacy(ToUnicode(%q)) = %q", e.Legacy, got)
		}
	}
}

func TestBuiltinIsShared(t *testing.T) {
	d1, t1, _ := Builtin()
	d2, t2, _ := Builtin()
	if d1 != d2 || t1 != t2 {
		t.Fatalf("builtin dictionary should be loaded once")
	}
	if !bytes.Contains(BuiltinDefinition(), []byte("avro-phonetic")) {
		t.Fatalf("builtin definition lacks its name")
	}
}

const smallDefinition = `
name: "small"
patterns:
  - find: "k"
    replace: "ক"
    reverse: "k"
  - find: "a"
    replace: "া"
    rules:
      - matches:
          - {type: "prefix", scope: "!consonant"}
        replace: "আ"
  - replace: "আ"
    reverse: "a"
exceptions:
  "কাকা": "kaka"
vowel: "aeiou"
consonant: "bcdfghjklmnpqrstvwxyz"
casesensitive: ""
number: ""
shorborno: "আ"
shongkha: ""
banjonborno: "ক"
kar: ["া"]
ignore: []
`

func TestLoadDefinition(t *testing.T) {
	dict, table, err := Load(strings.NewReader(smallDefinition))
	if err != nil {
		t.Fatal(err)
	}
	if table != nil {
		t.Fatalf("definition without bijoy section should yield no table")
	}
	if got := dict.Transliterate("aka", false); got != "আকা" {
		t.Fatalf("Transliterate(aka) = %q", got)
	}
	if got := dict.Transliterate("kaka", true); got != "কাকা" {
		t.Fatalf("Transliterate(kaka) = %q", got)
	}
	if dict.Identifier != "patterns: small" {
		t.Fatalf("unexpected identifier %q", dict.Identifier)
	}
	if _, err := LoadGlyphTable(strings.NewReader(smallDefinition)); !errors.Is(err, ErrNoGlyphTable) {
		t.Fatalf("expected ErrNoGlyphTable, have %v", err)
	}
}

func TestLoadRejectsMalformedDefinitions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown scope", strings.Replace(smallDefinition, `"!consonant"`, `"!digit"`, 1), avro.ErrInvalidCondition},
		{"unknown type", strings.Replace(smallDefinition, `"prefix"`, `"infix"`, 1), avro.ErrInvalidCondition},
		{"duplicate token", strings.Replace(smallDefinition, `find: "a"`, `find: "k"`, 1), avro.ErrDuplicatePattern},
	}
	for _, tt := range tests {
		_, err := LoadDictionary(strings.NewReader(tt.src))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, have %v", tt.name, tt.want, err)
		}
	}
	if _, err := LoadDictionary(strings.NewReader("name: x\nfoo: 1\n")); err == nil {
		t.Errorf("unknown fields should be rejected")
	}
	if _, err := LoadDictionary(strings.NewReader("name: x\n")); err == nil {
		t.Errorf("definition without patterns should be rejected")
	}
}

func TestCondition(t *testing.T) {
	tests := []struct {
		md   MatchDoc
		want avro.Condition
	}{
		{MatchDoc{Type: "prefix", Scope: "punctuation"}, avro.Condition{Kind: avro.AtWordStart}},
		{MatchDoc{Type: "suffix", Scope: "!punctuation"}, avro.Condition{Kind: avro.AtWordEnd, Negate: true}},
		{MatchDoc{Type: "prefix", Scope: "!consonant"}, avro.Condition{Kind: avro.PreviousIsClass, Class: avro.Consonant, Negate: true}},
		{MatchDoc{Type: "suffix", Scope: "vowel"}, avro.Condition{Kind: avro.NextIsClass, Class: avro.Vowel}},
		{MatchDoc{Type: "prefix", Scope: "exact", Value: "ou"}, avro.Condition{Kind: avro.PreviousIs, Value: "ou"}},
		{MatchDoc{Type: "suffix", Scope: "!exact", Value: "`"}, avro.Condition{Kind: avro.NextIs, Value: "`", Negate: true}},
	}
	for _, tt := range tests {
		got, err := Condition(tt.md)
		if err != nil {
			t.Fatalf("Condition(%v): %v", tt.md, err)
		}
		if got != tt.want {
			t.Errorf("Condition(%v) = %v, want %v", tt.md, got, tt.want)
		}
	}
	if _, err := Condition(MatchDoc{Type: "prefix", Scope: "exact"}); !errors.Is(err, avro.ErrInvalidCondition) {
		t.Fatalf("exact without value should be rejected")
	}
}
