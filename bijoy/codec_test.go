package bijoy

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

var fixtureClasses = Classes{
	Prekar:      []string{"ি", "ৈ", "ে"},
	Postkar:     []string{"া", "ো", "ৌ", "ৗ", "ু", "ূ", "ী", "ৃ"},
	Banjonborno: "কখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমশষসহযরল\u09df\u09dc\u09ddংঃঁৎ",
	Halant:      "্",
	Nukta:       []string{"ং", "ঃ", "ঁ"},
}

func fixtureEntries() []Entry {
	return []Entry{
		{"আ", "Av"},
		{"অ", "A"},
		{"ই", "B"},
		{"ক", "K"},
		{"খ", "L"},
		{"গ", "M"},
		{"জ", "R"},
		{"ন", "b"},
		{"ব", "e"},
		{"ম", "g"},
		{"র", "i"},
		{"ল", "j"},
		{"স", "m"},
		{"য়", "q"}, // য়
		{"দ্ব", "˜¡"},
		{"দ্ব", "Ø"},
		{"ং", "s"},
		{"ঁ", "u"},
		{"া", "v"},
		{"ি", "w"},
		{"ু", "y"},
		{"ে", "‡"},
		{"ৗ", "Š"},
		{"র্", "©"},
		{"্", "&"},
		{"।", "|"},
	}
}

func mustCodec(t *testing.T) *Codec {
	t.Helper()
	table, err := NewTable(fixtureEntries(), fixtureClasses)
	if err != nil {
		t.Fatalf("could not build glyph table: %v", err)
	}
	return NewCodec(table)
}

func TestToLegacy(t *testing.T) {
	codec := mustCodec(t)
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"।", "|"},
		{"আমি বাংলায় গান গাই;", "Avwg evsjvq Mvb MvB;"},
		{"আমি বাংলায় গান গাই।", "Avwg evsjvq Mvb MvB|"},
		{"সোনার", "‡mvbvi"},
		{"সোনার", "‡mvbvi"},
		{"খুঁজে", "Lyu‡R"},
		{"কর্ম", "Kg©"},
		{"কর্মে", "K‡g©"},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		if got := codec.ToLegacy(tt.in); got != tt.want {
			t.Errorf("ToLegacy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToUnicode(t *testing.T) {
	codec := mustCodec(t)
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"|", "।"},
		{"Avwg evsjvq Mvb MvB|", "আমি বাংলায় গান গাই।"},
		{"‡mvbvi", "সোনার"},
		{"Lyu‡R", "খুঁজে"},
		{"Kg©", "কর্ম"},
		{"K‡g©", "কর্মে"},
		{"Kv©", "র্কা"},
		{"Kuv", "কাঁ"},
		{"Av", "আ"},
		{"123", "123"},
	}
	for _, tt := range tests {
		if got := codec.ToUnicode(tt.in); got != tt.want {
			t.Errorf("ToUnicode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollisionLastEntryWins(t *testing.T) {
	codec := mustCodec(t)
	if got := codec.Table().Collisions(); !reflect.DeepEqual(got, []string{"দ্ব"}) {
		t.Fatalf("expected collision for দ্ব, have %v", got)
	}
	if got := codec.ToLegacy("দ্ব"); got != "Ø" {
		t.Fatalf("ToLegacy(দ্ব) = %q, want Ø", got)
	}
	for _, legacy := range []string{"˜¡", "Ø"} {
		if got := codec.ToUnicode(legacy); got != "দ্ব" {
			t.Fatalf("ToUnicode(%q) = %q, want দ্ব", legacy, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	codec := mustCodec(t)
	collided := map[string]bool{}
	for _, k := range codec.Table().Collisions() {
		collided[k] = true
	}
	for _, e := range codec.Table().Entries() {
		if collided[e.Unicode] || collided[e.Legacy] {
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

func TestInvalidTable(t *testing.T) {
	if _, err := NewTable(fixtureEntries(), Classes{}); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("missing halant should be rejected, have %v", err)
	}
	if _, err := NewTable([]Entry{{"ক", ""}}, fixtureClasses); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("empty legacy value should be rejected, have %v", err)
	}
	cl := fixtureClasses
	cl.Prekar = []string{"িে"}
	if _, err := NewTable(fixtureEntries(), cl); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("multi-rune class entry should be rejected, have %v", err)
	}
}

func TestByteEncoding(t *testing.T) {
	b, err := EncodeBytes("‡mvbvi")
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x87, 'm', 'v', 'b', 'v', 'i'}; !bytes.Equal(b, want) {
		t.Fatalf("EncodeBytes = %v, want %v", b, want)
	}
	s, err := DecodeBytes(b)
	if err != nil {
		t.Fatal(err)
	}
	if s != "‡mvbvi" {
		t.Fatalf("DecodeBytes = %q", s)
	}
	if _, err := EncodeBytes("ক"); err == nil {
		t.Fatalf("Bengali text should not be encodable as windows-1252")
	}
}
