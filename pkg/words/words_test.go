package words

import (
	"errors"
	"fmt"
	"testing"
)

func TestForLanguage_English(t *testing.T) {
	list, err := ForLanguage(English)
	if err != nil {
		t.Fatalf("ForLanguage() error: %v", err)
	}

	if got := list.Word(0); got != "abandon" {
		t.Errorf("Word(0) = %q, want %q", got, "abandon")
	}
	if got := list.Word(2047); got != "zoo" {
		t.Errorf("Word(2047) = %q, want %q", got, "zoo")
	}

	idx, ok := list.Index("zebra")
	if !ok || idx != 2044 {
		t.Errorf("Index(zebra) = %d, %v, want 2044, true", idx, ok)
	}
}

// TestForLanguage_English_Midrange pins a slice of the list around the
// find..fish run, where an off-by-one against the reference file would
// silently shift every later index and derive wrong entropy.
func TestForLanguage_English_Midrange(t *testing.T) {
	list, err := ForLanguage(English)
	if err != nil {
		t.Fatalf("ForLanguage() error: %v", err)
	}

	want := map[int]string{
		693: "find",
		694: "fine",
		695: "finger",
		701: "fish",
		702: "fit",
	}
	for i, w := range want {
		if got := list.Word(i); got != w {
			t.Errorf("Word(%d) = %q, want %q", i, got, w)
		}
	}
	if list.Contains("fist") {
		t.Error(`Contains("fist") = true; not a reference word`)
	}
}

func TestForLanguage_Embedded(t *testing.T) {
	// Every compiled-in list must load without a search dir and carry
	// the reference endpoints.
	old := SearchDir
	SearchDir = ""
	defer func() { SearchDir = old }()

	tests := []struct {
		lang        Language
		first, last string
	}{
		{English, "abandon", "zoo"},
		{ChineseSimplified, "的", "歇"},
		{ChineseTraditional, "的", "歇"},
		{Czech, "abdikace", "zvyk"},
		{French, "abaisser", "zoologie"},
		{Italian, "abaco", "zuppa"},
		{Japanese, "あいこくしん", "われる"},
		{Korean, "가격", "힘껏"},
		{Spanish, "ábaco", "zurdo"},
	}
	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			list, err := ForLanguage(tt.lang)
			if err != nil {
				t.Fatalf("ForLanguage() error: %v", err)
			}
			if idx, ok := list.Index(tt.first); !ok || idx != 0 {
				t.Errorf("Index(%q) = %d, %v, want 0, true", tt.first, idx, ok)
			}
			if idx, ok := list.Index(tt.last); !ok || idx != Count-1 {
				t.Errorf("Index(%q) = %d, %v, want %d, true", tt.last, idx, ok, Count-1)
			}
		})
	}
}

func TestForLanguage_Unavailable(t *testing.T) {
	// Portuguese has no compiled-in list; without a search dir it must
	// fail with ErrUnavailable.
	old := SearchDir
	SearchDir = ""
	defer func() { SearchDir = old }()

	_, err := ForLanguage(Portuguese)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("ForLanguage(Portuguese) error = %v, want ErrUnavailable", err)
	}
}

func TestCustom_Length(t *testing.T) {
	tests := []struct {
		name string
		n    int
		ok   bool
	}{
		{"exact", 2048, true},
		{"short", 2047, false},
		{"long", 2049, false},
		{"empty", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := make([]string, tt.n)
			for i := range ws {
				ws[i] = fmt.Sprintf("word%d", i+1)
			}
			_, err := Custom(ws)
			if tt.ok && err != nil {
				t.Fatalf("Custom() error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidLength) {
				t.Errorf("Custom() error = %v, want ErrInvalidLength", err)
			}
		})
	}
}

func TestList_PrefixLookups(t *testing.T) {
	list, err := ForLanguage(English)
	if err != nil {
		t.Fatalf("ForLanguage() error: %v", err)
	}

	if !list.HasPrefix("zeb") {
		t.Error("HasPrefix(zeb) = false, want true")
	}
	if list.HasPrefix("zzz") {
		t.Error("HasPrefix(zzz) = true, want false")
	}

	w, ok := list.OneWithPrefix("acce")
	if !ok || w != "access" {
		t.Errorf("OneWithPrefix(acce) = %q, %v, want access, true", w, ok)
	}

	// "act" prefixes act, action, actor, actress, actual.
	if _, ok := list.OneWithPrefix("act"); ok {
		t.Error("OneWithPrefix(act) should be ambiguous")
	}

	if _, ok := list.OneWithPrefix("acb"); ok {
		t.Error("OneWithPrefix(acb) should have no match")
	}
}

func TestList_NormalizedLookup(t *testing.T) {
	// Index must see through Unicode normal forms: a fullwidth "zoo"
	// (NFKC/NFKD-compatible) resolves to the ASCII entry.
	list, err := ForLanguage(English)
	if err != nil {
		t.Fatalf("ForLanguage() error: %v", err)
	}

	idx, ok := list.Index("ｚｏｏ")
	if !ok || idx != 2047 {
		t.Errorf("Index(fullwidth zoo) = %d, %v, want 2047, true", idx, ok)
	}
}

func TestLanguage_String(t *testing.T) {
	if got := ChineseSimplified.String(); got != "chinese_simplified" {
		t.Errorf("String() = %q, want chinese_simplified", got)
	}
	if got := Language(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
	if n := len(Languages()); n != 12 {
		t.Errorf("len(Languages()) = %d, want 12", n)
	}
}
