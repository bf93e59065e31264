package mnemonic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Klingon-tech/go-mnemonic/pkg/words"
)

// ErrAmbiguous means a sentence matched more than one wordlist.
var ErrAmbiguous = errors.New("mnemonic matches multiple languages")

// Detect guesses the language of a sentence by scanning the reference
// wordlists. Languages whose lists cannot be loaded are skipped.
func Detect(sentence string) (words.Language, error) {
	available := make(map[words.Language]*words.List)
	for _, lang := range words.Languages() {
		list, err := words.ForLanguage(lang)
		if err != nil {
			continue
		}
		available[lang] = list
	}
	return DetectAmong(available, sentence)
}

// DetectAmong runs detection over a caller-supplied set of candidate
// wordlists. Detection is two-pass: first the candidate set is
// narrowed to languages where every token is the prefix of some word,
// then exact full-word matches disambiguate. A token may be a bare
// prefix; a single surviving candidate after the prefix pass wins
// without requiring complete words.
func DetectAmong(candidates map[words.Language]*words.List, sentence string) (words.Language, error) {
	var tokens []string
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(Normalize(sentence)) {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		tokens = append(tokens, w)
	}
	if len(tokens) == 0 {
		return words.English, fmt.Errorf("%w: empty sentence", ErrUnknownWord)
	}

	remaining := make(map[words.Language]*words.List, len(candidates))
	for lang, list := range candidates {
		remaining[lang] = list
	}

	// Prefix narrowing.
	for _, tok := range tokens {
		for lang, list := range remaining {
			if !list.HasPrefix(tok) {
				delete(remaining, lang)
			}
		}
		if len(remaining) == 0 {
			return words.English, fmt.Errorf("%w: %q", ErrUnknownWord, tok)
		}
	}
	if len(remaining) == 1 {
		for lang := range remaining {
			return lang, nil
		}
	}

	// Exact-match confirmation: a token found as a complete word in
	// exactly one surviving candidate votes for that candidate.
	confirmed := make(map[words.Language]struct{})
	for _, tok := range tokens {
		var exact []words.Language
		for lang, list := range remaining {
			if list.Contains(tok) {
				exact = append(exact, lang)
			}
		}
		if len(exact) == 1 {
			confirmed[exact[0]] = struct{}{}
		}
	}
	if len(confirmed) == 1 {
		for lang := range confirmed {
			return lang, nil
		}
	}

	names := make([]string, 0, len(remaining))
	for lang := range remaining {
		names = append(names, lang.String())
	}
	sort.Strings(names)
	return words.English, fmt.Errorf("%w: %s", ErrAmbiguous, strings.Join(names, ", "))
}
