// Package words manages BIP-39 wordlists: fixed 2048-word vocabularies
// keyed by language, with exact and prefix lookups.
//
// Nine reference lists are compiled in (English, both Chinese scripts,
// Czech, French, Italian, Japanese, Korean, Spanish). The remaining
// languages are read from SearchDir when present, so deployments can
// drop in the official files from the BIP repository without
// rebuilding.
package words

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Count is the required number of words in a list (2^11).
const Count = 2048

var (
	// ErrUnavailable means a language's wordlist resource is neither
	// compiled in nor present in SearchDir.
	ErrUnavailable = errors.New("wordlist unavailable")

	// ErrInvalidLength means a caller-supplied wordlist does not hold
	// exactly 2048 entries.
	ErrInvalidLength = errors.New("wordlist must contain exactly 2048 words")
)

// SearchDir, when non-empty, is consulted for wordlist files that are
// not compiled in. Files are named <code>.txt, one word per line.
var SearchDir = os.Getenv("MNEMONIC_WORDLIST_DIR")

//go:embed wordlists
var embedded embed.FS

// List is an immutable, ordered 2048-word vocabulary. All words are
// stored and looked up in NFKD form. Safe for concurrent use.
type List struct {
	words []string
	index map[string]int
}

// ForLanguage loads the reference wordlist for lang.
func ForLanguage(lang Language) (*List, error) {
	name := lang.String() + ".txt"
	data, err := embedded.ReadFile("wordlists/" + name)
	if err != nil && SearchDir != "" {
		data, err = os.ReadFile(filepath.Join(SearchDir, name))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, lang)
	}

	ws, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("wordlist %s: %w", lang, err)
	}
	return newList(ws)
}

// Custom builds a List from a caller-supplied ordered word sequence.
// Only the length is validated; duplicate entries are the caller's
// responsibility.
func Custom(ws []string) (*List, error) {
	return newList(ws)
}

func newList(ws []string) (*List, error) {
	if len(ws) != Count {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, len(ws))
	}
	l := &List{
		words: make([]string, Count),
		index: make(map[string]int, Count),
	}
	for i, w := range ws {
		w = norm.NFKD.String(w)
		l.words[i] = w
		if _, ok := l.index[w]; !ok {
			l.index[w] = i
		}
	}
	return l, nil
}

func parse(data []byte) ([]string, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	ws := make([]string, 0, Count)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		ws = append(ws, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Word returns the entry at index i. It panics if i is out of range,
// mirroring slice semantics; callers hold indices in [0, 2047] by
// construction.
func (l *List) Word(i int) string {
	return l.words[i]
}

// Index returns the position of word after NFKD normalization.
func (l *List) Index(word string) (int, bool) {
	i, ok := l.index[norm.NFKD.String(word)]
	return i, ok
}

// Contains reports whether word is an exact (normalized) entry.
func (l *List) Contains(word string) bool {
	_, ok := l.Index(word)
	return ok
}

// HasPrefix reports whether any entry starts with prefix. The prefix
// is normalized before comparison.
func (l *List) HasPrefix(prefix string) bool {
	p := norm.NFKD.String(prefix)
	for _, w := range l.words {
		if strings.HasPrefix(w, p) {
			return true
		}
	}
	return false
}

// OneWithPrefix returns the single entry starting with prefix, if
// exactly one exists.
func (l *List) OneWithPrefix(prefix string) (string, bool) {
	p := norm.NFKD.String(prefix)
	var found string
	n := 0
	for _, w := range l.words {
		if strings.HasPrefix(w, p) {
			found = w
			if n++; n > 1 {
				return "", false
			}
		}
	}
	return found, n == 1
}
