// Package mnemonic implements BIP-39: deterministic conversion between
// entropy and mnemonic sentences, language detection, and seed
// derivation for hierarchical deterministic wallets.
package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/Klingon-tech/go-mnemonic/internal/bits"
	"github.com/Klingon-tech/go-mnemonic/pkg/words"
)

var (
	// ErrEntropyLength means the entropy is not 16, 20, 24, 28 or 32 bytes.
	ErrEntropyLength = errors.New("entropy must be 16, 20, 24, 28 or 32 bytes")

	// ErrWordCount means the sentence is not 12, 15, 18, 21 or 24 words.
	ErrWordCount = errors.New("mnemonic must contain 12, 15, 18, 21 or 24 words")

	// ErrUnknownWord means a word is missing from the wordlist.
	ErrUnknownWord = errors.New("word not found in wordlist")

	// ErrChecksum means the checksum bits do not match the entropy.
	ErrChecksum = errors.New("failed checksum")

	// ErrStrength means a generation strength outside the valid set.
	ErrStrength = errors.New("strength must be 128, 160, 192, 224 or 256 bits")
)

// Japanese sentences are joined with an ideographic space; every other
// language uses an ordinary space.
const ideographicSpace = "　"

// Codec binds one wordlist and one word separator. It carries no other
// state: every method is pure given its inputs, so a single Codec may
// be shared freely across goroutines.
type Codec struct {
	list *words.List
	sep  string
}

// New creates a Codec for one of the reference wordlists.
func New(lang words.Language) (*Codec, error) {
	list, err := words.ForLanguage(lang)
	if err != nil {
		return nil, err
	}
	sep := " "
	if lang == words.Japanese {
		sep = ideographicSpace
	}
	return &Codec{list: list, sep: sep}, nil
}

// NewWithList creates a Codec over a caller-supplied wordlist, joined
// with ordinary spaces.
func NewWithList(list *words.List) *Codec {
	return &Codec{list: list, sep: " "}
}

// ToMnemonic encodes entropy as a mnemonic sentence. The checksum is
// the leading len(entropy)*8/32 bits of SHA-256(entropy), appended to
// the entropy bit string before slicing into 11-bit word indices.
func (c *Codec) ToMnemonic(entropy []byte) (string, error) {
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return "", fmt.Errorf("%w: got %d bytes", ErrEntropyLength, len(entropy))
	}

	sum := sha256.Sum256(entropy)
	entropyBits := len(entropy) * 8
	checksumBits := entropyBits / 32
	wordCount := (entropyBits + checksumBits) / 11

	// At most 8 checksum bits are ever used, so a single hash byte
	// appended to the entropy covers every valid strength.
	data := make([]byte, 0, len(entropy)+1)
	data = append(data, entropy...)
	data = append(data, sum[0])

	ws := make([]string, wordCount)
	for i, idx := range bits.Unpack(data, wordCount) {
		ws[i] = c.list.Word(int(idx))
	}
	return strings.Join(ws, c.sep), nil
}

// ToEntropy decodes a word sequence back to entropy bytes, verifying
// the checksum. Words are normalized before lookup.
func (c *Codec) ToEntropy(ws []string) ([]byte, error) {
	switch len(ws) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrWordCount, len(ws))
	}

	indices := make([]uint16, len(ws))
	for i, w := range ws {
		idx, ok := c.list.Index(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
		indices[i] = uint16(idx)
	}

	packed := bits.Pack(indices)
	entropyLen := len(ws) * 11 * 32 / 33 / 8
	checksumBits := entropyLen * 8 / 32
	entropy := packed[:entropyLen]

	sum := sha256.Sum256(entropy)
	mask := byte(0xff) << (8 - checksumBits)
	if packed[entropyLen]&mask != sum[0]&mask {
		return nil, ErrChecksum
	}
	return entropy, nil
}

// Check reports whether sentence is a valid mnemonic: correct word
// count, known words, and matching checksum. It never returns an
// error; every failure mode is uniformly "invalid".
func (c *Codec) Check(sentence string) bool {
	_, err := c.ToEntropy(strings.Fields(Normalize(sentence)))
	return err == nil
}

// ExpandWord completes an unambiguous word prefix. Complete words and
// prefixes with zero or multiple completions are returned unchanged.
func (c *Codec) ExpandWord(prefix string) string {
	if c.list.Contains(prefix) {
		return prefix
	}
	if w, ok := c.list.OneWithPrefix(prefix); ok {
		return w
	}
	return prefix
}

// Expand applies ExpandWord to every whitespace-separated token and
// rejoins with single spaces.
func (c *Codec) Expand(sentence string) string {
	fields := strings.Fields(sentence)
	for i, f := range fields {
		fields[i] = c.ExpandWord(f)
	}
	return strings.Join(fields, " ")
}

// Generate draws strength/8 bytes from the platform's secure random
// source and encodes them. Strength 128 yields 12 words, 256 yields 24.
func (c *Codec) Generate(strength int) (string, error) {
	switch strength {
	case 128, 160, 192, 224, 256:
	default:
		return "", fmt.Errorf("%w: got %d", ErrStrength, strength)
	}
	entropy := make([]byte, strength/8)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return c.ToMnemonic(entropy)
}
