package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// SeedSize is the length in bytes of a derived BIP-39 seed.
const SeedSize = 64

const (
	seedRounds     = 2048
	seedSaltPrefix = "mnemonic"
)

// ToSeed stretches a mnemonic sentence into a 64-byte seed with
// PBKDF2-HMAC-SHA512. Both the sentence and the passphrase are
// NFKD-normalized first, so visually identical inputs in different
// Unicode forms derive the same seed. The sentence is not validated;
// any string produces a seed, per the standard.
func ToSeed(sentence, passphrase string) []byte {
	password := []byte(Normalize(sentence))
	salt := []byte(seedSaltPrefix + Normalize(passphrase))
	return pbkdf2.Key(password, salt, seedRounds, SeedSize, sha512.New)
}
