package mnemonic

import "golang.org/x/text/unicode/norm"

// Normalize canonicalizes text to Unicode compatibility-decomposed
// form (NFKD). Every string is normalized before it is hashed, fed to
// key derivation, or compared against a wordlist, so equivalent inputs
// in any normal form produce identical key material. Idempotent.
func Normalize(s string) string {
	return norm.NFKD.String(s)
}
