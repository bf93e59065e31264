// Package hdkey serializes BIP-32 master keys derived from BIP-39
// seeds.
package hdkey

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
)

// SeedSize is the required seed length in bytes.
const SeedSize = 64

// ErrSeedLength means the seed is not exactly 64 bytes.
var ErrSeedLength = errors.New("seed must be 64 bytes")

// HMAC key fixed by BIP-32 for master key generation.
var masterHMACKey = []byte("Bitcoin seed")

// Extended private key version prefixes: xprv for mainnet, tprv for
// testnet.
var (
	mainnetVersion = [4]byte{0x04, 0x88, 0xad, 0xe4}
	testnetVersion = [4]byte{0x04, 0x35, 0x83, 0x94}
)

// MasterKey derives the BIP-32 master extended private key from a
// 64-byte seed and returns its base58check serialization. The seed is
// split by HMAC-SHA512 under the fixed key "Bitcoin seed": the left
// half becomes the private key, the right half the chain code. The
// master key sits at depth zero, so its depth, parent fingerprint and
// child index fields are all zero.
func MasterKey(seed []byte, testnet bool) (string, error) {
	if len(seed) != SeedSize {
		return "", fmt.Errorf("%w: got %d", ErrSeedLength, len(seed))
	}

	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)
	priv, chain := sum[:32], sum[32:]

	version := mainnetVersion
	if testnet {
		version = testnetVersion
	}

	// version(4) || depth(1) || fingerprint(4) || index(4) ||
	// chain(32) || 0x00 || priv(32) || checksum(4)
	payload := make([]byte, 0, 82)
	payload = append(payload, version[:]...)
	payload = append(payload, make([]byte, 9)...)
	payload = append(payload, chain...)
	payload = append(payload, 0x00)
	payload = append(payload, priv...)

	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	payload = append(payload, second[:4]...)

	return base58.Encode(payload), nil
}
