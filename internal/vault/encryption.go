package vault

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Encryption constants.
const (
	SaltSize = 16
	// Encrypted format: [salt(16)][memory(4)][iterations(4)][parallelism(1)][nonce(24)][ciphertext...]
	headerSize = SaltSize + 4 + 4 + 1
)

// EncryptionParams holds Argon2id parameters.
type EncryptionParams struct {
	Memory      uint32 // in KiB
	Iterations  uint32
	Parallelism uint8
}

// DefaultParams returns recommended Argon2id parameters.
func DefaultParams() EncryptionParams {
	return EncryptionParams{
		Memory:      64 * 1024, // 64 MB
		Iterations:  3,
		Parallelism: 4,
	}
}

// deriveKey uses Argon2id to derive a 32-byte encryption key from password and salt.
func deriveKey(password, salt []byte, params EncryptionParams) []byte {
	return argon2.IDKey(
		password,
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		chacha20poly1305.KeySize,
	)
}

// Encrypt encrypts data with password using Argon2id + XChaCha20-Poly1305.
// The KDF parameters travel in the header so decryption works after the
// defaults change. context is authenticated but not encrypted; the vault
// passes the entry name so a ciphertext cannot be replayed under a
// different name.
//
// Output format: salt(16) | memory(4) | iterations(4) | parallelism(1) | nonce(24) | ciphertext
func Encrypt(data, password, context []byte, params EncryptionParams) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := deriveKey(password, salt, params)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, data, context)

	out := make([]byte, 0, headerSize+len(nonce)+len(ciphertext))
	out = append(out, salt...)
	out = binary.LittleEndian.AppendUint32(out, params.Memory)
	out = binary.LittleEndian.AppendUint32(out, params.Iterations)
	out = append(out, params.Parallelism)
	out = append(out, nonce...)
	out = append(out, ciphertext...)

	// Zero the derived key.
	for i := range key {
		key[i] = 0
	}

	return out, nil
}

// Decrypt decrypts data encrypted by Encrypt with the given password
// and context.
func Decrypt(encrypted, password, context []byte) ([]byte, error) {
	nonceSize := chacha20poly1305.NonceSizeX
	minSize := headerSize + nonceSize + chacha20poly1305.Overhead
	if len(encrypted) < minSize {
		return nil, fmt.Errorf("encrypted data too short: %d bytes, need at least %d", len(encrypted), minSize)
	}

	salt := encrypted[:SaltSize]
	memory := binary.LittleEndian.Uint32(encrypted[SaltSize:])
	iterations := binary.LittleEndian.Uint32(encrypted[SaltSize+4:])
	parallelism := encrypted[SaltSize+8]

	params := EncryptionParams{
		Memory:      memory,
		Iterations:  iterations,
		Parallelism: parallelism,
	}

	nonce := encrypted[headerSize : headerSize+nonceSize]
	ciphertext := encrypted[headerSize+nonceSize:]

	key := deriveKey(password, salt, params)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		for i := range key {
			key[i] = 0
		}
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, context)

	// Zero the derived key.
	for i := range key {
		key[i] = 0
	}

	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	return plaintext, nil
}
