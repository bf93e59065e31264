// Package vault stores mnemonics encrypted at rest.
package vault

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Klingon-tech/go-mnemonic/internal/log"
)

// vaultFile is the on-disk JSON format for an encrypted mnemonic.
type vaultFile struct {
	Version           int       `json:"version"`
	CreatedAt         time.Time `json:"created_at"`
	Language          string    `json:"language"`
	WordCount         int       `json:"word_count"`
	EncryptedMnemonic []byte    `json:"encrypted_mnemonic"`
}

// Entry describes a stored mnemonic without revealing it.
type Entry struct {
	Name      string
	CreatedAt time.Time
	Language  string
	WordCount int
}

// Vault manages encrypted mnemonic files in a directory.
type Vault struct {
	path string
}

// Open creates a vault that reads/writes to the given directory.
// The directory is created if it doesn't exist.
func Open(path string) (*Vault, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("create vault dir: %w", err)
	}
	return &Vault{path: path}, nil
}

func (v *Vault) entryPath(name string) string {
	return filepath.Join(v.path, name+".vault")
}

// Store encrypts a mnemonic under password and writes it as a named
// entry. The ciphertext is bound to the entry name, so a file copied
// to a different name will not decrypt. The language and word count
// are kept in cleartext metadata so entries can be listed without the
// password.
func (v *Vault) Store(name, sentence, language string, password []byte, params EncryptionParams) error {
	path := v.entryPath(name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("vault entry %q already exists", name)
	}

	encrypted, err := Encrypt([]byte(sentence), password, []byte(name), params)
	if err != nil {
		return fmt.Errorf("encrypt mnemonic: %w", err)
	}

	vf := vaultFile{
		Version:           1,
		CreatedAt:         time.Now().UTC(),
		Language:          language,
		WordCount:         len(strings.Fields(sentence)),
		EncryptedMnemonic: encrypted,
	}

	if err := v.writeFile(path, &vf); err != nil {
		return err
	}
	log.Vault.Info().Str("name", name).Str("language", language).Msg("stored mnemonic")
	return nil
}

// Load decrypts a stored entry and returns the mnemonic sentence.
func (v *Vault) Load(name string, password []byte) (string, error) {
	vf, err := v.readFile(v.entryPath(name))
	if err != nil {
		return "", err
	}

	plaintext, err := Decrypt(vf.EncryptedMnemonic, password, []byte(name))
	if err != nil {
		return "", fmt.Errorf("decrypt entry: %w", err)
	}
	return string(plaintext), nil
}

// List returns metadata for all entries in the vault.
func (v *Vault) List() ([]Entry, error) {
	files, err := os.ReadDir(v.path)
	if err != nil {
		return nil, fmt.Errorf("read vault dir: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		ext := filepath.Ext(name)
		if ext != ".vault" {
			continue
		}
		vf, err := v.readFile(filepath.Join(v.path, name))
		if err != nil {
			log.Vault.Warn().Str("file", name).Err(err).Msg("skipping unreadable entry")
			continue
		}
		entries = append(entries, Entry{
			Name:      name[:len(name)-len(ext)],
			CreatedAt: vf.CreatedAt,
			Language:  vf.Language,
			WordCount: vf.WordCount,
		})
	}
	return entries, nil
}

// Delete removes an entry.
func (v *Vault) Delete(name string) error {
	path := v.entryPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("vault entry %q not found", name)
	}
	return os.Remove(path)
}

func (v *Vault) writeFile(path string, vf *vaultFile) error {
	data, err := json.MarshalIndent(vf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

func (v *Vault) readFile(path string) (*vaultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entry: %w", err)
	}
	var vf vaultFile
	if err := json.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("parse entry: %w", err)
	}
	if vf.Version != 1 {
		return nil, fmt.Errorf("unsupported vault version: %d", vf.Version)
	}
	return &vf, nil
}
