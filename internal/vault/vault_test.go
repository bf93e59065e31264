package vault

import (
	"os"
	"path/filepath"
	"testing"
)

const testSentence = "ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic"

func testVault(t *testing.T) *Vault {
	t.Helper()
	v, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return v
}

func TestVault_StoreAndLoad(t *testing.T) {
	v := testVault(t)
	password := []byte("test-password")

	if err := v.Store("primary", testSentence, "english", password, fastParams()); err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	loaded, err := v.Load("primary", password)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded != testSentence {
		t.Errorf("Load() = %q, want %q", loaded, testSentence)
	}
}

func TestVault_StoreDuplicate(t *testing.T) {
	v := testVault(t)

	if err := v.Store("dup", testSentence, "english", []byte("pass"), fastParams()); err != nil {
		t.Fatalf("first Store() error: %v", err)
	}
	if err := v.Store("dup", testSentence, "english", []byte("pass"), fastParams()); err == nil {
		t.Error("second Store() with same name should fail")
	}
}

func TestVault_LoadWrongPassword(t *testing.T) {
	v := testVault(t)

	if err := v.Store("entry", testSentence, "english", []byte("correct"), fastParams()); err != nil {
		t.Fatalf("Store() error: %v", err)
	}
	if _, err := v.Load("entry", []byte("wrong")); err == nil {
		t.Error("Load() with wrong password should fail")
	}
}

func TestVault_LoadRenamedEntry(t *testing.T) {
	// A vault file copied under a different name must not decrypt:
	// the ciphertext is bound to the name it was stored under.
	dir := t.TempDir()
	v, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	password := []byte("pass")

	if err := v.Store("original", testSentence, "english", password, fastParams()); err != nil {
		t.Fatalf("Store() error: %v", err)
	}
	if err := os.Rename(filepath.Join(dir, "original.vault"), filepath.Join(dir, "swapped.vault")); err != nil {
		t.Fatalf("Rename() error: %v", err)
	}

	if _, err := v.Load("swapped", password); err == nil {
		t.Error("Load() of renamed entry should fail")
	}
}

func TestVault_LoadMissing(t *testing.T) {
	v := testVault(t)
	if _, err := v.Load("nope", []byte("pass")); err == nil {
		t.Error("Load() of missing entry should fail")
	}
}

func TestVault_List(t *testing.T) {
	v := testVault(t)

	entries, err := v.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("List() of empty vault = %d entries, want 0", len(entries))
	}

	if err := v.Store("a", testSentence, "english", []byte("p"), fastParams()); err != nil {
		t.Fatalf("Store() error: %v", err)
	}
	if err := v.Store("b", testSentence, "english", []byte("p"), fastParams()); err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	entries, err = v.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List() = %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Language != "english" {
			t.Errorf("entry %q language = %q, want english", e.Name, e.Language)
		}
		if e.WordCount != 12 {
			t.Errorf("entry %q word count = %d, want 12", e.Name, e.WordCount)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("entry %q has zero creation time", e.Name)
		}
	}
}

func TestVault_Delete(t *testing.T) {
	v := testVault(t)

	if err := v.Store("gone", testSentence, "english", []byte("p"), fastParams()); err != nil {
		t.Fatalf("Store() error: %v", err)
	}
	if err := v.Delete("gone"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := v.Load("gone", []byte("p")); err == nil {
		t.Error("Load() after Delete() should fail")
	}
	if err := v.Delete("gone"); err == nil {
		t.Error("Delete() of missing entry should fail")
	}
}
