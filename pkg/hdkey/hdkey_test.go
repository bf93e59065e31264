package hdkey

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	bip32 "github.com/tyler-smith/go-bip32"

	"github.com/Klingon-tech/go-mnemonic/pkg/mnemonic"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestMasterKey_Vectors(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		testnet bool
		want    string
	}{
		{
			name: "all zero entropy mainnet",
			seed: "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
			want: "xprv9s21ZrQH143K3h3fDYiay8mocZ3afhfULfb5GX8kCBdno77K4HiA15Tg23wpbeF1pLfs1c5SPmYHrEpTuuRhxMwvKDwqdKiGJS9XFKzUsAF",
		},
		{
			name:    "all zero entropy testnet",
			seed:    "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
			testnet: true,
			want:    "tprv8ZgxMBicQKsPeWHBt7a68nPnvgTnuDhUgDWC8wZCgA8GahrQ3f3uWpq7wE7Uc1dLBnCe1hhCZ886K6ND37memRDWqsA9HgSKDXtwh2Qxo6J",
		},
		{
			name: "0x80 pattern mainnet",
			seed: "d71de856f81a8acc65e6fc851a38d4d7ec216fd0796d0a6827a3ad6ed5511a30fa280f12eb2e47ed2ac03b5c462a0358d18d69fe4f985ec81778c1b370b652a8",
			want: "xprv9s21ZrQH143K2shfP28KM3nr5Ap1SXjz8gc2rAqqMEynmjt6o1qboCDpxckqXavCwdnYds6yBHZGKHv7ef2eTXy461PXUjBFQg6PrwY4Gzq",
		},
		{
			name: "0x80 pattern empty passphrase mainnet",
			seed: "77d6be9708c8218738934f84bbbb78a2e048ca007746cb764f0673e4b1812d176bbb173e1a291f31cf633f1d0bad7d3cf071c30e98cd0688b5bcce65ecaceb36",
			want: "xprv9s21ZrQH143K44Ed4QRTf937zLBakERjDRwqdMirEN9K5GjGedDM4zZSzCTuKSfTRw6b9c6AfNpnLi5ZA6ZWpQ1cmmt86pq8AE2yqeTB6Xm",
		},
		{
			name:    "0x80 pattern empty passphrase testnet",
			seed:    "77d6be9708c8218738934f84bbbb78a2e048ca007746cb764f0673e4b1812d176bbb173e1a291f31cf633f1d0bad7d3cf071c30e98cd0688b5bcce65ecaceb36",
			testnet: true,
			want:    "tprv8ZgxMBicQKsPesU9iyGxpnf7JTbnykTjYyrxVn9JiLdnrsUMdzZ6ajvtuNdZKp3moNdN9hhvpjQaoZdJHJuTdTHDJR6RmBZB5KnQHNooanT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MasterKey(mustHex(t, tt.seed), tt.testnet)
			if err != nil {
				t.Fatalf("MasterKey() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MasterKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMasterKey_BadLength(t *testing.T) {
	for _, n := range []int{0, 16, 32, 63, 65, 128} {
		if _, err := MasterKey(make([]byte, n), false); !errors.Is(err, ErrSeedLength) {
			t.Errorf("MasterKey(%d bytes) error = %v, want ErrSeedLength", n, err)
		}
	}
}

func TestMasterKey_Prefixes(t *testing.T) {
	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}

	main, err := MasterKey(seed, false)
	if err != nil {
		t.Fatalf("MasterKey() error: %v", err)
	}
	if !strings.HasPrefix(main, "xprv") {
		t.Errorf("mainnet key %q should start with xprv", main)
	}

	test, err := MasterKey(seed, true)
	if err != nil {
		t.Fatalf("MasterKey() error: %v", err)
	}
	if !strings.HasPrefix(test, "tprv") {
		t.Errorf("testnet key %q should start with tprv", test)
	}
}

func TestMasterKey_MatchesReference(t *testing.T) {
	sentences := []string{
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		"ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic",
		"letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
	}
	for _, s := range sentences {
		seed := mnemonic.ToSeed(s, "TREZOR")
		got, err := MasterKey(seed, false)
		if err != nil {
			t.Fatalf("MasterKey() error: %v", err)
		}
		ref, err := bip32.NewMasterKey(seed)
		if err != nil {
			t.Fatalf("reference NewMasterKey() error: %v", err)
		}
		if want := ref.B58Serialize(); got != want {
			t.Errorf("MasterKey() = %q, reference says %q", got, want)
		}
	}
}
