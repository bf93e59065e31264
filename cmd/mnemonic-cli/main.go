// mnemonic-cli generates, validates and converts BIP-39 mnemonics,
// derives seeds and master keys, and stores mnemonics encrypted.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/Klingon-tech/go-mnemonic/config"
	"github.com/Klingon-tech/go-mnemonic/internal/log"
	"github.com/Klingon-tech/go-mnemonic/internal/vault"
	"github.com/Klingon-tech/go-mnemonic/pkg/hdkey"
	"github.com/Klingon-tech/go-mnemonic/pkg/mnemonic"
	"github.com/Klingon-tech/go-mnemonic/pkg/words"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Global flags that appear before the subcommand. Flag values
	// override the conf file, which overrides defaults.
	var fl struct {
		dataDir     string
		language    string
		wordlistDir string
		vaultDir    string
		logLevel    string
		jsonLogs    bool
	}

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--datadir" && len(args) > 1:
			fl.dataDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--datadir="):
			fl.dataDir = args[0][len("--datadir="):]
			args = args[1:]
		case args[0] == "--language" && len(args) > 1:
			fl.language = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--language="):
			fl.language = args[0][len("--language="):]
			args = args[1:]
		case args[0] == "--wordlist-dir" && len(args) > 1:
			fl.wordlistDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--wordlist-dir="):
			fl.wordlistDir = args[0][len("--wordlist-dir="):]
			args = args[1:]
		case args[0] == "--vault-dir" && len(args) > 1:
			fl.vaultDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--vault-dir="):
			fl.vaultDir = args[0][len("--vault-dir="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			fl.logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			fl.logLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-logs":
			fl.jsonLogs = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	cfg := config.Default()
	if fl.dataDir != "" {
		cfg.DataDir = fl.dataDir
	}
	values, err := config.LoadFile(cfg.ConfFile())
	if err != nil {
		fatal("read config: %v", err)
	}
	if err := config.ApplyFileConfig(cfg, values); err != nil {
		fatal("load config: %v", err)
	}
	if fl.dataDir != "" {
		cfg.DataDir = fl.dataDir
	}
	if fl.language != "" {
		cfg.Language = fl.language
	}
	if fl.wordlistDir != "" {
		cfg.WordlistDir = fl.wordlistDir
	}
	if fl.logLevel != "" {
		cfg.Log.Level = fl.logLevel
	}
	if fl.jsonLogs {
		cfg.Log.JSON = true
	}
	if err := config.Validate(cfg); err != nil {
		fatal("config: %v", err)
	}
	vaultDir := fl.vaultDir
	if vaultDir == "" {
		vaultDir = cfg.VaultDir()
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}
	if cfg.WordlistDir != "" {
		words.SearchDir = cfg.WordlistDir
	}
	language := cfg.Language

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]
	log.CLI.Debug().Str("command", cmd).Str("language", language).Msg("dispatching")

	switch cmd {
	case "generate":
		cmdGenerate(cmdArgs, language)
	case "check":
		cmdCheck(cmdArgs, language)
	case "entropy":
		cmdEntropy(cmdArgs, language)
	case "mnemonic":
		cmdMnemonic(cmdArgs, language)
	case "seed":
		cmdSeed(cmdArgs)
	case "master-key":
		cmdMasterKey(cmdArgs)
	case "detect":
		cmdDetect(cmdArgs)
	case "expand":
		cmdExpand(cmdArgs, language)
	case "languages":
		cmdLanguages()
	case "vault":
		cmdVault(cmdArgs, vaultDir, language)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: mnemonic-cli [global flags] <command> [flags]

Global flags:
  --datadir <path>      Data directory (default: ~/.mnemonic)
  --language <name>     Wordlist language (default: english)
  --wordlist-dir <path> Extra directory searched for <language>.txt wordlists
  --vault-dir <path>    Vault directory (default: <datadir>/vault)
  --log-level <level>   debug, info, warn (default) or error
  --json-logs           Emit logs as JSON

Commands:
  generate [--strength <bits>]    Generate a new mnemonic (default: 256)
  check "<mnemonic>"              Validate a mnemonic
  entropy "<mnemonic>"            Decode a mnemonic to hex entropy
  mnemonic <hex>                  Encode hex entropy as a mnemonic
  seed [--passphrase-prompt] "<mnemonic>"
                                  Derive the 64-byte seed (hex)
  master-key [--testnet] [--passphrase-prompt] "<mnemonic>"
                                  Derive the BIP-32 master extended key
  detect "<mnemonic>"             Guess the language of a mnemonic
  expand "<prefixes>"             Complete unambiguous word prefixes
  languages                       List supported wordlist languages

  vault store --name <n>          Encrypt a mnemonic into the vault
  vault show --name <n>           Decrypt and print a vault entry
  vault list                      List vault entries
  vault delete --name <n>         Remove a vault entry
`)
}

// codecFor builds a codec for the named language.
func codecFor(language string) *mnemonic.Codec {
	lang, ok := languageByName(language)
	if !ok {
		fatal("unknown language: %s (use 'mnemonic-cli languages')", language)
	}
	c, err := mnemonic.New(lang)
	if err != nil {
		fatal("load wordlist: %v", err)
	}
	log.Words.Debug().Str("language", language).Msg("wordlist loaded")
	return c
}

func languageByName(name string) (words.Language, bool) {
	for _, lang := range words.Languages() {
		if lang.String() == name {
			return lang, true
		}
	}
	return words.English, false
}

// ── generate ────────────────────────────────────────────────────────────

func cmdGenerate(args []string, language string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	strength := fs.Int("strength", 256, "Entropy strength in bits (128, 160, 192, 224 or 256)")
	fs.Parse(args)

	sentence, err := codecFor(language).Generate(*strength)
	if err != nil {
		fatal("generate: %v", err)
	}
	fmt.Println(sentence)
}

// ── check ───────────────────────────────────────────────────────────────

func cmdCheck(args []string, language string) {
	if len(args) < 1 {
		fatal(`Usage: mnemonic-cli check "<mnemonic>"`)
	}

	if codecFor(language).Check(args[0]) {
		fmt.Println("valid")
		return
	}
	fmt.Println("invalid")
	os.Exit(1)
}

// ── entropy / mnemonic ──────────────────────────────────────────────────

func cmdEntropy(args []string, language string) {
	if len(args) < 1 {
		fatal(`Usage: mnemonic-cli entropy "<mnemonic>"`)
	}

	ws := strings.Fields(mnemonic.Normalize(args[0]))
	entropy, err := codecFor(language).ToEntropy(ws)
	if err != nil {
		fatal("decode: %v", err)
	}
	fmt.Println(hex.EncodeToString(entropy))
}

func cmdMnemonic(args []string, language string) {
	if len(args) < 1 {
		fatal("Usage: mnemonic-cli mnemonic <entropy_hex>")
	}

	entropy, err := hex.DecodeString(args[0])
	if err != nil {
		fatal("invalid hex: %v", err)
	}
	sentence, err := codecFor(language).ToMnemonic(entropy)
	if err != nil {
		fatal("encode: %v", err)
	}
	fmt.Println(sentence)
}

// ── seed / master-key ───────────────────────────────────────────────────

func cmdSeed(args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	promptPass := fs.Bool("passphrase-prompt", false, "Prompt for an optional passphrase")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fatal(`Usage: mnemonic-cli seed [--passphrase-prompt] "<mnemonic>"`)
	}

	passphrase := ""
	if *promptPass {
		p, err := readPassword("Enter passphrase: ")
		if err != nil {
			fatal("read passphrase: %v", err)
		}
		passphrase = string(p)
	}

	fmt.Println(hex.EncodeToString(mnemonic.ToSeed(fs.Arg(0), passphrase)))
}

func cmdMasterKey(args []string) {
	fs := flag.NewFlagSet("master-key", flag.ExitOnError)
	testnet := fs.Bool("testnet", false, "Serialize with the testnet version prefix")
	promptPass := fs.Bool("passphrase-prompt", false, "Prompt for an optional passphrase")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fatal(`Usage: mnemonic-cli master-key [--testnet] [--passphrase-prompt] "<mnemonic>"`)
	}

	passphrase := ""
	if *promptPass {
		p, err := readPassword("Enter passphrase: ")
		if err != nil {
			fatal("read passphrase: %v", err)
		}
		passphrase = string(p)
	}

	seed := mnemonic.ToSeed(fs.Arg(0), passphrase)
	key, err := hdkey.MasterKey(seed, *testnet)
	if err != nil {
		fatal("derive master key: %v", err)
	}
	fmt.Println(key)
}

// ── detect / expand / languages ─────────────────────────────────────────

func cmdDetect(args []string) {
	if len(args) < 1 {
		fatal(`Usage: mnemonic-cli detect "<mnemonic>"`)
	}

	lang, err := mnemonic.Detect(args[0])
	if err != nil {
		fatal("detect: %v", err)
	}
	fmt.Println(lang)
}

func cmdExpand(args []string, language string) {
	if len(args) < 1 {
		fatal(`Usage: mnemonic-cli expand "<word prefixes>"`)
	}

	fmt.Println(codecFor(language).Expand(args[0]))
}

func cmdLanguages() {
	for _, lang := range words.Languages() {
		available := ""
		if _, err := words.ForLanguage(lang); err != nil {
			available = " (wordlist not installed)"
		}
		fmt.Printf("%s%s\n", lang, available)
	}
}

// ── vault ───────────────────────────────────────────────────────────────

func cmdVault(args []string, vaultDir, language string) {
	if len(args) < 1 {
		fatal("Usage: mnemonic-cli vault <store|show|list|delete> [flags]")
	}

	switch args[0] {
	case "store":
		cmdVaultStore(args[1:], vaultDir, language)
	case "show":
		cmdVaultShow(args[1:], vaultDir)
	case "list":
		cmdVaultList(vaultDir)
	case "delete":
		cmdVaultDelete(args[1:], vaultDir)
	default:
		fatal("Unknown vault command: %s\nUsage: mnemonic-cli vault <store|show|list|delete> [flags]", args[0])
	}
}

func cmdVaultStore(args []string, vaultDir, language string) {
	fs := flag.NewFlagSet("vault store", flag.ExitOnError)
	name := fs.String("name", "", "Entry name")
	sentence := fs.String("mnemonic", "", "Mnemonic to store (omit to generate a new one)")
	strength := fs.Int("strength", 256, "Strength for a generated mnemonic")
	fs.Parse(args)

	if *name == "" {
		fatal(`Usage: mnemonic-cli vault store --name <n> [--mnemonic "..."]`)
	}

	c := codecFor(language)
	stored := *sentence
	if stored == "" {
		generated, err := c.Generate(*strength)
		if err != nil {
			fatal("generate: %v", err)
		}
		stored = generated
		fmt.Println("Mnemonic (write this down!):")
		fmt.Printf("  %s\n\n", stored)
	} else if !c.Check(stored) {
		fatal("invalid mnemonic")
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	if string(password) != string(confirm) {
		fatal("passwords do not match")
	}

	v, err := vault.Open(vaultDir)
	if err != nil {
		fatal("open vault: %v", err)
	}
	if err := v.Store(*name, stored, language, password, vault.DefaultParams()); err != nil {
		fatal("store: %v", err)
	}
	fmt.Printf("Stored: %s\n", *name)
}

func cmdVaultShow(args []string, vaultDir string) {
	fs := flag.NewFlagSet("vault show", flag.ExitOnError)
	name := fs.String("name", "", "Entry name")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: mnemonic-cli vault show --name <n>")
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}

	v, err := vault.Open(vaultDir)
	if err != nil {
		fatal("open vault: %v", err)
	}
	sentence, err := v.Load(*name, password)
	if err != nil {
		fatal("load: %v", err)
	}
	fmt.Println(sentence)
}

func cmdVaultList(vaultDir string) {
	v, err := vault.Open(vaultDir)
	if err != nil {
		fatal("open vault: %v", err)
	}
	entries, err := v.List()
	if err != nil {
		fatal("list: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}
	for _, e := range entries {
		fmt.Printf("%-20s %s  %d words  %s\n",
			e.Name, e.Language, e.WordCount, e.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
	}
}

func cmdVaultDelete(args []string, vaultDir string) {
	fs := flag.NewFlagSet("vault delete", flag.ExitOnError)
	name := fs.String("name", "", "Entry name")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: mnemonic-cli vault delete --name <n>")
	}

	v, err := vault.Open(vaultDir)
	if err != nil {
		fatal("open vault: %v", err)
	}
	if err := v.Delete(*name); err != nil {
		fatal("delete: %v", err)
	}
	fmt.Printf("Deleted: %s\n", *name)
}

// ── Prompt helpers ──────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
