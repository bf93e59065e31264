// check_wordlist.go validates a candidate BIP-39 wordlist file: exactly
// 2048 unique, NFKD-stable words, and reports whether 4-character
// prefixes are unambiguous.
// Usage: go run scripts/check_wordlist.go <wordlist.txt>
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: check_wordlist <wordlist.txt>")
		os.Exit(1)
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		list = append(list, w)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	problems := 0
	if len(list) != 2048 {
		fmt.Printf("FAIL: %d words, want 2048\n", len(list))
		problems++
	}

	seen := make(map[string]int)
	for i, w := range list {
		if prev, dup := seen[w]; dup {
			fmt.Printf("FAIL: duplicate word %q at lines %d and %d\n", w, prev+1, i+1)
			problems++
		}
		seen[w] = i
		if norm.NFKD.String(w) != w {
			fmt.Printf("WARN: word %q at line %d is not NFKD-stable\n", w, i+1)
		}
	}

	// The reference English list guarantees unique 4-char prefixes;
	// other lists may not, so ambiguity is informative only.
	prefixes := make(map[string]int)
	ambiguous := 0
	for _, w := range list {
		p := w
		if len(p) > 4 {
			p = p[:4]
		}
		prefixes[p]++
	}
	for _, n := range prefixes {
		if n > 1 {
			ambiguous++
		}
	}
	fmt.Printf("words=%d unique_prefixes=%d ambiguous_prefixes=%d\n", len(list), len(prefixes), ambiguous)

	if problems > 0 {
		os.Exit(1)
	}
	fmt.Println("OK")
}
