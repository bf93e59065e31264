package words

// Language identifies one of the twelve reference BIP-39 wordlists.
// The zero value is English.
type Language int

const (
	English Language = iota
	ChineseSimplified
	ChineseTraditional
	Czech
	French
	Italian
	Japanese
	Korean
	Portuguese
	Russian
	Spanish
	Turkish
)

var languageCodes = [...]string{
	English:            "english",
	ChineseSimplified:  "chinese_simplified",
	ChineseTraditional: "chinese_traditional",
	Czech:              "czech",
	French:             "french",
	Italian:            "italian",
	Japanese:           "japanese",
	Korean:             "korean",
	Portuguese:         "portuguese",
	Russian:            "russian",
	Spanish:            "spanish",
	Turkish:            "turkish",
}

// String returns the language's resource code, which doubles as the
// base name of its wordlist file ("english", "chinese_simplified", ...).
func (l Language) String() string {
	if l < 0 || int(l) >= len(languageCodes) {
		return "unknown"
	}
	return languageCodes[l]
}

// Languages returns every defined language tag in declaration order.
func Languages() []Language {
	all := make([]Language, len(languageCodes))
	for i := range all {
		all[i] = Language(i)
	}
	return all
}
