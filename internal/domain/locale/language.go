package locale

import "strings"

// Language tags the locale of marketing content and service listings.
type Language string

const (
	English   Language = "ENG"
	Mongolian Language = "MON"

	Default = English
)

func (l Language) String() string {
	return string(l)
}

func (l Language) IsValid() bool {
	switch l {
	case English, Mongolian:
		return true
	default:
		return false
	}
}

// Parse never fails: unknown or empty tags fall back to the default language.
func Parse(s string) Language {
	l := Language(strings.ToUpper(strings.TrimSpace(s)))
	if !l.IsValid() {
		return Default
	}
	return l
}

func All() []Language {
	return []Language{English, Mongolian}
}
