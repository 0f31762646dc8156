package sitesetting

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
)

var ErrInvalidKey = errors.New("setting key must be 1-100 characters of [a-z0-9_.]")

var keyRegex = regexp.MustCompile(`^[a-z0-9_.]{1,100}$`)

// Setting is one piece of editable site copy, scoped by language.
type Setting struct {
	id          int64
	key         string
	value       string
	language    locale.Language
	description string
	updatedAt   time.Time
}

func NewSetting(key, value string, language locale.Language, description string, now time.Time) (*Setting, error) {
	key = strings.TrimSpace(key)
	if !keyRegex.MatchString(key) {
		return nil, ErrInvalidKey
	}
	if !language.IsValid() {
		language = locale.Default
	}
	return &Setting{
		key:         key,
		value:       value,
		language:    language,
		description: strings.TrimSpace(description),
		updatedAt:   now,
	}, nil
}

func ReconstructSetting(id int64, key, value string, language locale.Language, description string, updatedAt time.Time) *Setting {
	return &Setting{id: id, key: key, value: value, language: language, description: description, updatedAt: updatedAt}
}

func (s *Setting) ID() int64                 { return s.id }
func (s *Setting) Key() string               { return s.key }
func (s *Setting) Value() string             { return s.value }
func (s *Setting) Language() locale.Language { return s.language }
func (s *Setting) Description() string       { return s.description }
func (s *Setting) UpdatedAt() time.Time      { return s.updatedAt }

func (s *Setting) Update(key, value string, language locale.Language, description string, now time.Time) error {
	next, err := NewSetting(key, value, language, description, now)
	if err != nil {
		return err
	}
	s.key = next.key
	s.value = next.value
	s.language = next.language
	s.description = next.description
	s.updatedAt = now
	return nil
}

// Merge overlays localized values on top of the default-language values so that
// keys missing in the requested language still resolve.
func Merge(defaults, localized map[string]string) map[string]string {
	out := make(map[string]string, len(defaults)+len(localized))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range localized {
		out[k] = v
	}
	return out
}
