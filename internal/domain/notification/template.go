package notification

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	MaxTemplateNameLength = 100
	MaxSubjectLength      = 200
)

var (
	ErrInvalidTemplateName = errors.New("template name must be 1-100 characters of [a-z0-9_]")
	ErrInvalidSubject      = errors.New("template subject is required")
	ErrEmptyBody           = errors.New("template body is required")
)

var (
	templateNameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)
	tokenRegex        = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)
)

// Tokens maps placeholder names (without braces) to replacement text.
type Tokens map[string]string

// Template is a named subject/body pair with {token} placeholders.
type Template struct {
	id          int64
	name        string
	subject     string
	body        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTemplate(name, subject, body, description string, now time.Time) (*Template, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxTemplateNameLength || !templateNameRegex.MatchString(name) {
		return nil, ErrInvalidTemplateName
	}
	subject = strings.TrimSpace(subject)
	if subject == "" || len(subject) > MaxSubjectLength {
		return nil, ErrInvalidSubject
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}

	return &Template{
		name:        name,
		subject:     subject,
		body:        body,
		description: strings.TrimSpace(description),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTemplate(id int64, name, subject, body, description string, createdAt, updatedAt time.Time) *Template {
	return &Template{
		id:          id,
		name:        name,
		subject:     subject,
		body:        body,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Template) ID() int64            { return t.id }
func (t *Template) Name() string         { return t.name }
func (t *Template) Subject() string      { return t.subject }
func (t *Template) Body() string         { return t.body }
func (t *Template) Description() string  { return t.description }
func (t *Template) CreatedAt() time.Time { return t.createdAt }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }

func (t *Template) Update(name, subject, body, description string, now time.Time) error {
	next, err := NewTemplate(name, subject, body, description, now)
	if err != nil {
		return err
	}
	t.name = next.name
	t.subject = next.subject
	t.body = next.body
	t.description = next.description
	t.updatedAt = now
	return nil
}

// Render substitutes tokens into both subject and body.
func (t *Template) Render(tokens Tokens) (subject, body string) {
	return Substitute(t.subject, tokens), Substitute(t.body, tokens)
}

// Substitute replaces every {name} whose name is present in tokens.
// Unknown placeholders stay verbatim, and replacement text is never re-expanded.
func Substitute(text string, tokens Tokens) string {
	if len(tokens) == 0 || !strings.Contains(text, "{") {
		return text
	}
	return tokenRegex.ReplaceAllStringFunc(text, func(match string) string {
		if v, ok := tokens[match[1:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

// Placeholders lists the distinct token names referenced by text, in order of appearance.
func Placeholders(text string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range tokenRegex.FindAllStringSubmatch(text, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}
