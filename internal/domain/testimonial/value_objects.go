package testimonial

import (
	"strings"
)

const (
	MaxTextLength       = 2000
	MaxClientNameLength = 100
	DefaultRating       = 5
)

type Rating struct {
	value int
}

// NewRating treats zero as "not given" and defaults it.
func NewRating(v int) (Rating, error) {
	if v == 0 {
		v = DefaultRating
	}
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Text struct {
	text string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text{}, ErrEmptyText
	}
	if len(t) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{text: t}, nil
}

func (t Text) String() string { return t.text }

func ReconstructRating(v int) Rating { return Rating{value: v} }

func ReconstructText(s string) Text { return Text{text: s} }
