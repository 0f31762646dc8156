package queries

import "strings"

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ListParams is the offset pagination and free-text search shared by admin lists.
type ListParams struct {
	Search string
	Limit  int
	Offset int
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func (p ListParams) Normalize() ListParams {
	p.Search = strings.TrimSpace(p.Search)
	p.Limit = ValidateLimit(p.Limit)
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
