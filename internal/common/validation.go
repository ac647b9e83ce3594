package common

import (
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// RequireID rejects blank identifiers.
func RequireID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Validation("%s is required", field)
	}
	return nil
}

// RequireText trims s and rejects it when nothing is left.
func RequireText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", Validation("%s must not be empty", field)
	}
	return s, nil
}

// Page is a normalized 1-based page request.
type Page struct {
	Page  int
	Limit int
}

func NewPage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages returns the number of pages needed for total items.
func (p Page) Pages(total int64) int {
	if total == 0 || p.Limit <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

func (p Page) HasMore(total int64) bool {
	if p.Limit <= 0 {
		return false
	}
	return int64(p.Offset()+p.Limit) < total
}
