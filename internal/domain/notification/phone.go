package notification

import (
	"errors"
	"strings"
)

const DefaultCountryCode = "1"

var ErrInvalidPhone = errors.New("invalid phone number")

// NormalizePhone converts a phone number to E.164 form.
// After stripping non-digits, a 10-digit number gets countryCode prepended and a number
// that already starts with countryCode (10 digits plus the code) gets a leading "+".
// Any other length is rejected.
func NormalizePhone(raw, countryCode string) (string, error) {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 10:
		return "+" + countryCode + digits, nil
	case len(digits) == 10+len(countryCode) && strings.HasPrefix(digits, countryCode):
		return "+" + digits, nil
	default:
		return "", ErrInvalidPhone
	}
}
