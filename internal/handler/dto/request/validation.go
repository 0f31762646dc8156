package request

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
	"github.com/Zolbayar-hub/holisticweb/internal/domain/notification"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

var ErrInvalidTimestamp = errs.New("timestamps must be ISO 8601")

// timestampLayouts are tried in order; layouts without an offset are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// RegisterValidators adds the custom binding tags used by the request DTOs.
// countryCode must match the one the SMS sender normalizes with.
func RegisterValidators(v *validator.Validate, countryCode string) error {
	rules := map[string]validator.Func{
		"e164ish": phoneValidator(countryCode),
		"lang":    validateLanguage,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrap(err, "register validation "+tag)
		}
	}
	return nil
}

// phoneValidator accepts anything NormalizePhone can turn into E.164 for countryCode.
func phoneValidator(countryCode string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.TrimSpace(fl.Field().String())
		if value == "" {
			return true
		}
		_, err := notification.NormalizePhone(value, countryCode)
		return err == nil
	}
}

func validateLanguage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return locale.Language(strings.ToUpper(value)).IsValid()
}

func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.Mark(ErrInvalidTimestamp, errs.ErrDomainValidation)
}
