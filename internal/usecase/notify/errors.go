package notify

import (
	"context"
	"errors"
	"net"
	"net/textproto"

	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
)

var (
	ErrSenderDisabled  = errs.New("sender disabled: credentials not configured")
	ErrDeliveryAuth    = errs.New("delivery authentication failed")
	ErrDeliveryTimeout = errs.New("delivery timed out")
	ErrDeliveryFailed  = errs.New("delivery failed")
	ErrNoAdminAddress  = errs.New("admin email address not configured")
)

// ErrorClass labels a delivery failure in logs and metrics.
type ErrorClass string

const (
	ClassAuth    ErrorClass = "auth"
	ClassTimeout ErrorClass = "timeout"
	ClassOther   ErrorClass = "other"
)

func Classify(err error) ErrorClass {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535:
			return ClassAuth
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassTimeout
	}
	return ClassOther
}

func markClass(err error, class ErrorClass) error {
	switch class {
	case ClassAuth:
		return errs.Mark(err, ErrDeliveryAuth)
	case ClassTimeout:
		return errs.Mark(err, ErrDeliveryTimeout)
	default:
		return errs.Mark(err, ErrDeliveryFailed)
	}
}
