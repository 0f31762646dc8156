package middleware

import "github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"

var (
	errUnauthenticated = errs.New("unauthenticated")
	errForbidden       = errs.New("forbidden")
	errRateLimited     = errs.New("rate limit exceeded")
)
