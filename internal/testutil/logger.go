//go:build unit || e2e

package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger swallows output so test runs stay quiet.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
