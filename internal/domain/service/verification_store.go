package service

import (
	"context"
	"time"
)

// VerificationStore defines the interface for short-lived email verification
// codes. Codes expire on their own; the store must be shared across instances,
// so implementations are expected to live outside the process.
type VerificationStore interface {
	// SaveCode stores the verification code for an email address with the given TTL,
	// replacing any previous code for that address.
	SaveCode(ctx context.Context, email, code string, ttl time.Duration) error

	// ConsumeCode atomically checks the stored code for an email address and
	// removes it on a match. It reports whether the code was valid.
	ConsumeCode(ctx context.Context, email, code string) (bool, error)
}
