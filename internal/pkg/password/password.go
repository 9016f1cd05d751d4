package password

import (
	"crypto/subtle"
	"log/slog"
)

// Verifier checks a submitted password against the single site-wide secret.
type Verifier struct {
	secret string
	logger *slog.Logger
}

func NewVerifier(secret string, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{secret: secret, logger: logger}
}

func (v *Verifier) Configured() bool {
	return v.secret != ""
}

// Verify runs in time independent of the position of the first mismatch.
// An unset secret never verifies.
func (v *Verifier) Verify(input string) bool {
	if v.secret == "" {
		v.logger.Error("site password is not configured; rejecting login attempt")
		return false
	}
	return ConstantTimeEqual(input, v.secret)
}

// ConstantTimeEqual pads both values with NUL bytes to the longer length
// before comparing. The length check keeps "abc" and "abc\x00" distinct.
func ConstantTimeEqual(a, b string) bool {
	n := max(len(a), len(b))
	pa := make([]byte, n)
	pb := make([]byte, n)
	copy(pa, a)
	copy(pb, b)

	same := subtle.ConstantTimeCompare(pa, pb)
	sameLen := subtle.ConstantTimeEq(int32(len(a)), int32(len(b)))
	return same&sameLen == 1
}
