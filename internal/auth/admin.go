package auth

import (
	"crypto/subtle"

	"github.com/204g1a3204/sleep-disorder-app/internal/errs"
)

// AdminGate authenticates admin portal access against configured
// credentials. The legacy system hardcoded both the admin pair and a
// master recovery key in source; here they come from configuration and
// the recovery path only exists when a key is configured.
type AdminGate struct {
	email       string
	password    string
	recoveryKey string
}

func NewAdminGate(email, password, recoveryKey string) *AdminGate {
	return &AdminGate{email: email, password: password, recoveryKey: recoveryKey}
}

// Verify grants access for the configured admin email/password pair, or
// for the master recovery key regardless of email when one is configured.
func (g *AdminGate) Verify(email, key string) error {
	if g.recoveryKey != "" && constantTimeEq(key, g.recoveryKey) {
		return nil
	}
	if g.password != "" && constantTimeEq(email, g.email) && constantTimeEq(key, g.password) {
		return nil
	}
	return errs.ErrUnauthorized
}

func constantTimeEq(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
