package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/204g1a3204/sleep-disorder-app/internal/errs"
)

func TestAdminGate_StandardPair(t *testing.T) {
	g := NewAdminGate("admin@hospital.com", "admin-secret", "")

	assert.NoError(t, g.Verify("admin@hospital.com", "admin-secret"))
	assert.ErrorIs(t, g.Verify("admin@hospital.com", "wrong"), errs.ErrUnauthorized)
	assert.ErrorIs(t, g.Verify("other@hospital.com", "admin-secret"), errs.ErrUnauthorized)
}

func TestAdminGate_RecoveryKey(t *testing.T) {
	g := NewAdminGate("admin@hospital.com", "admin-secret", "recovery-key")

	// The recovery key grants access regardless of the email field.
	assert.NoError(t, g.Verify("MASTER-RECOVERY", "recovery-key"))
	assert.NoError(t, g.Verify("", "recovery-key"))

	// An empty configured key disables the recovery path entirely.
	g = NewAdminGate("admin@hospital.com", "admin-secret", "")
	assert.ErrorIs(t, g.Verify("MASTER-RECOVERY", ""), errs.ErrUnauthorized)
	assert.ErrorIs(t, g.Verify("MASTER-RECOVERY", "recovery-key"), errs.ErrUnauthorized)
}

func TestAdminGate_EmptyPasswordNeverMatches(t *testing.T) {
	g := NewAdminGate("admin@hospital.com", "", "")
	assert.ErrorIs(t, g.Verify("admin@hospital.com", ""), errs.ErrUnauthorized)
}
