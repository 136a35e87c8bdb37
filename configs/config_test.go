package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainPINComparer(t *testing.T) {
	cfg := &Config{AdminPIN: "hanipupud2026", AdminPINScheme: "plain"}

	cmp := cfg.PINComparer()
	assert.IsType(t, PlainPINComparer{}, cmp)
	assert.True(t, cmp.Compare("hanipupud2026"))
	assert.False(t, cmp.Compare("hanipupud2025"))
	assert.False(t, cmp.Compare(""))
}

func TestBcryptPINComparer(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hanipupud2026"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := &Config{AdminPIN: string(hash), AdminPINScheme: "bcrypt"}

	cmp := cfg.PINComparer()
	assert.IsType(t, BcryptPINComparer{}, cmp)
	assert.True(t, cmp.Compare("hanipupud2026"))
	assert.False(t, cmp.Compare("pin-salah"))
}

func TestUnknownPINSchemeFallsBackToPlain(t *testing.T) {
	cfg := &Config{AdminPIN: "1234", AdminPINScheme: "md5"}

	cmp := cfg.PINComparer()
	assert.IsType(t, PlainPINComparer{}, cmp)
	assert.True(t, cmp.Compare("1234"))
}
