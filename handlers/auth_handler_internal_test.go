package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Samirun-Shuvo/inventory-ewmgl/utils"
)

// The unknown-email login path burns a bcrypt comparison against
// dummyPasswordHash. That only costs anything if the constant is a
// well-formed digest; a malformed one fails at parse time and skips the
// key derivation entirely.
func TestDummyPasswordHashIsWellFormedBcrypt(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyPasswordHash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)

	assert.False(t, utils.CheckPasswordHash("not-the-preimage", dummyPasswordHash))
}
