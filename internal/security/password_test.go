package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifySecret(t *testing.T) {
	hash, err := HashSecret("portal-secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifySecret(hash, "portal-secret"))
	assert.False(t, VerifySecret(hash, "wrong-secret"))
	assert.False(t, VerifySecret("not-a-hash", "portal-secret"))
}
