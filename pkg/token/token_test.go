package token_test

import (
	"testing"

	"github.com/scene-backend/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	provider := token.NewProvider("test-secret", 1)

	signed, err := provider.Generate(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := provider.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	provider := token.NewProvider("test-secret", 1)
	other := token.NewProvider("other-secret", 1)

	signed, err := provider.Generate(1, "alice")
	require.NoError(t, err)

	_, err = other.Validate(signed)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	provider := token.NewProvider("test-secret", 1)

	_, err := provider.Validate("not-a-token")
	assert.Error(t, err)
}
