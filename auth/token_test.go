package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SudhitaReddy/Smart-Book/models"
)

func TestIssueAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: 42, Role: models.RoleSeller}
	token, err := IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := IssueToken(&models.User{ID: 7, Role: models.RoleUser})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokenHashing(t *testing.T) {
	raw, hashed := NewResetToken()

	assert.NotEmpty(t, raw)
	assert.NotEqual(t, raw, hashed)
	assert.Equal(t, hashed, HashResetToken(raw))
	assert.Len(t, hashed, 64)

	raw2, hashed2 := NewResetToken()
	assert.NotEqual(t, raw, raw2)
	assert.NotEqual(t, hashed, hashed2)
}
