package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southlake-academy/admin-api/internal/models"
)

func TestJWTGenerateValidate(t *testing.T) {
	svc := NewJWTService("test-secret", 24)
	userID := uuid.New()

	token, err := svc.Generate(userID, "admin@example.com", string(models.RoleAdmin))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
}

func TestJWTValidateWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 24).Generate(uuid.New(), "a@b.com", string(models.RoleStaff))
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 24).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTValidateExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)
	token, err := svc.Generate(uuid.New(), "a@b.com", string(models.RoleStaff))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTValidateGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret", 24).Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
