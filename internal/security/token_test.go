package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entnt-rental-backend/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	mgr := NewTokenManager("test-secret", 60)

	token, err := mgr.GenerateAccessToken(domain.User{ID: "1", Email: "admin@entnt.in", Role: domain.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "admin@entnt.in", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "1", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", 60).GenerateAccessToken(domain.User{ID: "1", Role: domain.RoleStaff})
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 60).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewTokenManager("secret", 60).ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	mgr := &tokenManager{secret: []byte("secret"), expiry: -time.Minute}
	token, err := mgr.GenerateAccessToken(domain.User{ID: "1", Role: domain.RoleCustomer})
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
