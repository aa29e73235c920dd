package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_SignVerifyRoundtrip(t *testing.T) {
	svc := NewJWT("test-secret")

	token, err := svc.Sign("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a").Sign("user-123")
	require.NoError(t, err)

	_, err = NewJWT("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestJWT_Tampered(t *testing.T) {
	svc := NewJWT("test-secret")
	token, err := svc.Sign("user-123")
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	assert.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	svc := NewJWT("test-secret")

	claims := jwt.MapClaims{
		"sub": "user-123",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWT_RejectsOtherSigningMethod(t *testing.T) {
	svc := NewJWT("test-secret")

	claims := jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWT_MissingSub(t *testing.T) {
	svc := NewJWT("test-secret")

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
