package identity

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalVerifierRoundTrip(t *testing.T) {
	secret := []byte("dev-secret")
	verifier := NewLocalVerifier(secret)

	raw, err := MintLocalToken(secret, Claims{
		Email:   "alice@x.com",
		Subject: "sub-1",
		Name:    "Alice",
		Picture: "https://p/a.png",
	})
	require.NoError(t, err)

	claims, err := verifier.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, "sub-1", claims.Subject)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "https://p/a.png", claims.Picture)
}

func TestLocalVerifierRejectsWrongSecret(t *testing.T) {
	raw, err := MintLocalToken([]byte("secret-a"), Claims{Email: "alice@x.com"})
	require.NoError(t, err)

	_, err = NewLocalVerifier([]byte("secret-b")).Verify(context.Background(), raw)
	assert.Error(t, err)
}

func TestLocalVerifierRequiresEmailClaim(t *testing.T) {
	secret := []byte("dev-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "sub-1"})
	raw, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = NewLocalVerifier(secret).Verify(context.Background(), raw)
	assert.Error(t, err)
}

func TestLocalVerifierRejectsGarbage(t *testing.T) {
	_, err := NewLocalVerifier([]byte("dev-secret")).Verify(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}
