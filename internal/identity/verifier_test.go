package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKid = "test-key"

func newJWKSServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()

	keySet := map[string]interface{}{
		"keys": []map[string]string{{
			"kty": "RSA",
			"alg": "RS256",
			"use": "sig",
			"kid": testKid,
			"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
		}},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(keySet)
	}))
	t.Cleanup(server.Close)
	return server
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestNewTokenVerifierUnreachableJWKS(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := NewTokenVerifier(server.URL, "", "")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	server := newJWKSServer(t, key)

	verifier, err := NewTokenVerifier(server.URL, "", "")
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, key, jwt.MapClaims{
			"email": "bob@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		id, err := verifier.Verify(ctx, "Bearer "+token)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", id.Email)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "Basic abc123")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "Bearer not.a.jwt")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, key, jwt.MapClaims{
			"email": "bob@example.com",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})

		_, err := verifier.Verify(ctx, "Bearer "+token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("missing email claim", func(t *testing.T) {
		token := signToken(t, key, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := verifier.Verify(ctx, "Bearer "+token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		token := signToken(t, otherKey, jwt.MapClaims{
			"email": "mallory@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		_, err = verifier.Verify(ctx, "Bearer "+token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestVerifyIssuerAndAudience(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	server := newJWKSServer(t, key)

	verifier, err := NewTokenVerifier(server.URL, "https://issuer.example.com", "rentwheels")
	require.NoError(t, err)
	ctx := context.Background()

	claims := jwt.MapClaims{
		"email": "bob@example.com",
		"iss":   "https://issuer.example.com",
		"aud":   "rentwheels",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	_, err = verifier.Verify(ctx, "Bearer "+signToken(t, key, claims))
	assert.NoError(t, err)

	claims["iss"] = "https://evil.example.com"
	_, err = verifier.Verify(ctx, "Bearer "+signToken(t, key, claims))
	assert.ErrorIs(t, err, ErrUnauthorized)

	claims["iss"] = "https://issuer.example.com"
	claims["aud"] = "other-app"
	_, err = verifier.Verify(ctx, "Bearer "+signToken(t, key, claims))
	assert.ErrorIs(t, err, ErrUnauthorized)
}
