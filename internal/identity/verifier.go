package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized covers every way a bearer credential can fail: missing
// header, malformed header, bad signature, expired token, missing claim.
// Callers get no finer detail than this.
var ErrUnauthorized = errors.New("unauthorized")

// Identity is the verified principal extracted from a bearer token.
type Identity struct {
	Email string
}

// Verifier checks an Authorization header and produces a verified identity.
type Verifier interface {
	Verify(ctx context.Context, authorization string) (Identity, error)
}

// TokenVerifier verifies RS256 bearer tokens against the issuer's published
// JWKS. Issuer and audience are enforced only when non-empty.
type TokenVerifier struct {
	keyfunc  jwt.Keyfunc
	issuer   string
	audience string
}

// NewTokenVerifier builds a verifier over the issuer's JWKS endpoint. keyfunc
// fetches the key set up front and keeps it refreshed in the background, so
// issuer-side key rotation is picked up without restarts; an unreachable
// endpoint fails construction.
func NewTokenVerifier(jwksURL, issuer, audience string) (*TokenVerifier, error) {
	keys, err := keyfunc.NewDefault([]string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("loading jwks from %s: %w", jwksURL, err)
	}

	return &TokenVerifier{
		keyfunc:  keys.Keyfunc,
		issuer:   issuer,
		audience: audience,
	}, nil
}

// Verify parses "Bearer <token>", validates the signature and registered
// claims, and returns the verified email claim.
func (v *TokenVerifier) Verify(ctx context.Context, authorization string) (Identity, error) {
	if authorization == "" {
		return Identity{}, fmt.Errorf("%w: missing authorization header", ErrUnauthorized)
	}

	tokenString := strings.TrimPrefix(authorization, "Bearer ")
	if tokenString == authorization || tokenString == "" {
		return Identity{}, fmt.Errorf("%w: invalid token format", ErrUnauthorized)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.Parse(tokenString, v.keyfunc, opts...)
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("%w: invalid token claims", ErrUnauthorized)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Identity{}, fmt.Errorf("%w: token has no email claim", ErrUnauthorized)
	}

	return Identity{Email: email}, nil
}
