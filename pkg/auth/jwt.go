// Package auth provides token issuing/verification and password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/models"
)

// ErrInvalidToken is returned for every verification failure: structural
// corruption, signature mismatch and elapsed expiry all collapse into this
// one value so callers cannot distinguish them.
var ErrInvalidToken = errors.New("invalid token")

// TokenTTL is the fixed validity window of issued tokens.
const TokenTTL = time.Hour

// bcryptCost is the fixed work factor for stored password hashes.
const bcryptCost = 10

// Claims holds the typed JWT payload.
type Claims struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies identity tokens with an HMAC secret fixed
// at construction. Rotating the secret invalidates every outstanding token;
// no revocation list is kept.
type TokenService struct {
	secret []byte
}

// NewTokenService returns a TokenService bound to secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Generate creates a signed HS256 token valid for TokenTTL.
func (s *TokenService) Generate(id, name string, role models.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:   id,
		Name: name,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate parses t, checks signature and expiry, and returns the claims.
// Any failure yields ErrInvalidToken.
func (s *TokenService) Validate(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
// A mismatch is not an error, just false.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
