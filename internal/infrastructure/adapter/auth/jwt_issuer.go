// Package auth signs and verifies customer tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret is returned when the issuer is built without a signing key
var ErrEmptySecret = errors.New("jwt secret must not be empty")

type customerClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// JWTIssuer implements core.TokenIssuer with HS256 tokens
type JWTIssuer struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates an issuer. A zero ttl issues tokens without expiry.
func NewJWTIssuer(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &JWTIssuer{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token carrying the email, name and issue time
func (i *JWTIssuer) Issue(claims coreport.TokenClaims) (string, error) {
	now := i.timeProvider.Now()
	c := customerClaims{
		Email: claims.Email,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if i.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the HS256 signature and expiry of token
func (i *JWTIssuer) Verify(token string) (*coreport.TokenClaims, error) {
	var c customerClaims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.timeProvider.Now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return &coreport.TokenClaims{Email: c.Email, Name: c.Name}, nil
}
