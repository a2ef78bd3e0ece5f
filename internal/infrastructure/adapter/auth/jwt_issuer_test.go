package auth

import (
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	timeadapter "github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/time"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

func newIssuer(t *testing.T, ttl time.Duration) (*JWTIssuer, *timeadapter.FixedTimeProvider) {
	t.Helper()
	tp := timeadapter.NewFixedTimeProvider(issuedAt)
	issuer, err := NewJWTIssuer("testing_key", ttl, tp)
	require.NoError(t, err)
	return issuer, tp
}

func TestJWTIssuer_IssueAndVerify(t *testing.T) {
	issuer, _ := newIssuer(t, 0)

	token, err := issuer.Issue(coreport.TokenClaims{Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.Name)

	raw := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, raw)
	require.NoError(t, err)
	assert.Equal(t, float64(issuedAt.Unix()), raw["iat"])
	assert.NotContains(t, raw, "exp")
}

func TestJWTIssuer_RejectsForeignTokens(t *testing.T) {
	issuer, _ := newIssuer(t, 0)

	other, err := NewJWTIssuer("another_key", 0, timeadapter.NewFixedTimeProvider(issuedAt))
	require.NoError(t, err)
	foreign, err := other.Issue(coreport.TokenClaims{Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = issuer.Verify(foreign)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"email": "x@example.com"}).
		SignedString([]byte("testing_key"))
	require.NoError(t, err)
	_, err = issuer.Verify(hs512)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestJWTIssuer_Expiry(t *testing.T) {
	issuer, tp := newIssuer(t, time.Hour)

	token, err := issuer.Issue(coreport.TokenClaims{Email: "jane@example.com"})
	require.NoError(t, err)

	tp.Advance(30 * time.Minute)
	_, err = issuer.Verify(token)
	require.NoError(t, err)

	tp.Advance(time.Hour)
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestNewJWTIssuer_EmptySecret(t *testing.T) {
	_, err := NewJWTIssuer("", 0, timeadapter.NewRealTimeProvider())
	assert.ErrorIs(t, err, ErrEmptySecret)
}
