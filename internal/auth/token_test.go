package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testSecret, "HS256", 30*time.Minute)
	require.NoError(t, err)
	return tm
}

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestNewTokenManagerValidation(t *testing.T) {
	_, err := NewTokenManager("", "HS256", time.Minute)
	assert.Error(t, err)

	_, err = NewTokenManager(testSecret, "HS256", 0)
	assert.Error(t, err)

	_, err = NewTokenManager(testSecret, "RS256", time.Minute)
	assert.Error(t, err)

	_, err = NewTokenManager(testSecret, "none", time.Minute)
	assert.Error(t, err)

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		tm, err := NewTokenManager(testSecret, alg, time.Minute)
		require.NoError(t, err, alg)
		assert.Equal(t, time.Minute, tm.TTL())
	}
}

func TestIssueAndParseRoundTrip(t *testing.T) {
	tm := newTestTokenManager(t)

	before := time.Now()
	token, expiresAt, err := tm.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.WithinDuration(t, before.Add(30*time.Minute), expiresAt, 2*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestIssueIsDeterministicForFixedClock(t *testing.T) {
	tm := newTestTokenManager(t)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tm.now = func() time.Time { return fixed }

	first, _, err := tm.Issue(7)
	require.NoError(t, err)
	second, _, err := tm.Issue(7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseAbsentToken(t *testing.T) {
	tm := newTestTokenManager(t)

	for _, token := range []string{"", "   "} {
		_, err := tm.Parse(token)
		assert.ErrorIs(t, err, ErrTokenAbsent)
	}
}

func TestParseMalformedToken(t *testing.T) {
	tm := newTestTokenManager(t)
	valid, _, err := tm.Issue(1)
	require.NoError(t, err)
	forged, _, err := tm.Issue(2)
	require.NoError(t, err)
	validParts := strings.Split(valid, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := strings.Join([]string{forgedParts[0], forgedParts[1], validParts[2]}, ".")

	other, err := NewTokenManager("another-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	foreign, _, err := other.Issue(1)
	require.NoError(t, err)

	otherAlg, err := NewTokenManager(testSecret, "HS512", 30*time.Minute)
	require.NoError(t, err)
	wrongAlg, _, err := otherAlg.Issue(1)
	require.NoError(t, err)

	unsigned := signClaims(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	cases := map[string]string{
		"garbage":          "not-a-jwt",
		"different secret": foreign,
		"different alg":    wrongAlg,
		"alg none":         unsigned,
		"tampered":         tampered,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tm.Parse(token)
			assert.ErrorIs(t, err, ErrMalformedToken)
			kind, ok := KindOf(err)
			assert.True(t, ok)
			assert.Equal(t, KindMalformedToken, kind)
		})
	}
}

func TestParseExpiredToken(t *testing.T) {
	tm := newTestTokenManager(t)
	issuedAt := time.Now().Add(-time.Hour)
	tm.now = func() time.Time { return issuedAt }

	token, _, err := tm.Issue(5)
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.False(t, errors.Is(err, ErrMalformedToken))
}

func TestParseExpiryBoundaryIsExclusive(t *testing.T) {
	tm := newTestTokenManager(t)
	issued := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return issued }

	token, expiresAt, err := tm.Issue(5)
	require.NoError(t, err)

	tm.now = func() time.Time { return expiresAt.Add(-time.Second) }
	_, err = tm.Parse(token)
	assert.NoError(t, err)

	tm.now = func() time.Time { return expiresAt }
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseMissingExpiry(t *testing.T) {
	tm := newTestTokenManager(t)
	token := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "1"})

	_, err := tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseMissingSubject(t *testing.T) {
	tm := newTestTokenManager(t)
	token := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := tm.Parse(token)
	assert.ErrorIs(t, err, ErrSubjectMissing)
}

func TestParseChecksExpiryBeforeSubject(t *testing.T) {
	tm := newTestTokenManager(t)
	token := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	_, err := tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
