package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posterati/pkg/domain"
)

const testSecret = "unit-test-signing-secret"

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	svc := NewService(testSecret, time.Hour)
	userID := domain.NewUserID()

	tokenString, err := svc.Issue(userID, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(tokenString, ".")), "expected compact JWS form")

	identity, err := svc.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "ada@example.com", identity.Email)
}

// TestExpiryBoundary pins the 1-hour lifetime behavior: valid at t+59m,
// expired at t+61m.
func TestExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	svc := NewService(testSecret, time.Hour, WithClock(func() time.Time { return now }))

	tokenString, err := svc.Issue(domain.NewUserID(), "ada@example.com")
	require.NoError(t, err)

	now = issuedAt.Add(59 * time.Minute)
	_, err = svc.Verify(tokenString)
	assert.NoError(t, err, "token should verify at t+59m")

	now = issuedAt.Add(61 * time.Minute)
	_, err = svc.Verify(tokenString)
	assert.ErrorIs(t, err, ErrExpired, "token should be expired at t+61m")
}

func TestVerify_FailureTaxonomy(t *testing.T) {
	svc := NewService(testSecret, time.Hour)
	userID := domain.NewUserID()

	t.Run("garbage is malformed", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("empty string is malformed", func(t *testing.T) {
		_, err := svc.Verify("")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("wrong secret is invalid signature", func(t *testing.T) {
		other := NewService("a-completely-different-secret", time.Hour)
		tokenString, err := other.Issue(userID, "ada@example.com")
		require.NoError(t, err)

		_, err = svc.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		tokenString, err := svc.Issue(userID, "ada@example.com")
		require.NoError(t, err)

		parts := strings.Split(tokenString, ".")
		parts[1] = strings.Repeat("A", len(parts[1]))
		_, err = svc.Verify(strings.Join(parts, "."))
		assert.Error(t, err)
	})

	t.Run("unsigned alg none token is rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			UserID: userID.String(),
			Email:  "ada@example.com",
		})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("token without user id is malformed", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Email: "ada@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		tokenString, err := raw.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.Verify(tokenString)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}
