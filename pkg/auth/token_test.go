package auth_test

import (
	"testing"
	"time"

	"go-jobboard-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc, err := auth.NewTokenService("test-secret", 1)
	assert.NoError(t, err)

	t.Run("Should carry role claim for admin tokens", func(t *testing.T) {
		token, err := svc.Issue("admin-1", auth.RoleAdmin)
		assert.NoError(t, err)

		claims, err := svc.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "admin-1", claims.SubjectID)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("Should omit role claim when role is empty", func(t *testing.T) {
		token, err := svc.Issue("recruiter-1", "")
		assert.NoError(t, err)

		claims, err := svc.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "recruiter-1", claims.SubjectID)
		assert.Empty(t, claims.Role)
	})
}

func TestTokenServiceConstruction(t *testing.T) {
	t.Run("Should reject an empty secret", func(t *testing.T) {
		_, err := auth.NewTokenService("", 1)
		assert.Error(t, err)
	})

	t.Run("Should default expiry when not positive", func(t *testing.T) {
		svc, err := auth.NewTokenService("test-secret", 0)
		assert.NoError(t, err)

		token, err := svc.Issue("u1", "")
		assert.NoError(t, err)
		_, err = svc.Verify(token)
		assert.NoError(t, err)
	})
}

func TestTokenVerifyFailures(t *testing.T) {
	svc, err := auth.NewTokenService("test-secret", 1)
	assert.NoError(t, err)

	t.Run("Should reject a malformed token", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		now := time.Now()
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"id":  "u1",
			"iat": now.Add(-2 * time.Hour).Unix(),
			"exp": now.Add(-time.Hour).Unix(),
		})
		signed, err := expired.SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = svc.Verify(signed)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Should reject a token signed with a different secret", func(t *testing.T) {
		other, err := auth.NewTokenService("other-secret", 1)
		assert.NoError(t, err)
		token, err := other.Issue("u1", "")
		assert.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Should reject a token with a non-HMAC algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"id":  "u1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = svc.Verify(signed)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Should reject a token without a subject", func(t *testing.T) {
		anon := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := anon.SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = svc.Verify(signed)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
