//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "jwt-package-test-secret-0123456789abcdef"

func TestGeneratePair(t *testing.T) {
	svc := jwt.NewService(secret, 15*time.Minute, 24*time.Hour)
	adminID := uuid.New()

	pair, err := svc.GeneratePair(adminID, admin.RoleStaff)
	require.NoError(t, err)

	access, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, adminID, access.AdminID)
	assert.Equal(t, jwt.TokenTypeAccess, access.TokenType)
	assert.Equal(t, jwt.Issuer, access.Issuer)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), access.ExpiresAt.Time, 5*time.Second)

	refresh, err := svc.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeRefresh, refresh.TokenType)
	assert.NotEqual(t, access.ID, refresh.ID)
}

func TestValidateToken(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc := jwt.NewServiceWithClock(secret, time.Hour, 24*time.Hour, clock)
	adminID := uuid.New()

	token, err := svc.GenerateAccessToken(adminID, admin.RoleAdmin)
	require.NoError(t, err)

	t.Run("within leeway after expiry", func(t *testing.T) {
		later := jwt.NewServiceWithClock(secret, time.Hour, 24*time.Hour, func() time.Time { return now.Add(time.Hour + 2*time.Second) })
		_, err := later.ValidateToken(token)
		assert.NoError(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := jwt.NewServiceWithClock(secret, time.Hour, 24*time.Hour, func() time.Time { return now.Add(2 * time.Hour) })
		_, err := later.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewServiceWithClock("another-secret-entirely-0123456789abcd", time.Hour, time.Hour, clock)
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := jwt.Claims{
			AdminID:   adminID,
			Role:      "admin",
			TokenType: jwt.TokenTypeAccess,
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				IssuedAt:  gojwt.NewNumericDate(now),
				ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		foreign, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(foreign)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		claims := jwt.Claims{
			AdminID: adminID,
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				IssuedAt:  gojwt.NewNumericDate(now),
				ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(none)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
