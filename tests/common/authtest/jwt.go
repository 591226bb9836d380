//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, adminID uuid.UUID, role admin.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration, h.cfg.RefreshTokenDuration)
	token, err := service.GenerateAccessToken(adminID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose lifetime ended an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, adminID uuid.UUID, role admin.Role) string {
	t.Helper()
	past := func() time.Time { return time.Now().Add(-h.cfg.AccessTokenDuration - time.Hour) }
	service := jwt.NewServiceWithClock(h.cfg.Secret, h.cfg.AccessTokenDuration, h.cfg.RefreshTokenDuration, past)
	token, err := service.GenerateAccessToken(adminID, role)
	require.NoError(t, err)
	return token
}
