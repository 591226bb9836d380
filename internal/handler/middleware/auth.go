package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/cookie"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase"
	"studio-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminIDKey   = "admin_id"
	ctxAdminRoleKey = "admin_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.Authenticate(token)
		if err != nil {
			slog.Warn("rejected access token", "error", err.Error(), "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole admin.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetAdminRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("role check ran before RequireAuth"), "Internal server error", nil)
			return
		}
		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// OptionalAuth resolves the principal when a valid token is present and
// continues anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if principal, err := m.tokenValidator.Authenticate(token); err == nil {
				setPrincipal(c, principal)
			}
		}
		c.Next()
	}
}

func setPrincipal(c *gin.Context, p shared.Principal) {
	c.Set(ctxAdminIDKey, p.AdminID)
	c.Set(ctxAdminRoleKey, p.Role)
}

func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetAdminRole(c *gin.Context) (admin.Role, bool) {
	v, exists := c.Get(ctxAdminRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(admin.Role)
	return role, ok
}

// GetPrincipal returns the anonymous principal when the request carries no
// valid token.
func GetPrincipal(c *gin.Context) shared.Principal {
	id, ok := GetAdminID(c)
	if !ok {
		return shared.Anonymous()
	}
	role, _ := GetAdminRole(c)
	return shared.NewPrincipal(id, role)
}
