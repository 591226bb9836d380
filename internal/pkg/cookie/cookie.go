// Package cookie carries session tokens in HttpOnly cookies.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"studio-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "sb_access"
	RefreshTokenCookieName = "sb_refresh"

	// the refresh token is only ever sent to the auth endpoints
	refreshPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	write(c, newCookie(cfg, AccessTokenCookieName, accessToken, "/", accessExpiry))
	write(c, newCookie(cfg, RefreshTokenCookieName, refreshToken, refreshPath, refreshExpiry))
}

// ClearTokenCookies expires both cookies on the paths they were set with.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, newCookie(cfg, AccessTokenCookieName, "", "/", -1))
	write(c, newCookie(cfg, RefreshTokenCookieName, "", refreshPath, -1))
}

func GetAccessToken(c *gin.Context) string  { return read(c, AccessTokenCookieName) }
func GetRefreshToken(c *gin.Context) string { return read(c, RefreshTokenCookieName) }

func read(c *gin.Context, name string) string {
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return v
}

// A negative ttl deletes the cookie.
func newCookie(cfg config.CookieConfig, name, value, path string, ttl time.Duration) *http.Cookie {
	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   cfg.Domain,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	}
	if ttl < 0 {
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
	} else {
		ck.MaxAge = int(ttl.Seconds())
	}
	// browsers drop SameSite=None cookies that are not Secure
	if ck.SameSite == http.SameSiteNoneMode {
		ck.Secure = true
	}
	return ck
}

func write(c *gin.Context, ck *http.Cookie) {
	http.SetCookie(c.Writer, ck)
}

func sameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
