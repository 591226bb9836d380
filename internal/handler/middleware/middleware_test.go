//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/usecase"
	"studio-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
	jwt     *jwt.Service
	auth    *middleware.AuthMiddleware
	logBuf  *bytes.Buffer
	logger  *slog.Logger
	adminID uuid.UUID
}

func (s *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	s.jwt = jwt.NewService(cfg.JWT.Secret, time.Hour, 24*time.Hour)
	s.auth = middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt))
	s.logBuf = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.logBuf, nil))
	s.adminID = uuid.New()
}

func (s *MiddlewareTestSuite) token(role admin.Role) string {
	tok, err := s.jwt.GenerateAccessToken(s.adminID, role)
	s.Require().NoError(err)
	return tok
}

func (s *MiddlewareTestSuite) engine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/probe", append(mw, func(c *gin.Context) {
		p := middleware.GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": p.IsAuthenticated(), "admin": p.IsAdmin()})
	})...)
	return r
}

func (s *MiddlewareTestSuite) TestRequireRoleAtLeast() {
	adminOnly := s.engine(s.auth.RequireAuth(), s.auth.RequireRoleAtLeast(admin.RoleAdmin))

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantMsg    string
	}{
		{name: "admin passes", token: s.token(admin.RoleAdmin), wantStatus: http.StatusOK},
		{name: "staff is forbidden", token: s.token(admin.RoleStaff), wantStatus: http.StatusForbidden, wantMsg: "Insufficient permissions"},
		{name: "no token", wantStatus: http.StatusUnauthorized, wantMsg: "Access token required"},
		{name: "tampered token", token: s.token(admin.RoleAdmin) + "x", wantStatus: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := httptest.Do(s.T(), adminOnly, httptest.Request{Method: http.MethodGet, Path: "/probe", Token: tt.token})
			if tt.wantMsg == "" {
				httptest.AssertSuccessResponse(s.T(), rec, tt.wantStatus, nil)
				return
			}
			httptest.AssertErrorResponse(s.T(), rec, tt.wantStatus, tt.wantMsg)
		})
	}
}

func (s *MiddlewareTestSuite) TestOptionalAuth() {
	r := s.engine(s.auth.OptionalAuth())

	var body map[string]bool
	rec := httptest.Do(s.T(), r, httptest.Request{Method: http.MethodGet, Path: "/probe", Token: "garbage"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.False(body["authenticated"])

	rec = httptest.Do(s.T(), r, httptest.Request{Method: http.MethodGet, Path: "/probe", Token: s.token(admin.RoleStaff)})
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body["authenticated"])
	s.False(body["admin"])
}

func (s *MiddlewareTestSuite) TestErrorHandlerClassifiesPrivateErrors() {
	r := gin.New()
	r.Use(middleware.RequestLogger(s.logger), middleware.ErrorHandler())
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(errs.Sentinel("booking not found", errs.ErrNotFound))
	})
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errs.Sentinel("pool closed", errs.ErrStorage))
	})

	rec := httptest.Do(s.T(), r, httptest.Request{Method: http.MethodGet, Path: "/missing"})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")

	rec = httptest.Do(s.T(), r, httptest.Request{Method: http.MethodGet, Path: "/broken"})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
}

func (s *MiddlewareTestSuite) TestRecovery() {
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.Do(s.T(), r, httptest.Request{Method: http.MethodGet, Path: "/panic"})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
}

func (s *MiddlewareTestSuite) TestRequestLogger() {
	r := gin.New()
	r.Use(middleware.RequestLogger(s.logger), s.auth.OptionalAuth())
	r.GET("/bookings/:id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	s.Run("generates an id", func() {
		s.logBuf.Reset()
		rec := httptest.Do(s.T(), r, httptest.Request{Method: http.MethodGet, Path: "/bookings/42", Token: s.token(admin.RoleAdmin)})

		id := rec.Header().Get("X-Request-ID")
		s.Require().NoError(uuid.Validate(id))
		s.Equal(id, rec.Body.String())

		var entry map[string]any
		s.Require().NoError(json.Unmarshal(s.logBuf.Bytes(), &entry))
		s.Equal("/bookings/:id", entry["route"])
		s.Equal(s.adminID.String(), entry["admin_id"])
		s.EqualValues(http.StatusOK, entry["status"])
	})

	s.Run("keeps a client id", func() {
		req := nethttptest.NewRequest(http.MethodGet, "/bookings/7", nil)
		req.Header.Set("X-Request-ID", "client-trace-1")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)
		s.Equal("client-trace-1", rec.Header().Get("X-Request-ID"))
	})
}

func (s *MiddlewareTestSuite) TestCORS() {
	s.Run("listed origin", func() {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
			AllowOrigins:     []string{"https://studio.example"},
			AllowMethods:     []string{http.MethodGet},
			AllowCredentials: true,
		}))
		r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := nethttptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Origin", "https://studio.example")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)
		s.Equal("https://studio.example", rec.Header().Get("Access-Control-Allow-Origin"))
		s.Equal("true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	s.Run("no origins configured", func() {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(config.CORSConfig{}))
		r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := nethttptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Origin", "https://elsewhere.example")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)
		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
