//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"studio-booking/internal/handler/api"
	"studio-booking/internal/pkg/errs"
	"studio-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		ping       pingFunc
		wantStatus int
		wantDB     string
	}{
		{name: "database up", ping: func(context.Context) error { return nil }, wantStatus: http.StatusOK, wantDB: "up"},
		{name: "database down", ping: func(context.Context) error { return errs.New("connection refused") }, wantStatus: http.StatusServiceUnavailable, wantDB: "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := api.NewHealthHandler(tt.ping)
			r := gin.New()
			r.GET("/health", h.Live)
			r.GET("/health/ready", h.Ready)

			rec := httptest.Do(t, r, httptest.Request{Method: http.MethodGet, Path: "/health"})
			assert.Equal(t, http.StatusOK, rec.Code)

			rec = httptest.Do(t, r, httptest.Request{Method: http.MethodGet, Path: "/health/ready"})
			require.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDB, body["database"])
		})
	}
}
