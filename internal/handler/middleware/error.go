package middleware

import (
	"log/slog"
	"net/http"

	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that handlers attached with c.Error but did
// not write themselves. A public error already carries its response body;
// anything else is classified by its category.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		resp, ok := publicResponse(c.Errors)
		if !ok {
			last := c.Errors.Last().Err
			status, msg, detail := httperr.Classify(last)
			resp = httperr.Response{Status: status, Detail: detail}
			resp.Error.Message = msg
		}
		if resp.Status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"status", resp.Status,
				"error", c.Errors.Last().Err,
				"category", categoryName(c.Errors.Last().Err),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c))
		}
		c.JSON(resp.Status, resp)
	}
}

// newest first
func publicResponse(list []*gin.Error) (httperr.Response, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := list[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func categoryName(err error) string {
	if c := errs.Category(err); c != nil {
		return c.Error()
	}
	return "unclassified"
}

func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c))

		resp := httperr.Response{Status: http.StatusInternalServerError}
		resp.Error.Message = "Internal server error"
		c.AbortWithStatusJSON(resp.Status, resp)
	})
}
