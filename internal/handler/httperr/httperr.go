package httperr

import (
	"net/http"

	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error onto its HTTP status by category.
func Abort(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string, any) {
	var conflictErr *shared.ConflictError
	if errs.As(err, &conflictErr) {
		return http.StatusConflict, conflictErr.Error(), resdto.FromConflicts(conflictErr.Bookings, conflictErr.Ranges)
	}

	switch errs.Category(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest, err.Error(), nil
	case errs.ErrUnauthorized:
		return http.StatusUnauthorized, "Invalid credentials", nil
	case errs.ErrForbidden:
		return http.StatusForbidden, "Insufficient permissions", nil
	case errs.ErrNotFound:
		return http.StatusNotFound, err.Error(), nil
	case errs.ErrConflict:
		return http.StatusConflict, err.Error(), nil
	case errs.ErrStorage:
		return http.StatusServiceUnavailable, "Service temporarily unavailable, please retry", nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
