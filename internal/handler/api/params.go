package api

import (
	"strconv"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID    = errs.Sentinel("invalid booking id", errs.ErrValidation)
	errInvalidMonth = errs.Sentinel("invalid year or month", errs.ErrValidation)
)

func bookingIDParam(c *gin.Context) (booking.ID, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return booking.ID(id), nil
}

func yearMonthParams(c *gin.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, errInvalidMonth
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, errInvalidMonth
	}
	return year, month, nil
}
