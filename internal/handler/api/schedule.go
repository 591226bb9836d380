package api

import (
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Replace unavailable ranges
// @Description Replaces every blackout range on the date with the given set
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceUnavailableRequest true "Date and ranges"
// @Success 200 {array} resdto.UnavailableRangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /schedules/unavailable [post]
func (h *ScheduleHandler) Replace(c *gin.Context) {
	var req reqdto.ReplaceUnavailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ranges, err := h.cmds.ReplaceUnavailableRanges(c.Request.Context(), middleware.GetPrincipal(c), req.Date, req.ToInputs())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnavailableRanges(ranges))
}

// @Summary Unavailable ranges for a date
// @Tags schedules
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.UnavailableRangeResponse
// @Router /schedules/unavailable/{date} [get]
func (h *ScheduleHandler) ByDate(c *gin.Context) {
	rows, err := h.q.GetUnavailableRanges(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnavailableRangeRMs(rows))
}

// @Summary Unavailable ranges for a month
// @Tags schedules
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {array} resdto.UnavailableRangeResponse
// @Router /schedules/unavailable/month/{year}/{month} [get]
func (h *ScheduleHandler) ByMonth(c *gin.Context) {
	year, month, err := yearMonthParams(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	rows, err := h.q.GetUnavailableRangesForMonth(c.Request.Context(), year, month)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnavailableRangeRMs(rows))
}
