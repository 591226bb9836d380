package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/readmodel"
	"studio-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	bookingFormField = "booking"
	proofFormField   = "proof"
)

type BookingHandler struct {
	cmds   commands.BookingCommands
	q      queries.BookingQueries
	proofs shared.ProofStore
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, proofs shared.ProofStore) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, proofs: proofs}
}

// @Summary Create booking
// @Description Create a booking with its payment. The slot must be free.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(createdStatus(result), resdto.FromCreateResult(result))
}

// @Summary Create booking with payment proof
// @Description Multipart form: "booking" holds the JSON booking request, "proof" the file
// @Tags bookings
// @Accept multipart/form-data
// @Produce json
// @Param booking formData string true "Booking request JSON"
// @Param proof formData file true "Payment proof"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/with-proof [post]
func (h *BookingHandler) CreateWithProof(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := json.Unmarshal([]byte(c.PostForm(bookingFormField)), &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking form field", nil)
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	ref, ok := h.storeProof(c)
	if !ok {
		return
	}

	result, err := h.cmds.CreateBookingWithProof(c.Request.Context(), in, ref)
	if err != nil {
		// the stored file stays behind as an unreferenced object
		slog.Warn("booking with proof failed after upload", "proof_ref", ref, "error", err.Error())
		httperr.Abort(c, err)
		return
	}
	c.JSON(createdStatus(result), resdto.FromCreateResult(result))
}

// @Summary Create manual booking
// @Description Admin-entered booking, confirmed and paid immediately
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ManualBookingRequest true "Manual booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/manual [post]
func (h *BookingHandler) CreateManual(c *gin.Context) {
	var req reqdto.ManualBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.cmds.CreateManualBooking(c.Request.Context(), middleware.GetPrincipal(c), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary Find conflicts
// @Description List bookings and unavailable ranges overlapping a slot
// @Tags bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start (HH:MM)"
// @Param end query string true "End (HH:MM)"
// @Param excludeId query int false "Booking to ignore"
// @Success 200 {object} resdto.ConflictResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/conflicts [get]
func (h *BookingHandler) Conflicts(c *gin.Context) {
	var q reqdto.ConflictQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	res, err := h.q.FindConflicts(c.Request.Context(), q.Date, q.StartTime, q.EndTime, q.Exclude())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictResult(res))
}

// @Summary Booked slots
// @Description Upcoming non-cancelled bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings/booked-slots [get]
func (h *BookingHandler) BookedSlots(c *gin.Context) {
	rows, err := h.q.ListUpcoming(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRMs(rows))
}

// @Summary Calendar by date
// @Tags bookings
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/calendar/date/{date} [get]
func (h *BookingHandler) CalendarDate(c *gin.Context) {
	rows, err := h.q.GetBookingsForDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRMs(rows))
}

// @Summary Calendar by month
// @Tags bookings
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/calendar/month/{year}/{month} [get]
func (h *BookingHandler) CalendarMonth(c *gin.Context) {
	year, month, err := yearMonthParams(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	rows, err := h.q.GetBookingsForMonth(c.Request.Context(), year, month)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRMs(rows))
}

// @Summary Booking by reference
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/reference/{reference} [get]
func (h *BookingHandler) GetByReference(c *gin.Context) {
	rm, err := h.q.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary List bookings
// @Description All bookings, or those with the given status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var (
		rows []*resdto.BookingResponse
		err  error
	)
	if status := c.Query("status"); status != "" {
		rows, err = h.listWith(h.q.ListByStatus(c.Request.Context(), p, status))
	} else {
		rows, err = h.listWith(h.q.ListAll(c.Request.Context(), p))
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Pending bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings/pending [get]
func (h *BookingHandler) ListPending(c *gin.Context) {
	rows, err := h.listWith(h.q.ListPending(c.Request.Context(), middleware.GetPrincipal(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Bookings by guest email
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email path string true "Guest email"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings/email/{email} [get]
func (h *BookingHandler) ListByEmail(c *gin.Context) {
	rows, err := h.listWith(h.q.ListByGuestEmail(c.Request.Context(), middleware.GetPrincipal(c), c.Param("email")))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Get booking
// @Description Booking with payment summary and proof URL
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingDetailsResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := bookingIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	rm, err := h.q.GetBooking(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDetailsRM(rm))
}

// @Summary Update booking details
// @Description Partial update of guest and package fields
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateDetails(c *gin.Context) {
	id, err := bookingIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	b, err := h.cmds.UpdateBookingDetails(c.Request.Context(), middleware.GetPrincipal(c), id, patch)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Move booking
// @Description Change the time range; the booking's own slot never conflicts
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.TimeRangeRequest true "New time range"
// @Success 200 {object} resdto.BookingResponse
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/time-range [put]
func (h *BookingHandler) UpdateTimeRange(c *gin.Context) {
	id, err := bookingIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.TimeRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	b, err := h.cmds.UpdateBookingTimeRange(c.Request.Context(), id, req.StartTime, req.EndTime)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Approve booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.ApproveRequest false "Admin notes"
// @Success 200 {object} resdto.BookingResponse
// @Router /bookings/{id}/approve [put]
func (h *BookingHandler) Approve(c *gin.Context) {
	id, err := bookingIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.ApproveRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	b, err := h.cmds.ApproveBooking(c.Request.Context(), middleware.GetPrincipal(c), id, req.Notes)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Reject booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.RejectRequest false "Reason"
// @Success 200 {object} resdto.BookingResponse
// @Router /bookings/{id}/reject [put]
func (h *BookingHandler) Reject(c *gin.Context) {
	id, err := bookingIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.RejectRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	b, err := h.cmds.RejectBooking(c.Request.Context(), middleware.GetPrincipal(c), id, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Set booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.StatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) SetStatus(c *gin.Context) {
	id, err := bookingIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	b, err := h.cmds.SetStatus(c.Request.Context(), middleware.GetPrincipal(c), id, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Attach payment proof
// @Tags bookings
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Booking ID"
// @Param proof formData file true "Payment proof"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/payment-proof [post]
func (h *BookingHandler) AttachProof(c *gin.Context) {
	id, err := bookingIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	ref, ok := h.storeProof(c)
	if !ok {
		return
	}

	b, err := h.cmds.AttachPaymentProof(c.Request.Context(), id, ref)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Delete booking
// @Description Deletes the booking and its payment
// @Tags bookings
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := bookingIDParam(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.DeleteBooking(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Orphaned payments
// @Description Payments not linked to any booking
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Router /payments/orphans [get]
func (h *BookingHandler) OrphanedPayments(c *gin.Context) {
	rows, err := h.q.ListOrphanedPayments(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentRMs(rows))
}

func (h *BookingHandler) storeProof(c *gin.Context) (string, bool) {
	fh, err := c.FormFile(proofFormField)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment proof file is required", nil)
		return "", false
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable payment proof", nil)
		return "", false
	}
	defer f.Close()

	ref, err := h.proofs.Store(c.Request.Context(), f, fh.Header.Get("Content-Type"))
	if err != nil {
		httperr.Abort(c, err)
		return "", false
	}
	return ref, true
}

func (h *BookingHandler) listWith(rows []*readmodel.BookingRM, err error) ([]*resdto.BookingResponse, error) {
	if err != nil {
		return nil, err
	}
	return resdto.FromBookingRMs(rows), nil
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		// unknown-length requests only reveal an empty body on read
		if errors.Is(err, io.EOF) {
			return true
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}

// replays answer 200 since nothing new was created
func createdStatus(r *commands.CreateBookingResult) int {
	if r.Replayed {
		return http.StatusOK
	}
	return http.StatusCreated
}
