package booking

import (
	"errors"
	"net/http"
	"strconv"

	"barbershop/internal/api"
	"barbershop/internal/schedule"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAvailability godoc
// @Summary      Availability for a date
// @Description  Returns every bookable slot for the given date and service, annotated with availability. Pass exclude_booking when rescheduling so the booking does not block itself.
// @Tags         bookings
// @Produce      json
// @Param        date             query     string  true   "Date (YYYY-MM-DD)"
// @Param        service_id       query     int     true   "Service ID"
// @Param        exclude_booking  query     int     false  "Booking ID to ignore in occupancy"
// @Success      200  {object}  AvailabilityResponse
// @Failure      400  {object}  api.ErrorResponse
// @Router       /availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service_id"})
		return
	}

	excludeID := 0
	if raw := c.Query("exclude_booking"); raw != "" {
		excludeID, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exclude_booking"})
			return
		}
	}

	resp, err := h.service.Availability(c.Request.Context(), date, serviceID, excludeID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate), errors.Is(err, schedule.ErrInvalidDuration):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrServiceUnknown):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateBooking godoc
// @Summary      Book a slot
// @Description  Creates a pending booking for the requested slot. If another client took the slot first the response is 409 with retryable set.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking data"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ConflictResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate),
			errors.Is(err, schedule.ErrInvalidTime),
			errors.Is(err, schedule.ErrOffGrid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrServiceUnknown):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service"})
		case errors.Is(err, ErrSlotUnavailable):
			c.JSON(http.StatusConflict, api.ConflictResponse{Error: "Slot is not available", Retryable: true})
		case errors.Is(err, ErrSlotTaken):
			c.JSON(http.StatusConflict, api.ConflictResponse{Error: "Slot was just taken, pick another", Retryable: true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// GetBooking godoc
// @Summary      Look up a booking
// @Description  Returns a booking by its reference, the token from the confirmation email.
// @Tags         bookings
// @Produce      json
// @Param        reference  path      string  true  "Booking reference"
// @Success      200        {object}  BookingWithService
// @Failure      404        {object}  api.ErrorResponse
// @Router       /bookings/{reference} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Cancels a pending or confirmed booking by its reference. Cancellation is final.
// @Tags         bookings
// @Produce      json
// @Param        reference  path      string  true  "Booking reference"
// @Success      200        {object}  api.MessageResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /bookings/{reference} [delete]
func (h *Handler) CancelBooking(c *gin.Context) {
	err := h.service.CancelByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// ListBookings godoc
// @Summary      List bookings
// @Description  Lists bookings filtered by date or status. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        date    query     string  false  "Date (YYYY-MM-DD)"
// @Param        status  query     string  false  "Status (pending, confirmed, cancelled)"
// @Success      200     {array}   BookingWithService
// @Failure      400     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	var (
		bookings []BookingWithService
		err      error
	)

	switch {
	case c.Query("date") != "":
		bookings, err = h.service.ListByDate(c.Request.Context(), c.Query("date"))
	case c.Query("status") != "":
		bookings, err = h.service.ListByStatus(c.Request.Context(), c.Query("status"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide a date or status filter"})
		return
	}

	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	if bookings == nil {
		bookings = []BookingWithService{}
	}

	c.JSON(http.StatusOK, bookings)
}

// ConfirmBooking godoc
// @Summary      Confirm a booking
// @Description  Moves a pending booking to confirmed and emails the client. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/confirm [post]
func (h *Handler) ConfirmBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.service.Confirm(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Only pending bookings can be confirmed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed"})
}

// AdminCancelBooking godoc
// @Summary      Cancel a booking by ID
// @Description  Cancels a pending or confirmed booking. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/cancel [post]
func (h *Handler) AdminCancelBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// DeleteBooking godoc
// @Summary      Delete a cancelled booking
// @Description  Permanently removes a cancelled booking from history. Active bookings must be cancelled first. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID} [delete]
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Only cancelled bookings can be deleted"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// RescheduleBooking godoc
// @Summary      Reschedule a booking
// @Description  Moves a booking to a new slot. The booking keeps its status and does not conflict with its own current slot. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int                true  "Booking ID"
// @Param        request    body      RescheduleRequest  true  "New slot"
// @Success      200        {object}  Booking
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ConflictResponse
// @Router       /admin/bookings/{bookingID}/reschedule [post]
func (h *Handler) RescheduleBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate),
			errors.Is(err, schedule.ErrInvalidTime),
			errors.Is(err, schedule.ErrOffGrid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Cancelled bookings cannot be rescheduled"})
		case errors.Is(err, ErrSlotUnavailable), errors.Is(err, ErrSlotTaken):
			c.JSON(http.StatusConflict, api.ConflictResponse{Error: "Slot is not available", Retryable: true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reschedule booking"})
		}
		return
	}

	c.JSON(http.StatusOK, b)
}
