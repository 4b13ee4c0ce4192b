package api

import (
	"errors"
	"net/http"
	"time"

	"oasis-backend/internal/domain/booking"
	reqdto "oasis-backend/internal/handler/dto/request"
	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/handler/middleware"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Reserve a table for a time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.bookingCommands.Create(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Start time must be before end time",
			})
		case errors.Is(err, commands.ErrInvalidGuestCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Guest count must be positive",
			})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Table is already booked for this time slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{ID: id})
}

// @Summary List bookings
// @Description List the caller's reservations
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromReservationView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Check booking conflict
// @Description Probe whether a table is free for a time slot
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param table query string true "Table number"
// @Param start query string true "Slot start (RFC3339)"
// @Param end query string true "Slot end (RFC3339)"
// @Success 200 {object} resdto.ConflictCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/check [get]
func (h *BookingHandler) CheckConflict(c *gin.Context) {
	tableNumber := c.Query("table")
	startStr := c.Query("start")
	endStr := c.Query("end")
	if tableNumber == "" || startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "table, start and end query parameters are required",
		})
		return
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start time format",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid end time format",
		})
		return
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Start time must be before end time",
		})
		return
	}

	conflict, err := h.bookingQueries.CheckConflict(c.Request.Context(), tableNumber, slot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ConflictCheckResponse{Conflict: conflict})
}

// @Summary Reschedule booking
// @Description Move or amend an existing reservation
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "Fields to change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [put]
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.Reschedule(c.Request.Context(), id, userID, req.ToParams()); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time interval",
			})
		case errors.Is(err, commands.ErrInvalidGuestCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Guest count must be positive",
			})
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Table is already booked for this time slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking rescheduled"})
}

// @Summary Cancel booking
// @Description Delete an existing reservation
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
