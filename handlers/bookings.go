package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cozy-room-booker/events"
	"cozy-room-booker/models"
)

// CreateBooking books the requested number of rooms
func (h *Handler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Booking request: %d room(s)", *req.Count)

	bookingID := newEventID()
	result := h.hotel.Book(*req.Count)

	response := models.BookingResponse{BookingID: bookingID, Result: result}

	if !result.Success {
		h.publish(c.Request.Context(), bookingID, events.KindBookingFailed, &result)
		c.JSON(failureStatus(result.Reason), response)
		return
	}

	h.publish(c.Request.Context(), bookingID, events.KindBookingSucceeded, &result)
	c.JSON(http.StatusOK, response)
}

// GetLastBooking returns the most recent booking result
func (h *Handler) GetLastBooking(c *gin.Context) {
	result, ok := h.hotel.LastBooking()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking yet"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func failureStatus(reason models.FailureReason) int {
	switch reason {
	case models.ReasonInvalidCount:
		return http.StatusBadRequest
	default:
		return http.StatusConflict
	}
}
