package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cozy-room-booker/events"
	"cozy-room-booker/models"
	"cozy-room-booker/services"
)

// GetRooms returns the building with every room and the just-booked highlight
func (h *Handler) GetRooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.hotel.Building())
}

// GetStats returns occupancy statistics
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.hotel.Stats())
}

// RandomOccupancy fills the building at random
func (h *Handler) RandomOccupancy(c *gin.Context) {
	var req models.OccupancyRequest

	// an empty body means the default rate
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.hotel.Randomize(req.Rate); err != nil {
		if errors.Is(err, services.ErrInvalidOccupancyRate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error generating occupancy: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate occupancy"})
		return
	}

	h.publish(c.Request.Context(), newEventID(), events.KindOccupancyRandomized, nil)
	c.JSON(http.StatusOK, h.hotel.Stats())
}

// ResetBookings frees every room
func (h *Handler) ResetBookings(c *gin.Context) {
	h.hotel.Reset()

	h.publish(c.Request.Context(), newEventID(), events.KindOccupancyReset, nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All bookings have been reset",
	})
}
