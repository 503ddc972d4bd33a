package handlers

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"cozy-room-booker/events"
	"cozy-room-booker/models"
	"cozy-room-booker/services"
)

const publishTimeout = 2 * time.Second

// Handler serves the hotel API over a shared Hotel
type Handler struct {
	hotel     *services.Hotel
	publisher events.Publisher
}

// New creates a Handler; a nil publisher disables events
func New(hotel *services.Hotel, publisher events.Publisher) *Handler {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Handler{hotel: hotel, publisher: publisher}
}

// publish sends an event carrying the current occupancy. Failures are only logged.
func (h *Handler) publish(ctx context.Context, id, kind string, result *models.BookingResult) {
	stats := h.hotel.Stats()
	event := events.Event{
		ID:             id,
		Kind:           kind,
		Timestamp:      time.Now(),
		BookedRooms:    stats.BookedRooms,
		AvailableRooms: stats.AvailableRooms,
	}
	if result != nil {
		event.Rooms = result.Rooms
		event.TravelTime = result.TravelTime
		event.Message = result.Message
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := h.publisher.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s event: %v", kind, err)
	}
}

func newEventID() string {
	return uuid.New().String()
}
