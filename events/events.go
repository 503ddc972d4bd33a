package events

import (
	"context"
	"time"
)

// Event kinds
const (
	KindBookingSucceeded    = "booking.succeeded"
	KindBookingFailed       = "booking.failed"
	KindOccupancyRandomized = "occupancy.randomized"
	KindOccupancyReset      = "occupancy.reset"
)

// Event describes a change of hotel occupancy
type Event struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Timestamp      time.Time `json:"timestamp"`
	Rooms          []int     `json:"rooms,omitempty"`
	TravelTime     int       `json:"travelTime,omitempty"`
	Message        string    `json:"message,omitempty"`
	BookedRooms    int       `json:"bookedRooms"`
	AvailableRooms int       `json:"availableRooms"`
}

// Publisher sends occupancy events to interested listeners
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Noop discards every event
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

func (Noop) Close() error { return nil }
