package models

import "errors"

// FailureReason classifies why a booking attempt failed
type FailureReason string

const (
	ReasonInvalidCount      FailureReason = "invalid_count"
	ReasonInsufficientRooms FailureReason = "insufficient_rooms"
	ReasonNoSuitableRooms   FailureReason = "no_suitable_rooms"
)

var (
	ErrInvalidRoomCount  = errors.New("invalid room count")
	ErrInsufficientRooms = errors.New("insufficient rooms available")
	ErrNoSuitableRooms   = errors.New("no suitable rooms found")
)

// BookingResult is the outcome of one booking attempt
type BookingResult struct {
	Rooms      []int         `json:"rooms"`
	TravelTime int           `json:"travelTime"`
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	Reason     FailureReason `json:"reason,omitempty"`
}

// Err returns the sentinel error matching the failure reason, or nil on success
func (r BookingResult) Err() error {
	if r.Success {
		return nil
	}
	switch r.Reason {
	case ReasonInvalidCount:
		return ErrInvalidRoomCount
	case ReasonInsufficientRooms:
		return ErrInsufficientRooms
	default:
		return ErrNoSuitableRooms
	}
}

// BookingRequest represents a room booking request
type BookingRequest struct {
	Count *int `json:"count" binding:"required"`
}

// BookingResponse wraps a booking result with the id of the attempt
type BookingResponse struct {
	BookingID string        `json:"bookingId"`
	Result    BookingResult `json:"result"`
}

// OccupancyRequest represents a random occupancy request
type OccupancyRequest struct {
	Rate *float64 `json:"rate" binding:"omitempty,min=0,max=1"`
}
