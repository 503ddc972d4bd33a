package services

import (
	"math"

	"golang.org/x/exp/rand"

	"cozy-room-booker/models"
)

// DefaultOccupancyRate is the booking probability used when none is given
const DefaultOccupancyRate = 0.5

// ApplyBooking returns a copy of rooms with the given room numbers marked as booked.
// Rooms that were already booked stay booked.
func ApplyBooking(rooms []models.Room, bookedNumbers []int) []models.Room {
	booked := make(map[int]struct{}, len(bookedNumbers))
	for _, n := range bookedNumbers {
		booked[n] = struct{}{}
	}

	updated := make([]models.Room, len(rooms))
	for i, room := range rooms {
		_, ok := booked[room.RoomNumber]
		room.IsBooked = room.IsBooked || ok
		updated[i] = room
	}
	return updated
}

// ResetAllBookings returns a copy of rooms with every room unbooked
func ResetAllBookings(rooms []models.Room) []models.Room {
	updated := make([]models.Room, len(rooms))
	for i, room := range rooms {
		room.IsBooked = false
		updated[i] = room
	}
	return updated
}

// GenerateRandomOccupancy returns a copy of rooms where each room is booked with probability
// rate. rate must be within [0, 1].
func GenerateRandomOccupancy(rooms []models.Room, rate float64, rng *rand.Rand) []models.Room {
	updated := make([]models.Room, len(rooms))
	for i, room := range rooms {
		room.IsBooked = rng.Float64() < rate
		updated[i] = room
	}
	return updated
}

// CountAvailable returns the number of unbooked rooms
func CountAvailable(rooms []models.Room) int {
	available := 0
	for _, r := range rooms {
		if !r.IsBooked {
			available++
		}
	}
	return available
}

// Stats computes the occupancy summary for rooms
func Stats(rooms []models.Room) models.HotelStats {
	total := len(rooms)
	available := CountAvailable(rooms)
	booked := total - available

	var rate float64
	if total > 0 {
		rate = math.Round(float64(booked)*1000/float64(total)) / 10
	}

	return models.HotelStats{
		TotalRooms:     total,
		BookedRooms:    booked,
		AvailableRooms: available,
		OccupancyRate:  rate,
	}
}
