package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestApplyBooking(t *testing.T) {
	rooms := roomsWithFree(101, 102, 103, 104)

	updated := ApplyBooking(rooms, []int{101, 103})

	assert.Equal(t, 2, CountAvailable(updated))
	assert.Equal(t, 4, CountAvailable(rooms), "input must not change")
	for _, r := range updated {
		if r.RoomNumber == 102 || r.RoomNumber == 104 {
			assert.False(t, r.IsBooked, "room %d", r.RoomNumber)
		} else {
			assert.True(t, r.IsBooked, "room %d", r.RoomNumber)
		}
	}
}

func TestApplyBookingIdempotent(t *testing.T) {
	rooms := InitializeRooms()
	booked := []int{101, 505, 1007}

	once := ApplyBooking(rooms, booked)
	twice := ApplyBooking(once, booked)
	assert.Equal(t, once, twice)
}

func TestResetAllBookingsIdempotent(t *testing.T) {
	rooms := roomsWithFree(101)

	once := ResetAllBookings(rooms)
	assert.Equal(t, TotalRooms, CountAvailable(once))
	assert.Equal(t, once, ResetAllBookings(once))
	assert.Equal(t, InitializeRooms(), once)
	assert.Equal(t, 1, CountAvailable(rooms), "input must not change")
}

func TestGenerateRandomOccupancyBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	none := GenerateRandomOccupancy(InitializeRooms(), 0, rng)
	assert.Equal(t, TotalRooms, CountAvailable(none))

	all := GenerateRandomOccupancy(InitializeRooms(), 1, rng)
	assert.Equal(t, 0, CountAvailable(all))
}

func TestGenerateRandomOccupancyDeterministicSeed(t *testing.T) {
	a := GenerateRandomOccupancy(InitializeRooms(), DefaultOccupancyRate, rand.New(rand.NewSource(7)))
	b := GenerateRandomOccupancy(InitializeRooms(), DefaultOccupancyRate, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestGenerateRandomOccupancyProportion(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	const runs = 200
	booked := 0
	for i := 0; i < runs; i++ {
		rooms := GenerateRandomOccupancy(InitializeRooms(), 0.4, rng)
		assert.Len(t, rooms, TotalRooms)
		booked += TotalRooms - CountAvailable(rooms)
	}

	proportion := float64(booked) / float64(runs*TotalRooms)
	assert.InDelta(t, 0.4, proportion, 0.03)
}

func TestStats(t *testing.T) {
	stats := Stats(InitializeRooms())
	assert.Equal(t, 97, stats.TotalRooms)
	assert.Equal(t, 0, stats.BookedRooms)
	assert.Equal(t, 97, stats.AvailableRooms)
	assert.Equal(t, 0.0, stats.OccupancyRate)

	stats = Stats(roomsWithFree(101, 102))
	assert.Equal(t, 95, stats.BookedRooms)
	assert.Equal(t, 2, stats.AvailableRooms)
	assert.Equal(t, 97.9, stats.OccupancyRate)
}
