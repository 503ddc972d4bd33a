package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cozy-room-booker/models"
)

// Limits on a single booking request
const (
	MinRoomsPerBooking = 1
	MaxRoomsPerBooking = 5
)

// ValidateRoomCount checks that count is a bookable number of rooms
func ValidateRoomCount(count int) error {
	if count < MinRoomsPerBooking || count > MaxRoomsPerBooking {
		return fmt.Errorf("%w: %d", models.ErrInvalidRoomCount, count)
	}
	return nil
}

// BookRooms selects rooms for a request of count rooms. It does not change rooms; callers
// apply a successful result with ApplyBooking.
func BookRooms(rooms []models.Room, count int) models.BookingResult {
	if err := ValidateRoomCount(count); err != nil {
		return failure(models.ReasonInvalidCount,
			fmt.Sprintf("You can book between %d and %d rooms only.", MinRoomsPerBooking, MaxRoomsPerBooking))
	}

	availableCount := CountAvailable(rooms)
	if availableCount < count {
		return failure(models.ReasonInsufficientRooms,
			fmt.Sprintf("Only %d rooms available. Cannot book %d rooms.", availableCount, count))
	}

	// Priority 1: a single floor
	if floor, selected := FindSameFloorRooms(rooms, count); len(selected) == count {
		return models.BookingResult{
			Rooms:      selected,
			TravelTime: PathTravelTime(selected),
			Success:    true,
			Message:    fmt.Sprintf("Booked %d room(s) on Floor %d", count, floor),
		}
	}

	// Priority 2: across floors
	selected := FindCrossFloorRooms(rooms, count)
	if len(selected) == count {
		return models.BookingResult{
			Rooms:      selected,
			TravelTime: PathTravelTime(selected),
			Success:    true,
			Message:    fmt.Sprintf("Booked %d room(s) across Floor(s) %s", count, joinFloors(selected)),
		}
	}

	return failure(models.ReasonNoSuitableRooms, "Unable to find suitable rooms.")
}

func failure(reason models.FailureReason, message string) models.BookingResult {
	return models.BookingResult{
		Rooms:      []int{},
		TravelTime: 0,
		Success:    false,
		Message:    message,
		Reason:     reason,
	}
}

// joinFloors lists the distinct floors of rooms in ascending order, e.g. "1, 2"
func joinFloors(rooms []int) string {
	seen := make(map[int]bool)
	var floors []int
	for _, r := range rooms {
		f := FloorOf(r)
		if !seen[f] {
			seen[f] = true
			floors = append(floors, f)
		}
	}
	sort.Ints(floors)

	parts := make([]string, len(floors))
	for i, f := range floors {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ", ")
}
