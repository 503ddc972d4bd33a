package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"cozy-room-booker/models"
)

// ErrInvalidOccupancyRate is returned when a random occupancy rate lies outside [0, 1]
var ErrInvalidOccupancyRate = errors.New("occupancy rate must be between 0 and 1")

// HotelOptions configures a Hotel
type HotelOptions struct {
	// Seed for the occupancy generator; 0 derives one from the current time
	Seed              uint64
	DefaultRate       float64
	HighlightDuration time.Duration
	// Now overrides the clock, mainly for tests
	Now func() time.Time
}

// Hotel owns the live room state of the building and serializes every change to it
type Hotel struct {
	mu sync.Mutex

	rooms       []models.Room
	lastBooking *models.BookingResult

	highlighted    map[int]bool
	highlightUntil time.Time

	rng          *rand.Rand
	defaultRate  float64
	highlightFor time.Duration
	now          func() time.Time
}

// NewHotel creates a hotel with every room free
func NewHotel(opts HotelOptions) *Hotel {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rate := opts.DefaultRate
	if rate < 0 || rate > 1 {
		log.Printf("WARNING: default occupancy rate %.2f out of range, using %.2f", rate, DefaultOccupancyRate)
		rate = DefaultOccupancyRate
	}

	return &Hotel{
		rooms:        InitializeRooms(),
		highlighted:  map[int]bool{},
		rng:          rand.New(rand.NewSource(seed)),
		defaultRate:  rate,
		highlightFor: opts.HighlightDuration,
		now:          now,
	}
}

// Rooms returns a copy of the current rooms
func (h *Hotel) Rooms() []models.Room {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms := make([]models.Room, len(h.rooms))
	copy(rooms, h.rooms)
	return rooms
}

// Building returns the rooms grouped by floor, top floor first
func (h *Hotel) Building() models.BuildingResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	highlightActive := h.now().Before(h.highlightUntil)

	byFloor := make(map[int][]models.RoomView, TotalFloors)
	rooms := make([]models.Room, len(h.rooms))
	for i, r := range h.rooms {
		rooms[i] = r
		byFloor[r.Floor] = append(byFloor[r.Floor], models.RoomView{
			Room:        r,
			Highlighted: highlightActive && h.highlighted[r.RoomNumber],
		})
	}

	floors := make([]models.FloorView, 0, TotalFloors)
	for floor := TotalFloors; floor >= 1; floor-- {
		floors = append(floors, models.FloorView{Floor: floor, Rooms: byFloor[floor]})
	}

	return models.BuildingResponse{Rooms: rooms, Floors: floors}
}

// Stats returns the current occupancy summary
func (h *Hotel) Stats() models.HotelStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats(h.rooms)
}

// Book tries to book count rooms. A successful result is applied to the hotel and its rooms
// are highlighted; every result becomes the last booking.
func (h *Hotel) Book(count int) models.BookingResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := BookRooms(h.rooms, count)
	h.lastBooking = &result

	if !result.Success {
		h.clearHighlight()
		log.Printf("Booking of %d room(s) failed: %s", count, result.Message)
		return result
	}

	h.rooms = ApplyBooking(h.rooms, result.Rooms)
	h.highlighted = make(map[int]bool, len(result.Rooms))
	for _, n := range result.Rooms {
		h.highlighted[n] = true
	}
	h.highlightUntil = h.now().Add(h.highlightFor)

	log.Printf("Booked rooms %v (travel time %d min)", result.Rooms, result.TravelTime)
	return result
}

// LastBooking returns the most recent booking result, if any
func (h *Hotel) LastBooking() (models.BookingResult, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.lastBooking == nil {
		return models.BookingResult{}, false
	}
	return *h.lastBooking, true
}

// Randomize replaces the occupancy with a random one over a fresh building. A nil rate uses
// the configured default.
func (h *Hotel) Randomize(rate *float64) error {
	r := h.defaultRate
	if rate != nil {
		r = *rate
	}
	if r < 0 || r > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidOccupancyRate, r)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.rooms = GenerateRandomOccupancy(InitializeRooms(), r, h.rng)
	h.lastBooking = nil
	h.clearHighlight()

	log.Printf("Random occupancy generated at rate %.2f: %d room(s) booked", r, len(h.rooms)-CountAvailable(h.rooms))
	return nil
}

// Reset frees every room
func (h *Hotel) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.rooms = ResetAllBookings(h.rooms)
	h.lastBooking = nil
	h.clearHighlight()

	log.Println("All bookings reset")
}

func (h *Hotel) clearHighlight() {
	h.highlighted = map[int]bool{}
	h.highlightUntil = time.Time{}
}
