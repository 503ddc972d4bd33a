package services

import (
	"math"
	"sort"

	"cozy-room-booker/models"
)

// ExhaustiveSearchLimit is the largest pool of free rooms searched combination by combination
// for requests of four or more rooms. Larger pools fall back to a sliding window over the
// rooms sorted by floor and position, which is cheaper but not guaranteed optimal.
const ExhaustiveSearchLimit = 20

// exhaustiveMaxCount is the request size that is always searched exhaustively
const exhaustiveMaxCount = 3

// availableOnFloor returns the free room numbers of one floor in collection order
func availableOnFloor(rooms []models.Room, floor int) []int {
	var available []int
	for _, r := range rooms {
		if r.Floor == floor && !r.IsBooked {
			available = append(available, r.RoomNumber)
		}
	}
	return available
}

// availableRooms returns every free room number in collection order
func availableRooms(rooms []models.Room) []int {
	var available []int
	for _, r := range rooms {
		if !r.IsBooked {
			available = append(available, r.RoomNumber)
		}
	}
	return available
}

// FindSameFloorRooms picks count rooms on the lowest floor that can hold them all.
// It returns the floor and the rooms, or 0 and nil when no single floor has enough free rooms.
func FindSameFloorRooms(rooms []models.Room, count int) (int, []int) {
	for floor := 1; floor <= TotalFloors; floor++ {
		available := availableOnFloor(rooms, floor)
		if len(available) < count {
			continue
		}
		if best := bestRoomsOnFloor(available, count); len(best) == count {
			return floor, best
		}
	}
	return 0, nil
}

// bestRoomsOnFloor slides a window of count rooms over the free rooms sorted by position and
// keeps the window with the smallest spread. The first minimum wins.
func bestRoomsOnFloor(available []int, count int) []int {
	if count < 1 || len(available) < count {
		return nil
	}

	sorted := make([]int, len(available))
	copy(sorted, available)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Position(sorted[i]) < Position(sorted[j])
	})

	var best []int
	bestSpread := math.MaxInt
	for i := 0; i+count <= len(sorted); i++ {
		spread := Position(sorted[i+count-1]) - Position(sorted[i])
		if spread < bestSpread {
			bestSpread = spread
			best = sorted[i : i+count]
		}
	}

	result := make([]int, len(best))
	copy(result, best)
	return result
}

// FindCrossFloorRooms picks count free rooms anywhere in the building with the lowest path
// travel time. It returns nil when fewer than count rooms are free.
func FindCrossFloorRooms(rooms []models.Room, count int) []int {
	available := availableRooms(rooms)
	if count < 1 || len(available) < count {
		return nil
	}

	if len(available) <= ExhaustiveSearchLimit || count <= exhaustiveMaxCount {
		return bestCombination(available, count)
	}
	return bestWindow(sortedByLocation(available), count)
}

// bestCombination enumerates the count-sized combinations of available in lexicographic order
// and returns the first one with the minimal path travel time.
func bestCombination(available []int, count int) []int {
	var best []int
	bestTime := math.MaxInt

	current := make([]int, 0, count)
	var backtrack func(start int)
	backtrack = func(start int) {
		if len(current) == count {
			if t := PathTravelTime(current); t < bestTime {
				bestTime = t
				best = append(best[:0], current...)
			}
			return
		}
		// stop once too few rooms remain to fill the combination
		for i := start; i <= len(available)-(count-len(current)); i++ {
			current = append(current, available[i])
			backtrack(i + 1)
			current = current[:len(current)-1]
		}
	}
	backtrack(0)

	return best
}

// bestWindow slides a window of count rooms over sorted and keeps the first window with the
// minimal path travel time.
func bestWindow(sorted []int, count int) []int {
	var best []int
	bestTime := math.MaxInt
	for i := 0; i+count <= len(sorted); i++ {
		candidate := sorted[i : i+count]
		if t := PathTravelTime(candidate); t < bestTime {
			bestTime = t
			best = candidate
		}
	}

	result := make([]int, len(best))
	copy(result, best)
	return result
}
