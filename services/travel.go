package services

import "sort"

// Travel costs in minutes
const (
	minutesPerFloor = 2
	minutesPerRoom  = 1
)

// TravelTime calculates the minutes needed to walk from room a to room b
func TravelTime(a, b int) int {
	vertical := abs(FloorOf(b)-FloorOf(a)) * minutesPerFloor
	horizontal := abs(Position(b)-Position(a)) * minutesPerRoom
	return vertical + horizontal
}

// PathTravelTime sums the travel time along the rooms visited in floor, position order.
// The input slice is not reordered.
func PathTravelTime(rooms []int) int {
	if len(rooms) <= 1 {
		return 0
	}

	sorted := sortedByLocation(rooms)

	total := 0
	for i := 0; i < len(sorted)-1; i++ {
		total += TravelTime(sorted[i], sorted[i+1])
	}
	return total
}

// sortedByLocation returns a copy of rooms sorted by floor, then position
func sortedByLocation(rooms []int) []int {
	sorted := make([]int, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		fi, fj := FloorOf(sorted[i]), FloorOf(sorted[j])
		if fi != fj {
			return fi < fj
		}
		return Position(sorted[i]) < Position(sorted[j])
	})
	return sorted
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
