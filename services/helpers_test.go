package services

import "cozy-room-booker/models"

// roomsWithFree returns a building where only the listed rooms are free
func roomsWithFree(free ...int) []models.Room {
	isFree := make(map[int]bool, len(free))
	for _, n := range free {
		isFree[n] = true
	}

	rooms := InitializeRooms()
	for i := range rooms {
		rooms[i].IsBooked = !isFree[rooms[i].RoomNumber]
	}
	return rooms
}

// firstThreePerFloor frees positions 1-3 on floors 1-9, 27 rooms in total
func firstThreePerFloor() []int {
	var free []int
	for floor := 1; floor <= 9; floor++ {
		free = append(free, floor*100+1, floor*100+2, floor*100+3)
	}
	return free
}
