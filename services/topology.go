package services

import "cozy-room-booker/models"

const (
	// TotalFloors is the number of floors in the building
	TotalFloors = 10
	// RoomsPerFloor applies to floors 1 through 9
	RoomsPerFloor = 10
	// TopFloorRooms is the room count of floor 10
	TopFloorRooms = 7
	// TotalRooms is the size of the building
	TotalRooms = (TotalFloors-1)*RoomsPerFloor + TopFloorRooms
)

// Position returns the 1-based index of a room within its floor
func Position(roomNumber int) int {
	if roomNumber >= 1001 {
		return roomNumber - 1000
	}
	return roomNumber % 100
}

// FloorOf returns the floor a room number belongs to
func FloorOf(roomNumber int) int {
	if roomNumber >= 1000 {
		return TotalFloors
	}
	return roomNumber / 100
}

// RoomNumber builds a room number from its floor and position
func RoomNumber(floor, position int) int {
	if floor == TotalFloors {
		return 1000 + position
	}
	return floor*100 + position
}

// roomsOnFloor returns how many rooms a floor has
func roomsOnFloor(floor int) int {
	if floor == TotalFloors {
		return TopFloorRooms
	}
	return RoomsPerFloor
}

// ValidRoomNumber reports whether n names a room in the building
func ValidRoomNumber(n int) bool {
	floor := FloorOf(n)
	if floor < 1 || floor > TotalFloors {
		return false
	}
	pos := Position(n)
	return pos >= 1 && pos <= roomsOnFloor(floor) && RoomNumber(floor, pos) == n
}

// InitializeRooms creates all 97 rooms, unbooked, ordered by floor then position
func InitializeRooms() []models.Room {
	rooms := make([]models.Room, 0, TotalRooms)
	for floor := 1; floor <= TotalFloors; floor++ {
		for pos := 1; pos <= roomsOnFloor(floor); pos++ {
			number := RoomNumber(floor, pos)
			rooms = append(rooms, models.Room{
				ID:         number,
				Floor:      floor,
				RoomNumber: number,
				IsBooked:   false,
			})
		}
	}
	return rooms
}
