package models

// Room represents a single hotel room
type Room struct {
	ID         int  `json:"id"`
	Floor      int  `json:"floor"`
	RoomNumber int  `json:"roomNumber"`
	IsBooked   bool `json:"isBooked"`
}

// RoomView is a room as shown on the building view
type RoomView struct {
	Room
	Highlighted bool `json:"highlighted"`
}

// FloorView groups the rooms of one floor for display
type FloorView struct {
	Floor int        `json:"floor"`
	Rooms []RoomView `json:"rooms"`
}

// BuildingResponse is the full building, floors listed top to bottom
type BuildingResponse struct {
	Rooms  []Room      `json:"rooms"`
	Floors []FloorView `json:"floors"`
}

// HotelStats summarizes current occupancy
type HotelStats struct {
	TotalRooms     int     `json:"totalRooms"`
	BookedRooms    int     `json:"bookedRooms"`
	AvailableRooms int     `json:"availableRooms"`
	OccupancyRate  float64 `json:"occupancyRate"` // percent, one decimal
}
