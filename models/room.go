package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room types as the frontend sends them.
const (
	RoomTypeDorm    = "dorm"
	RoomTypePrivate = "private"
	RoomTypeShared  = "shared"
)

// Room lifecycle statuses. Maintenance and cleaning block check-ins.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusCleaning    = "cleaning"
)

// Bed is one capacity slot inside a dorm room, stored as JSON on the room row.
type Bed struct {
	Number   int   `json:"number"`
	Occupied bool  `json:"occupied"`
	GuestID  *uint `json:"guestId,omitempty"`
}

type Room struct {
	gorm.Model

	RoomNumber string `json:"number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Type  string `json:"type" gorm:"type:varchar(20)"`
	Floor int    `json:"floor"`

	Capacity         int `json:"capacity"`
	CurrentOccupancy int `json:"currentOccupancy" gorm:"column:current_occupancy"`

	Status        string  `json:"status" gorm:"type:varchar(20);default:available"`
	PricePerNight float64 `json:"pricePerNight" gorm:"column:price_per_night"`

	// StatusReason keeps the latest maintenance/cleaning note for the grid.
	StatusReason string `json:"statusReason,omitempty" gorm:"column:status_reason;type:text"`

	Amenities datatypes.JSONSlice[string] `json:"amenities,omitempty"`

	// Beds is populated for dorm rooms only; private/shared rooms track
	// occupancy by count alone.
	Beds datatypes.JSONSlice[Bed] `json:"beds,omitempty"`
}

// IsBlocked reports whether the room refuses new check-ins by status.
func (r *Room) IsBlocked() bool {
	return r.Status == RoomStatusMaintenance || r.Status == RoomStatusCleaning
}

// IsValidRoomStatus reports whether s is one of the four room statuses.
func IsValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusCleaning:
		return true
	}
	return false
}
