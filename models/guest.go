package models

import (
	"time"
)

// Guest lifecycle statuses. Checked-out guests are kept as history and are
// never deleted by checkout.
const (
	GuestStatusPreRegistered = "pre-registered"
	GuestStatusReserved      = "reserved"
	GuestStatusCheckedIn     = "checked-in"
	GuestStatusCheckedOut    = "checked-out"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDNumber string `json:"idNumber" gorm:"column:id_number;type:varchar(64)"`

	RoomID *uint `gorm:"index;column:room_id" json:"roomId,omitempty"`
	Room   Room  `gorm:"foreignKey:RoomID" json:"-"`

	// BedNumber is set only for dorm stays.
	BedNumber *int `json:"bedNumber,omitempty" gorm:"column:bed_number"`

	Status string `json:"status" gorm:"type:varchar(20);index"`

	CheckInDate *time.Time `json:"checkInDate,omitempty" gorm:"column:check_in_date"`

	// PlannedCheckOut is the departure date from the check-in form.
	// CheckOutDate stays null until the guest actually checks out.
	PlannedCheckOut *time.Time `json:"plannedCheckOut,omitempty" gorm:"column:planned_check_out"`
	CheckOutDate    *time.Time `json:"checkOutDate,omitempty" gorm:"column:check_out_date"`

	// Set at checkout.
	AdditionalCharges float64 `json:"additionalCharges" gorm:"column:additional_charges"`
	FinalAmount       float64 `json:"finalAmount" gorm:"column:final_amount"`

	// RoomNumber is denormalized for list views, never persisted.
	RoomNumber string `gorm:"-" json:"roomNumber,omitempty"`
}
