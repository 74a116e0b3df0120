package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Payment statuses stamped on a booking once a transaction settles.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestName string `json:"guestName" gorm:"column:guest_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	RoomID *uint `gorm:"column:room_id;index" json:"roomId,omitempty"`
	Room   Room  `gorm:"foreignKey:RoomID" json:"-"`

	// RoomTypeLabel is the display label derived from the room type
	// ("Dorm Bed", "Shared Room", "Private Room").
	RoomTypeLabel string `json:"roomType" gorm:"column:room_type_label;type:varchar(50)"`

	CheckInDate  time.Time `json:"checkInDate" gorm:"column:check_in_date"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"column:check_out_date"`

	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight" gorm:"column:price_per_night"`
	TotalAmount   float64 `json:"totalAmount" gorm:"column:total_amount"`

	Status        string `json:"status" gorm:"type:varchar(20);index;default:pending"`
	PaymentStatus string `json:"paymentStatus" gorm:"column:payment_status;type:varchar(20);default:unpaid"`
}

// RoomTypeLabelFor maps a room type to the booking display label the
// original frontend used.
func RoomTypeLabelFor(roomType string) string {
	switch roomType {
	case RoomTypeDorm:
		return "Dorm Bed"
	case RoomTypeShared:
		return "Shared Room"
	default:
		return "Private Room"
	}
}
