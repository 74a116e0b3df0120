package models

import (
	"time"
)

// Transaction statuses.
const (
	TransactionStatusPaid     = "paid"
	TransactionStatusPending  = "pending"
	TransactionStatusRefunded = "refunded"
)

// Transaction is one payment record against a booking.
type Transaction struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	BookingID uint    `gorm:"index;column:booking_id" json:"bookingId"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"-"`

	GuestName     string    `json:"guestName" gorm:"column:guest_name"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod" gorm:"column:payment_method;type:varchar(30)"`
	Date          time.Time `json:"date"`

	Status string `json:"status" gorm:"type:varchar(20);index"`

	// TransactionRef / ReceiptNumber follow the front desk's printed formats,
	// e.g. TXN-007-2026 and RCP-007-2026.
	TransactionRef string `json:"transactionId" gorm:"column:transaction_ref;type:varchar(40);uniqueIndex"`
	ReceiptNumber  string `json:"receiptNumber" gorm:"column:receipt_number;type:varchar(40)"`
}
