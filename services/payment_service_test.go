package services

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"hostel-backend/apperrors"
	"hostel-backend/models"

	"gorm.io/gorm"
)

func newPaymentFixture(t *testing.T, db *gorm.DB) (*PaymentService, *models.Booking) {
	t.Helper()

	room := createRoom(t, db, models.Room{RoomNumber: "201", Type: models.RoomTypePrivate, Capacity: 2, PricePerNight: 55})
	checkIn := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	booking, err := NewBookingService(db).Create(BookingInput{
		GuestName:    "Maya Chen",
		RoomID:       room.ID,
		CheckInDate:  timePtr(checkIn),
		CheckOutDate: timePtr(checkIn.AddDate(0, 0, 2)),
	})
	if err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	if _, err := NewBookingService(db).Confirm(booking.ID); err != nil {
		t.Fatalf("failed to confirm booking: %v", err)
	}

	svc := NewPaymentService(db)
	svc.Now = fixedNow
	svc.Approve = AlwaysApprove
	return svc, booking
}

func TestProcessPaymentCreatesTransaction(t *testing.T) {
	db := newTestDB(t)
	svc, booking := newPaymentFixture(t, db)

	transaction, err := svc.ProcessPayment(booking.ID, "card", 110)
	if err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}

	if transaction.Status != models.TransactionStatusPaid {
		t.Errorf("expected paid, got %s", transaction.Status)
	}
	wantRef := fmt.Sprintf("TXN-%03d-%d", transaction.ID, fixedNow().Year())
	if transaction.TransactionRef != wantRef {
		t.Errorf("expected ref %s, got %s", wantRef, transaction.TransactionRef)
	}
	wantReceipt := fmt.Sprintf("RCP-%03d-%d", transaction.ID, fixedNow().Year())
	if transaction.ReceiptNumber != wantReceipt {
		t.Errorf("expected receipt %s, got %s", wantReceipt, transaction.ReceiptNumber)
	}
	if transaction.GuestName != booking.GuestName {
		t.Errorf("expected guest name %s, got %s", booking.GuestName, transaction.GuestName)
	}

	var reloaded models.Booking
	if err := db.First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("failed to reload booking: %v", err)
	}
	if reloaded.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("expected booking marked paid, got %s", reloaded.PaymentStatus)
	}
}

func TestProcessPaymentDeclined(t *testing.T) {
	db := newTestDB(t)
	svc, booking := newPaymentFixture(t, db)
	svc.Approve = func() bool { return false }

	_, err := svc.ProcessPayment(booking.ID, "card", 110)
	if !apperrors.IsKind(err, apperrors.KindPaymentFailed) {
		t.Fatalf("expected payment-failed error, got %v", err)
	}

	// A declined charge leaves nothing behind.
	var count int64
	db.Model(&models.Transaction{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no transactions after decline, got %d", count)
	}
	var reloaded models.Booking
	db.First(&reloaded, booking.ID)
	if reloaded.PaymentStatus != models.PaymentStatusUnpaid {
		t.Errorf("booking payment status changed by declined charge: %s", reloaded.PaymentStatus)
	}
}

func TestProcessPaymentValidation(t *testing.T) {
	db := newTestDB(t)
	svc, booking := newPaymentFixture(t, db)

	if _, err := svc.ProcessPayment(booking.ID, "card", 0); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("zero amount: expected validation error, got %v", err)
	}
	if _, err := svc.ProcessPayment(booking.ID, "", 50); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("missing method: expected validation error, got %v", err)
	}
	if _, err := svc.ProcessPayment(999, "card", 50); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("unknown booking: expected not-found error, got %v", err)
	}
}

func TestApproveWithRateIsDeterministicPerSeed(t *testing.T) {
	run := func() []bool {
		approve := ApproveWithRate(0.5, rand.New(rand.NewSource(7)))
		out := make([]bool, 20)
		for i := range out {
			out[i] = approve()
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRefundPayment(t *testing.T) {
	db := newTestDB(t)
	svc, booking := newPaymentFixture(t, db)

	transaction, err := svc.ProcessPayment(booking.ID, "cash", 110)
	if err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}

	refunded, err := svc.RefundPayment(transaction.ID)
	if err != nil {
		t.Fatalf("RefundPayment returned error: %v", err)
	}
	if refunded.Status != models.TransactionStatusRefunded {
		t.Errorf("expected refunded, got %s", refunded.Status)
	}

	// Only paid transactions can be refunded.
	if _, err := svc.RefundPayment(transaction.ID); !apperrors.IsKind(err, apperrors.KindStateConflict) {
		t.Errorf("double refund: expected state-conflict, got %v", err)
	}
	if _, err := svc.RefundPayment(999); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("unknown transaction: expected not-found error, got %v", err)
	}
}

func TestGetUnpaidBookings(t *testing.T) {
	db := newTestDB(t)
	svc, booking := newPaymentFixture(t, db)

	unpaid, err := svc.GetUnpaidBookings()
	if err != nil {
		t.Fatalf("GetUnpaidBookings returned error: %v", err)
	}
	if len(unpaid) != 1 || unpaid[0].ID != booking.ID {
		t.Fatalf("expected the confirmed booking to be unpaid, got %d rows", len(unpaid))
	}

	if _, err := svc.ProcessPayment(booking.ID, "card", 110); err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}

	unpaid, err = svc.GetUnpaidBookings()
	if err != nil {
		t.Fatalf("GetUnpaidBookings returned error: %v", err)
	}
	if len(unpaid) != 0 {
		t.Errorf("expected no unpaid bookings after payment, got %d", len(unpaid))
	}
}
