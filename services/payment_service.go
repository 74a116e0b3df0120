package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"hostel-backend/apperrors"
	"hostel-backend/models"

	"gorm.io/gorm"
)

// PaymentService records transactions against bookings. There is no real
// gateway: whether a charge goes through is decided by Approve, which is
// injectable so tests and demos stay deterministic.
type PaymentService struct {
	DB *gorm.DB

	Now     func() time.Time
	Approve func() bool
}

// ApproveWithRate builds an approval function that succeeds with the given
// probability using the supplied source.
func ApproveWithRate(rate float64, r *rand.Rand) func() bool {
	return func() bool {
		return r.Float64() < rate
	}
}

// AlwaysApprove accepts every charge.
func AlwaysApprove() bool { return true }

func NewPaymentService(db *gorm.DB) *PaymentService {
	// 90% acceptance, matching the front desk's demo behavior.
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &PaymentService{
		DB:      db,
		Now:     time.Now,
		Approve: ApproveWithRate(0.9, r),
	}
}

func (s *PaymentService) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.DB.Order("date DESC").Find(&transactions).Error
	return transactions, err
}

func (s *PaymentService) GetByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.DB.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "transaction %d not found", id)
		}
		return nil, err
	}
	return &transaction, nil
}

// GetUnpaidBookings lists confirmed bookings with no paid transaction yet,
// the set the payments page offers for collection.
func (s *PaymentService) GetUnpaidBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("status = ?", models.BookingStatusConfirmed).
		Where("id NOT IN (?)",
			s.DB.Model(&models.Transaction{}).
				Select("booking_id").
				Where("status = ?", models.TransactionStatusPaid),
		).
		Order("check_in_date ASC").
		Find(&bookings).Error
	return bookings, err
}

// ProcessPayment charges a booking. A declined charge is reported as-is and
// is never retried here; the operator re-invokes it.
func (s *PaymentService) ProcessPayment(bookingID uint, paymentMethod string, amount float64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.Validation("payment amount must be positive")
	}
	if paymentMethod == "" {
		return nil, apperrors.Validation("payment method is required")
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "booking %d not found", bookingID)
		}
		return nil, err
	}

	if !s.Approve() {
		return nil, apperrors.New(apperrors.KindPaymentFailed,
			"payment processing failed, please try again")
	}

	var transaction models.Transaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		transaction = models.Transaction{
			BookingID:     booking.ID,
			GuestName:     booking.GuestName,
			Amount:        amount,
			PaymentMethod: paymentMethod,
			Date:          s.Now(),
			Status:        models.TransactionStatusPaid,
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		// Receipt numbering uses the transaction id, so it is assigned after
		// the insert inside the same transaction.
		year := transaction.Date.Year()
		transaction.TransactionRef = fmt.Sprintf("TXN-%03d-%d", transaction.ID, year)
		transaction.ReceiptNumber = fmt.Sprintf("RCP-%03d-%d", transaction.ID, year)
		if err := tx.Model(&transaction).Updates(map[string]any{
			"transaction_ref": transaction.TransactionRef,
			"receipt_number":  transaction.ReceiptNumber,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Update("payment_status", models.PaymentStatusPaid).Error
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// RefundPayment flips a paid transaction to refunded. Anything else is a
// state conflict.
func (s *PaymentService) RefundPayment(transactionID uint) (*models.Transaction, error) {
	transaction, err := s.GetByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.Status != models.TransactionStatusPaid {
		return nil, apperrors.Newf(apperrors.KindStateConflict,
			"only paid transactions can be refunded; transaction %d is %s",
			transactionID, transaction.Status)
	}

	if err := s.DB.Model(transaction).Update("status", models.TransactionStatusRefunded).Error; err != nil {
		return nil, err
	}
	transaction.Status = models.TransactionStatusRefunded
	return transaction, nil
}
