package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"hostel-backend/apperrors"
	"hostel-backend/models"

	"gorm.io/gorm"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingInput is the create/update payload from the bookings page.
type BookingInput struct {
	GuestName    string     `json:"guestName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	RoomID       uint       `json:"roomId"`
	CheckInDate  *time.Time `json:"checkInDate"`
	CheckOutDate *time.Time `json:"checkOutDate"`
}

// bookingNights counts billable nights between two dates, rounding partial
// days up the way the bookings page always has.
func bookingNights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

func (s *BookingService) findRoom(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "room %d not found", roomID)
		}
		return nil, err
	}
	return &room, nil
}

func (s *BookingService) Create(input BookingInput) (*models.Booking, error) {
	input.GuestName = strings.TrimSpace(input.GuestName)
	if input.GuestName == "" {
		return nil, apperrors.Validation("guest name is required")
	}
	if input.CheckInDate == nil || input.CheckOutDate == nil {
		return nil, apperrors.Validation("check-in and check-out dates are required")
	}
	if !input.CheckOutDate.After(*input.CheckInDate) {
		return nil, apperrors.Validation("check-out date must be after check-in date")
	}

	room, err := s.findRoom(input.RoomID)
	if err != nil {
		return nil, err
	}

	nights := bookingNights(*input.CheckInDate, *input.CheckOutDate)
	booking := models.Booking{
		GuestName:     input.GuestName,
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		RoomID:        &room.ID,
		RoomTypeLabel: models.RoomTypeLabelFor(room.Type),
		CheckInDate:   *input.CheckInDate,
		CheckOutDate:  *input.CheckOutDate,
		Nights:        nights,
		PricePerNight: room.PricePerNight,
		TotalAmount:   room.PricePerNight * float64(nights),
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetAll lists bookings, optionally filtered by status.
func (s *BookingService) GetAll(status string) ([]models.Booking, error) {
	var bookings []models.Booking
	q := s.DB.Order("check_in_date ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&bookings).Error
	return bookings, err
}

// GetByDateRange lists bookings whose stay overlaps [from, to].
func (s *BookingService) GetByDateRange(from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("check_in_date <= ? AND check_out_date >= ?", to, from).
		Order("check_in_date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "booking %d not found", id)
		}
		return nil, err
	}
	return &booking, nil
}

// Update merges changed fields and reprices the stay whenever the dates or
// the room change.
func (s *BookingService) Update(id uint, input BookingInput) (*models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(input.GuestName); v != "" {
		booking.GuestName = v
	}
	if v := strings.TrimSpace(input.Email); v != "" {
		booking.Email = v
	}
	if v := strings.TrimSpace(input.Phone); v != "" {
		booking.Phone = v
	}

	reprice := false
	if input.CheckInDate != nil {
		booking.CheckInDate = *input.CheckInDate
		reprice = true
	}
	if input.CheckOutDate != nil {
		booking.CheckOutDate = *input.CheckOutDate
		reprice = true
	}
	if input.RoomID != 0 && (booking.RoomID == nil || *booking.RoomID != input.RoomID) {
		room, err := s.findRoom(input.RoomID)
		if err != nil {
			return nil, err
		}
		booking.RoomID = &room.ID
		booking.RoomTypeLabel = models.RoomTypeLabelFor(room.Type)
		booking.PricePerNight = room.PricePerNight
		reprice = true
	}

	if reprice {
		if !booking.CheckOutDate.After(booking.CheckInDate) {
			return nil, apperrors.Validation("check-out date must be after check-in date")
		}
		booking.Nights = bookingNights(booking.CheckInDate, booking.CheckOutDate)
		booking.TotalAmount = booking.PricePerNight * float64(booking.Nights)
	}

	if err := s.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.Newf(apperrors.KindNotFound, "booking %d not found", id)
	}
	return nil
}

func (s *BookingService) Confirm(id uint) (*models.Booking, error) {
	return s.setStatus(id, models.BookingStatusConfirmed)
}

func (s *BookingService) Cancel(id uint) (*models.Booking, error) {
	return s.setStatus(id, models.BookingStatusCancelled)
}

func (s *BookingService) setStatus(id uint, status string) (*models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking.Status == status {
		return booking, nil
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, apperrors.Newf(apperrors.KindStateConflict,
			"booking %d is cancelled and cannot become %s", id, status)
	}

	if err := s.DB.Model(booking).Update("status", status).Error; err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}
