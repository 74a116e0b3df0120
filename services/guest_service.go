package services

import (
	"errors"
	"strings"

	"hostel-backend/apperrors"
	"hostel-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// GetAll lists guests newest first, with the room number filled in for the
// admin table.
func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.
		Preload("Room").
		Order("guests.id DESC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}

	for i := range guests {
		if guests[i].RoomID != nil {
			guests[i].RoomNumber = guests[i].Room.RoomNumber
		}
	}
	return guests, nil
}

// GetByRoom lists the guests currently checked into a room, the set the
// check-out modal offers for selection.
func (s *GuestService) GetByRoom(roomID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.
		Where("room_id = ? AND status = ?", roomID, models.GuestStatusCheckedIn).
		Order("bed_number ASC, id ASC").
		Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.Preload("Room").First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "guest %d not found", id)
		}
		return nil, err
	}
	if guest.RoomID != nil {
		guest.RoomNumber = guest.Room.RoomNumber
	}
	return &guest, nil
}

// UpdateContact edits a guest's contact details. Stay fields (room, bed,
// dates, status, amounts) belong to the front-desk engine and are not
// editable here.
func (s *GuestService) UpdateContact(id uint, name, email, phone, idNumber string) (*models.Guest, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if v := strings.TrimSpace(name); v != "" {
		updates["full_name"] = v
	}
	if v := strings.TrimSpace(email); v != "" {
		updates["email"] = v
	}
	if v := strings.TrimSpace(phone); v != "" {
		updates["phone"] = v
	}
	if v := strings.TrimSpace(idNumber); v != "" {
		updates["id_number"] = v
	}
	if len(updates) == 0 {
		return guest, nil
	}

	if err := s.DB.Model(&models.Guest{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
