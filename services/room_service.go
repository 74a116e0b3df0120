package services

import (
	"errors"
	"strings"

	"hostel-backend/apperrors"
	"hostel-backend/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

const mysqlErrDuplicateEntry = 1062

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}
	// SQLite in tests reports unique violations as plain error text.
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isValidRoomType(t string) bool {
	switch t {
	case models.RoomTypeDorm, models.RoomTypePrivate, models.RoomTypeShared:
		return true
	}
	return false
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return apperrors.Validation("room number is required")
	}
	if !isValidRoomType(room.Type) {
		return apperrors.Newf(apperrors.KindValidation, "unknown room type %q", room.Type)
	}
	if room.Capacity <= 0 {
		return apperrors.Validation("room capacity must be a positive number")
	}

	// New rooms always start empty and available.
	room.CurrentOccupancy = 0
	room.Status = models.RoomStatusAvailable

	if room.Type == models.RoomTypeDorm && len(room.Beds) == 0 {
		beds := make([]models.Bed, 0, room.Capacity)
		for i := 1; i <= room.Capacity; i++ {
			beds = append(beds, models.Bed{Number: i})
		}
		room.Beds = datatypes.NewJSONSlice(beds)
	}

	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.Newf(apperrors.KindStateConflict,
				"room number %q already exists", room.RoomNumber)
		}
		return err
	}
	return nil
}

// GetAll lists rooms, optionally filtered by status.
func (s *RoomService) GetAll(status string) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.Order("room_number ASC")
	if status != "" {
		if !models.IsValidRoomStatus(status) {
			return nil, apperrors.Newf(apperrors.KindValidation, "unknown room status %q", status)
		}
		q = q.Where("status = ?", status)
	}
	err := q.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "room %d not found", id)
		}
		return nil, err
	}
	return &room, nil
}

// Update merges caller-provided fields into the room. Identity, occupancy and
// status are stripped: occupancy and status belong to the front-desk engine.
func (s *RoomService) Update(id uint, updates map[string]any) (*models.Room, error) {
	for _, field := range []string{
		"id", "ID", "created_at", "createdAt", "updated_at", "updatedAt", "deleted_at",
		"current_occupancy", "currentOccupancy", "status", "status_reason", "statusReason", "beds",
	} {
		delete(updates, field)
	}

	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return room, nil
	}

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, apperrors.New(apperrors.KindStateConflict, "room number already exists")
		}
		return nil, err
	}
	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.Newf(apperrors.KindNotFound, "room %d not found", id)
	}
	return nil
}

// AvailableBeds returns the free bed numbers of a dorm room. Non-dorm rooms
// have no assignable beds and return an empty list.
func (s *RoomService) AvailableBeds(id uint) ([]int, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room.Type != models.RoomTypeDorm {
		return []int{}, nil
	}

	free := []int{}
	if len(room.Beds) > 0 {
		for _, bed := range room.Beds {
			if !bed.Occupied {
				free = append(free, bed.Number)
			}
		}
		return free, nil
	}

	// Legacy dorm rows without bed slots: derive from the occupancy count.
	for i := room.CurrentOccupancy + 1; i <= room.Capacity; i++ {
		free = append(free, i)
	}
	return free, nil
}
