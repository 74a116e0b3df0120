package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hostel-backend/apperrors"
	"hostel-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MinStatusReasonLen is the shortest accepted reason for putting a room into
// maintenance or cleaning.
const MinStatusReasonLen = 10

// FrontDeskService owns the room occupancy / guest lifecycle transitions.
// Check-in and check-out run inside a single transaction with a row lock on
// the room, so concurrent requests against the same room are serialized and
// occupancy can never overshoot capacity.
type FrontDeskService struct {
	DB *gorm.DB

	// Now is swappable so the nights arithmetic is testable.
	Now func() time.Time
}

func NewFrontDeskService(db *gorm.DB) *FrontDeskService {
	return &FrontDeskService{DB: db, Now: time.Now}
}

// CheckInInput is the guest form from the check-in modal.
type CheckInInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDNumber string `json:"idNumber"`

	// BedNumber is required for dorm rooms.
	BedNumber *int `json:"bedNumber"`

	// PlannedCheckOut is the expected departure from the form. Informational
	// only; the stay is priced at actual checkout.
	PlannedCheckOut *time.Time `json:"checkOutDate"`
}

// CheckOutResult pairs the closed guest record with the amount charged.
type CheckOutResult struct {
	Guest         *models.Guest `json:"guest"`
	AmountCharged float64       `json:"amountCharged"`
}

// lockRoom loads the room under SELECT ... FOR UPDATE where the dialect
// supports it. SQLite (tests) has a single writer, so the lock is skipped.
func lockRoom(tx *gorm.DB, roomID uint) (*models.Room, error) {
	q := tx
	if tx.Dialector.Name() == "mysql" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var room models.Room
	if err := q.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "room %d not found", roomID)
		}
		return nil, err
	}
	return &room, nil
}

// lockGuest loads the guest the same way lockRoom loads the room. Checkout
// validates the guest's status against this row, so it has to be a locking
// read: a snapshot read would let two concurrent checkouts of the same guest
// both see checked-in and release the room twice.
func lockGuest(tx *gorm.DB, guestID uint) (*models.Guest, error) {
	q := tx
	if tx.Dialector.Name() == "mysql" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var guest models.Guest
	if err := q.First(&guest, guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.KindNotFound, "guest %d not found", guestID)
		}
		return nil, err
	}
	return &guest, nil
}

// CheckIn creates a checked-in guest in the given room and bumps occupancy.
// Guest creation and the room update commit together or not at all.
func (s *FrontDeskService) CheckIn(roomID uint, input CheckInInput) (*models.Guest, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" {
		return nil, apperrors.Validation("guest name is required")
	}
	if input.Email == "" {
		return nil, apperrors.Validation("guest email is required")
	}

	var guest *models.Guest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, roomID)
		if err != nil {
			return err
		}

		if room.IsBlocked() {
			return apperrors.Newf(apperrors.KindCapacity,
				"room %s is under %s and cannot accept check-ins", room.RoomNumber, room.Status)
		}
		if room.CurrentOccupancy >= room.Capacity {
			return apperrors.Newf(apperrors.KindCapacity,
				"room %s is at full capacity (%d/%d)", room.RoomNumber, room.CurrentOccupancy, room.Capacity)
		}

		bedIdx := -1
		if room.Type == models.RoomTypeDorm {
			if input.BedNumber == nil {
				return apperrors.Validation("bed number is required for dorm check-in")
			}
			n := *input.BedNumber
			if n < 1 || n > room.Capacity {
				return apperrors.Newf(apperrors.KindValidation,
					"bed %d does not exist in room %s (1-%d)", n, room.RoomNumber, room.Capacity)
			}
			for i, bed := range room.Beds {
				if bed.Number == n {
					if bed.Occupied {
						return apperrors.Newf(apperrors.KindValidation,
							"bed %d in room %s is already occupied", n, room.RoomNumber)
					}
					bedIdx = i
					break
				}
			}
			// Beds may be missing on legacy dorm rows; occupancy count alone
			// still bounds the room, so a bare in-range number is accepted.
		} else {
			// Bed numbers only mean something in a dorm.
			input.BedNumber = nil
		}

		now := s.Now()
		g := models.Guest{
			FullName:        input.Name,
			Email:           input.Email,
			Phone:           input.Phone,
			IDNumber:        input.IDNumber,
			RoomID:          &room.ID,
			BedNumber:       input.BedNumber,
			Status:          models.GuestStatusCheckedIn,
			CheckInDate:     &now,
			PlannedCheckOut: input.PlannedCheckOut,
		}
		if err := tx.Create(&g).Error; err != nil {
			return fmt.Errorf("failed to create guest: %w", err)
		}

		room.CurrentOccupancy++
		if room.CurrentOccupancy >= room.Capacity {
			room.Status = models.RoomStatusOccupied
		}
		if bedIdx >= 0 {
			room.Beds[bedIdx].Occupied = true
			room.Beds[bedIdx].GuestID = &g.ID
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).Updates(map[string]any{
			"current_occupancy": room.CurrentOccupancy,
			"status":            room.Status,
			"beds":              room.Beds,
		}).Error; err != nil {
			return fmt.Errorf("failed to update room occupancy: %w", err)
		}

		guest = &g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return guest, nil
}

// CheckOut closes a checked-in guest's stay, prices it and releases the
// guest's slot in the room. Nights are floored at 1, so a same-day turnaround
// is still billed one night.
func (s *FrontDeskService) CheckOut(guestID uint, additionalCharges float64) (*CheckOutResult, error) {
	if additionalCharges < 0 {
		return nil, apperrors.Validation("additional charges cannot be negative")
	}

	var result *CheckOutResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		guest, err := lockGuest(tx, guestID)
		if err != nil {
			return err
		}
		if guest.Status != models.GuestStatusCheckedIn {
			return apperrors.Newf(apperrors.KindStateConflict,
				"guest %s is %s, not checked-in", guest.FullName, guest.Status)
		}
		if guest.RoomID == nil || guest.CheckInDate == nil {
			return apperrors.Newf(apperrors.KindStateConflict,
				"guest %s has no active stay on record", guest.FullName)
		}

		room, err := lockRoom(tx, *guest.RoomID)
		if err != nil {
			return err
		}

		now := s.Now()
		nights := int(now.Sub(*guest.CheckInDate).Hours() / 24)
		if nights < 1 {
			nights = 1
		}
		finalAmount := float64(nights)*room.PricePerNight + additionalCharges

		guest.Status = models.GuestStatusCheckedOut
		guest.CheckOutDate = &now
		guest.AdditionalCharges = additionalCharges
		guest.FinalAmount = finalAmount
		if err := tx.Model(&models.Guest{}).Where("id = ?", guest.ID).Updates(map[string]any{
			"status":             guest.Status,
			"check_out_date":     guest.CheckOutDate,
			"additional_charges": guest.AdditionalCharges,
			"final_amount":       guest.FinalAmount,
		}).Error; err != nil {
			return fmt.Errorf("failed to update guest: %w", err)
		}

		room.CurrentOccupancy--
		if room.CurrentOccupancy < 0 {
			room.CurrentOccupancy = 0
		}
		// A partial release of a shared room keeps its status; only an empty
		// room flips back to available.
		if room.CurrentOccupancy == 0 {
			room.Status = models.RoomStatusAvailable
		}
		for i, bed := range room.Beds {
			if bed.GuestID != nil && *bed.GuestID == guest.ID {
				room.Beds[i].Occupied = false
				room.Beds[i].GuestID = nil
			}
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).Updates(map[string]any{
			"current_occupancy": room.CurrentOccupancy,
			"status":            room.Status,
			"beds":              room.Beds,
		}).Error; err != nil {
			return fmt.Errorf("failed to update room occupancy: %w", err)
		}

		result = &CheckOutResult{Guest: guest, AmountCharged: finalAmount}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StatusChangeResult carries the updated room plus a warning when the room
// still holds guests after the change.
type StatusChangeResult struct {
	Room    *models.Room `json:"room"`
	Warning string       `json:"warning,omitempty"`
}

// SetRoomStatus applies a manual status change. Occupancy and occupants are
// never touched; putting an occupied room into maintenance is allowed and
// only surfaces a warning.
func (s *FrontDeskService) SetRoomStatus(roomID uint, newStatus, reason string) (*StatusChangeResult, error) {
	switch newStatus {
	case models.RoomStatusMaintenance, models.RoomStatusCleaning:
		if len(strings.TrimSpace(reason)) < MinStatusReasonLen {
			return nil, apperrors.Newf(apperrors.KindValidation,
				"a reason of at least %d characters is required for %s", MinStatusReasonLen, newStatus)
		}
	case models.RoomStatusAvailable:
		// No reason required to release a room.
	default:
		return nil, apperrors.Newf(apperrors.KindValidation,
			"status %q cannot be set manually", newStatus)
	}

	var result *StatusChangeResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, roomID)
		if err != nil {
			return err
		}

		if room.Status == newStatus {
			// Re-issuing the current status is a no-op.
			result = &StatusChangeResult{Room: room}
			return nil
		}

		storedReason := strings.TrimSpace(reason)
		if newStatus == models.RoomStatusAvailable {
			storedReason = ""
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).Updates(map[string]any{
			"status":        newStatus,
			"status_reason": storedReason,
		}).Error; err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}
		room.Status = newStatus
		room.StatusReason = storedReason

		result = &StatusChangeResult{Room: room}
		if room.CurrentOccupancy > 0 &&
			(newStatus == models.RoomStatusMaintenance || newStatus == models.RoomStatusCleaning) {
			result.Warning = fmt.Sprintf(
				"room %s still has %d checked-in guest(s); they are not checked out by this change",
				room.RoomNumber, room.CurrentOccupancy)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
