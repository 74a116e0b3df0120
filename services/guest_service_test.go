package services

import (
	"testing"

	"hostel-backend/apperrors"
	"hostel-backend/models"
)

func TestGetAllGuestsNewestFirstWithRoomNumber(t *testing.T) {
	db := newTestDB(t)
	desk := newFrontDesk(db)
	svc := NewGuestService(db)
	room := createRoom(t, db, models.Room{RoomNumber: "201", Type: models.RoomTypePrivate, Capacity: 2, PricePerNight: 55})

	if _, err := desk.CheckIn(room.ID, CheckInInput{Name: "First", Email: "f@example.com"}); err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}
	if _, err := desk.CheckIn(room.ID, CheckInInput{Name: "Second", Email: "s@example.com"}); err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}

	guests, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(guests) != 2 {
		t.Fatalf("expected 2 guests, got %d", len(guests))
	}
	if guests[0].FullName != "Second" {
		t.Errorf("expected newest guest first, got %s", guests[0].FullName)
	}
	for _, g := range guests {
		if g.RoomNumber != "201" {
			t.Errorf("expected room number 201 on %s, got %q", g.FullName, g.RoomNumber)
		}
	}
}

func TestGetGuestsByRoom(t *testing.T) {
	db := newTestDB(t)
	desk := newFrontDesk(db)
	svc := NewGuestService(db)
	dorm := createRoom(t, db, models.Room{RoomNumber: "101", Type: models.RoomTypeDorm, Capacity: 4, PricePerNight: 18})
	other := createRoom(t, db, models.Room{RoomNumber: "201", Type: models.RoomTypePrivate, Capacity: 2, PricePerNight: 55})

	stays, err := desk.CheckIn(dorm.ID, CheckInInput{Name: "Stays", Email: "st@example.com", BedNumber: intPtr(2)})
	if err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}
	leaves, err := desk.CheckIn(dorm.ID, CheckInInput{Name: "Leaves", Email: "lv@example.com", BedNumber: intPtr(1)})
	if err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}
	if _, err := desk.CheckIn(other.ID, CheckInInput{Name: "Elsewhere", Email: "el@example.com"}); err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}
	if _, err := desk.CheckOut(leaves.ID, 0); err != nil {
		t.Fatalf("CheckOut returned error: %v", err)
	}

	guests, err := svc.GetByRoom(dorm.ID)
	if err != nil {
		t.Fatalf("GetByRoom returned error: %v", err)
	}
	// Only the currently checked-in guest of this room.
	if len(guests) != 1 || guests[0].ID != stays.ID {
		t.Fatalf("expected only the checked-in guest %d, got %d rows", stays.ID, len(guests))
	}
}

func TestUpdateGuestContact(t *testing.T) {
	db := newTestDB(t)
	desk := newFrontDesk(db)
	svc := NewGuestService(db)
	room := createRoom(t, db, models.Room{RoomNumber: "201", Type: models.RoomTypePrivate, Capacity: 2, PricePerNight: 55})

	guest, err := desk.CheckIn(room.ID, CheckInInput{Name: "Old Name", Email: "old@example.com"})
	if err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}

	updated, err := svc.UpdateContact(guest.ID, "New Name", "", "+49 151 0000", "")
	if err != nil {
		t.Fatalf("UpdateContact returned error: %v", err)
	}
	if updated.FullName != "New Name" || updated.Phone != "+49 151 0000" {
		t.Errorf("contact not updated: %s / %s", updated.FullName, updated.Phone)
	}
	if updated.Email != "old@example.com" {
		t.Errorf("blank email should be ignored, got %q", updated.Email)
	}
	if updated.Status != models.GuestStatusCheckedIn {
		t.Errorf("stay state changed by contact update: %s", updated.Status)
	}

	if _, err := svc.UpdateContact(999, "X", "", "", ""); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("unknown guest: expected not-found error, got %v", err)
	}
}
