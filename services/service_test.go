package services

import (
	"testing"
	"time"

	"hostel-backend/config"
	"hostel-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

// fixedNow pins "now" so nights arithmetic and today-bucketing are stable.
func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

func createRoom(t *testing.T, db *gorm.DB, room models.Room) *models.Room {
	t.Helper()
	svc := NewRoomService(db)
	if err := svc.Create(&room); err != nil {
		t.Fatalf("failed to create room %s: %v", room.RoomNumber, err)
	}
	return &room
}

func reloadRoom(t *testing.T, db *gorm.DB, id uint) *models.Room {
	t.Helper()
	var room models.Room
	if err := db.First(&room, id).Error; err != nil {
		t.Fatalf("failed to reload room %d: %v", id, err)
	}
	return &room
}

func reloadGuest(t *testing.T, db *gorm.DB, id uint) *models.Guest {
	t.Helper()
	var guest models.Guest
	if err := db.First(&guest, id).Error; err != nil {
		t.Fatalf("failed to reload guest %d: %v", id, err)
	}
	return &guest
}

func intPtr(n int) *int { return &n }
