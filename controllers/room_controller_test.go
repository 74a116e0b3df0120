package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	rc := NewRoomController(services.NewRoomService(db), services.NewFrontDeskService(db))
	gc := NewGuestController(services.NewGuestService(db), services.NewFrontDeskService(db))

	r := gin.New()
	r.GET("/api/rooms", rc.GetRooms)
	r.POST("/api/rooms", rc.CreateRoom)
	r.POST("/api/rooms/:id/checkin", rc.CheckIn)
	r.POST("/api/rooms/:id/status", rc.SetRoomStatus)
	r.POST("/api/guests/:id/checkout", gc.CheckOut)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckInEndpointStatusCodes(t *testing.T) {
	r, db := newTestRouter(t)

	room := models.Room{RoomNumber: "101", Type: models.RoomTypeDorm, Capacity: 1, PricePerNight: 18}
	if err := services.NewRoomService(db).Create(&room); err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	path := fmt.Sprintf("/api/rooms/%d/checkin", room.ID)

	// Dorm check-in without a bed number is a 400.
	w := doJSON(t, r, http.MethodPost, path, gin.H{"name": "A", "email": "a@example.com"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing bed: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, path, gin.H{"name": "A", "email": "a@example.com", "bedNumber": 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("valid check-in: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	// Full room is a 409.
	w = doJSON(t, r, http.MethodPost, path, gin.H{"name": "B", "email": "b@example.com", "bedNumber": 1})
	if w.Code != http.StatusConflict {
		t.Errorf("full room: expected 409, got %d", w.Code)
	}

	// Unknown room is a 404.
	w = doJSON(t, r, http.MethodPost, "/api/rooms/999/checkin", gin.H{"name": "C", "email": "c@example.com"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown room: expected 404, got %d", w.Code)
	}
}

func TestStatusEndpointReasonValidation(t *testing.T) {
	r, db := newTestRouter(t)

	room := models.Room{RoomNumber: "201", Type: models.RoomTypePrivate, Capacity: 2, PricePerNight: 55}
	if err := services.NewRoomService(db).Create(&room); err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	path := fmt.Sprintf("/api/rooms/%d/status", room.ID)

	w := doJSON(t, r, http.MethodPost, path, gin.H{"status": "maintenance", "reason": "ab"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("short reason: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, path, gin.H{"status": "maintenance", "reason": "Bathroom plumbing repair"})
	if w.Code != http.StatusOK {
		t.Fatalf("valid reason: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Room models.Room `json:"room"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Data.Room.Status != models.RoomStatusMaintenance {
		t.Errorf("unexpected response: %s", w.Body.String())
	}
}

func TestCheckOutEndpointNotCheckedIn(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/guests/999/checkout", gin.H{"additionalCharges": 0})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown guest: expected 404, got %d", w.Code)
	}
}
