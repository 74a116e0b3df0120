package services

import (
	"math"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// DashboardMetrics is the figure set the dashboard cards render.
type DashboardMetrics struct {
	OccupancyRate   int     `json:"occupancyRate"`
	TodayCheckIns   int64   `json:"todayCheckIns"`
	TodayCheckOuts  int64   `json:"todayCheckOuts"`
	AvailableRooms  int64   `json:"availableRooms"`
	TodayRevenue    float64 `json:"todayRevenue"`
	TotalGuests     int64   `json:"totalGuests"`
	CheckedInGuests int64   `json:"checkedInGuests"`
}

type DashboardService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Now: time.Now}
}

// GetMetrics computes the dashboard figures from the live room, guest and
// transaction tables.
func (s *DashboardService) GetMetrics() (*DashboardMetrics, error) {
	metrics := &DashboardMetrics{}

	type capacityRow struct {
		TotalCapacity  int
		TotalOccupancy int
	}
	var capacity capacityRow
	err := s.DB.Model(&models.Room{}).
		Select("COALESCE(SUM(capacity), 0) AS total_capacity, COALESCE(SUM(current_occupancy), 0) AS total_occupancy").
		Scan(&capacity).Error
	if err != nil {
		return nil, err
	}
	if capacity.TotalCapacity > 0 {
		metrics.OccupancyRate = int(math.Round(
			100 * float64(capacity.TotalOccupancy) / float64(capacity.TotalCapacity)))
	}

	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomStatusAvailable).
		Count(&metrics.AvailableRooms).Error; err != nil {
		return nil, err
	}

	now := s.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	if err := s.DB.Model(&models.Guest{}).
		Where("check_in_date >= ? AND check_in_date < ?", dayStart, dayEnd).
		Count(&metrics.TodayCheckIns).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Guest{}).
		Where("status = ? AND check_out_date >= ? AND check_out_date < ?",
			models.GuestStatusCheckedOut, dayStart, dayEnd).
		Count(&metrics.TodayCheckOuts).Error; err != nil {
		return nil, err
	}

	var revenue struct{ Total float64 }
	err = s.DB.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("status = ? AND date >= ? AND date < ?",
			models.TransactionStatusPaid, dayStart, dayEnd).
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	metrics.TodayRevenue = revenue.Total

	if err := s.DB.Model(&models.Guest{}).Count(&metrics.TotalGuests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Guest{}).
		Where("status = ?", models.GuestStatusCheckedIn).
		Count(&metrics.CheckedInGuests).Error; err != nil {
		return nil, err
	}

	return metrics, nil
}
