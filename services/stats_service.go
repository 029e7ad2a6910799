package services

import (
	"fmt"
	"math"
	"time"

	"dbhotel-backend/models"
	"dbhotel-backend/utils"

	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type DashboardSummary struct {
	TotalRooms     int64   `json:"total_rooms"`
	Occupied       int64   `json:"occupied"`
	Available      int64   `json:"available"`
	OccupancyRate  int     `json:"occupancy_rate"`
	TodayCheckIns  int64   `json:"today_check_ins"`
	RevenueToday   float64 `json:"revenue_today"`
}

// Dashboard recomputes the front-page aggregates from the current data on
// every call. Data sizes are tens of rows; nothing is cached.
func (s *StatsService) Dashboard() (*DashboardSummary, error) {
	var out DashboardSummary

	if err := s.DB.Model(&models.Room{}).Count(&out.TotalRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomOccupied).
		Count(&out.Occupied).Error; err != nil {
		return nil, fmt.Errorf("failed to count occupied rooms: %w", err)
	}
	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomAvailable).
		Count(&out.Available).Error; err != nil {
		return nil, fmt.Errorf("failed to count available rooms: %w", err)
	}

	if out.TotalRooms > 0 {
		out.OccupancyRate = int(math.Round(float64(out.Occupied) / float64(out.TotalRooms) * 100))
	}

	today := utils.DateOnly(time.Now())
	if err := s.DB.Model(&models.Booking{}).
		Where("check_in_date = ?", today).
		Count(&out.TodayCheckIns).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's check-ins: %w", err)
	}
	if err := s.DB.Model(&models.Booking{}).
		Where("check_in_date = ?", today).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&out.RevenueToday).Error; err != nil {
		return nil, fmt.Errorf("failed to sum today's revenue: %w", err)
	}

	return &out, nil
}
