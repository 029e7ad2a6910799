package services

import (
	"errors"
	"fmt"

	"dbhotel-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(room *models.Room) error {
	return s.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(room).Error
}

// SetStatus is the manual override for housekeeping and maintenance. It is
// never validated against active bookings: front desk can always flip a room,
// even while a CheckedIn booking still references it.
func (s *RoomService) SetStatus(id uint, status models.RoomStatus) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if err := s.DB.Model(&room).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update room %d status: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) Delete(id uint) error {
	return s.DB.Delete(&models.Room{}, id).Error
}
