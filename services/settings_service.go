package services

import (
	"errors"

	"dbhotel-backend/models"

	"gorm.io/gorm"
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (s *SettingsService) GetAll() ([]models.HotelSetting, error) {
	var settings []models.HotelSetting
	err := s.DB.Order("category, name").Find(&settings).Error
	return settings, err
}

// Upsert updates the setting with the given name, or creates it when the name
// is new.
func (s *SettingsService) Upsert(category, name, value string) (*models.HotelSetting, error) {
	var setting models.HotelSetting
	err := s.DB.Where("name = ?", name).First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		setting = models.HotelSetting{Category: category, Name: name, Value: value}
		if err := s.DB.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}

	setting.Value = value
	if category != "" {
		setting.Category = category
	}
	if err := s.DB.Save(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
