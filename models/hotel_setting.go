package models

import "time"

// HotelSetting is a key-value configuration row (check-in time, VAT rate,
// PromptPay ID and so on), grouped by category for the settings screen.
type HotelSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"size:100" json:"category"`
	Name      string    `gorm:"size:255;uniqueIndex" json:"name"`
	Value     string    `gorm:"size:255" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
