package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model

	Category    string    `json:"category" gorm:"type:varchar(100)"`
	Description string    `json:"description" gorm:"type:text"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	PaidBy      string    `json:"paid_by" gorm:"column:paid_by;type:varchar(100)"`
}
