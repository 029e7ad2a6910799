package models

import (
	"gorm.io/gorm"
)

type CustomerType string

const (
	CustomerRegular CustomerType = "Regular"
	CustomerVIP     CustomerType = "VIP"
)

type Customer struct {
	gorm.Model

	CustomerCode string       `json:"customer_code" gorm:"column:customer_code;uniqueIndex;type:varchar(50)"`
	Name         string       `json:"name" gorm:"type:varchar(255)"`
	Phone        string       `json:"phone" gorm:"type:varchar(50)"`
	Email        string       `json:"email,omitempty" gorm:"type:varchar(150)"`
	IDCard       string       `json:"id_card,omitempty" gorm:"column:id_card;type:varchar(50)"`
	Passport     string       `json:"passport,omitempty" gorm:"type:varchar(50)"`
	CustomerType CustomerType `json:"customer_type" gorm:"column:customer_type;type:varchar(20);default:Regular"`
	DateOfBirth  string       `json:"date_of_birth,omitempty" gorm:"column:date_of_birth;type:varchar(20)"`
	Address      string       `json:"address,omitempty" gorm:"type:text"`
	Notes        string       `json:"notes,omitempty" gorm:"type:text"`
}
