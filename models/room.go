package models

import (
	"fmt"

	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomCleaning    RoomStatus = "Cleaning"
	RoomMaintenance RoomStatus = "Maintenance"
)

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return RoomStatus(s), nil
	default:
		return "", fmt.Errorf("unknown room status: %s", s)
	}
}

type Room struct {
	gorm.Model

	RoomNumber    string     `json:"room_number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Building      string     `json:"building" gorm:"type:varchar(50)"`
	Floor         int        `json:"floor"`
	RoomType      string     `json:"room_type" gorm:"column:room_type;type:varchar(100)"`
	PricePerNight float64    `json:"price_per_night" gorm:"column:price_per_night"`
	Status        RoomStatus `json:"status" gorm:"type:varchar(32)"`
	MaxOccupancy  int        `json:"max_occupancy" gorm:"column:max_occupancy"`
}
