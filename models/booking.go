package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "Confirmed"
	BookingCheckedIn  BookingStatus = "CheckedIn"
	BookingCheckedOut BookingStatus = "CheckedOut"
	BookingCancelled  BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPartial PaymentStatus = "Partial"
)

type BookingChannel string

const (
	ChannelWalkIn BookingChannel = "Walk-in"
	ChannelPhone  BookingChannel = "Phone"
	ChannelLine   BookingChannel = "Line"
	ChannelOnline BookingChannel = "Online"
)

func ParseBookingChannel(s string) (BookingChannel, error) {
	switch BookingChannel(s) {
	case ChannelWalkIn, ChannelPhone, ChannelLine, ChannelOnline:
		return BookingChannel(s), nil
	default:
		return "", fmt.Errorf("unknown booking channel: %s", s)
	}
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code"`
	CustomerID    uint   `gorm:"index;column:customer_id" json:"customer_id"`
	RoomID        uint   `gorm:"index;column:room_id" json:"room_id"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"check_out_date"`
	Nights       int       `gorm:"column:nights" json:"nights"`

	// Computed once at creation from the room's nightly price, never
	// recomputed when inputs change later.
	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`

	Status        BookingStatus  `gorm:"column:status;size:32" json:"status"`
	PaymentStatus PaymentStatus  `gorm:"column:payment_status;size:32" json:"payment_status"`
	Channel       BookingChannel `gorm:"column:channel;size:32" json:"channel"`

	Room     Room     `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Customer Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
}
