package services

import "errors"

var (
	ErrRoomNotFound     = errors.New("room_not_found")
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrBookingNotFound  = errors.New("booking_not_found")

	ErrInvalidTransition = errors.New("invalid_transition")

	ErrAssistantBusy  = errors.New("assistant_busy")
	ErrScanIncomplete = errors.New("scan_incomplete")
)
