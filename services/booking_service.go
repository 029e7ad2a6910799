package services

import (
	"errors"
	"fmt"
	"time"

	"dbhotel-backend/models"
	"dbhotel-backend/utils"

	"gorm.io/gorm"
)

// BookingService owns the booking lifecycle: pricing at creation time and the
// room-status side effects of every status transition.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Nights returns the whole calendar nights between check-in and check-out.
// Zero when check-out is not after check-in; a stay never has negative
// nights. Counting runs over UTC midnights, so a DST-stretched 25-hour day
// is still one night.
func Nights(checkIn, checkOut time.Time) int {
	in := utils.DateOnly(checkIn)
	out := utils.DateOnly(checkOut)
	if !out.After(in) {
		return 0
	}
	return int(out.Sub(in) / (24 * time.Hour))
}

// Total is the booking price: nightly price times nights, zero at zero nights.
func Total(pricePerNight float64, nights int) float64 {
	if nights <= 0 {
		return 0
	}
	return pricePerNight * float64(nights)
}

// allowed booking status transitions; cancellation is reachable from every
// live state, nothing leads out of Cancelled or backward from CheckedOut.
var bookingTransitions = map[models.BookingStatus]map[models.BookingStatus]bool{
	models.BookingConfirmed:  {models.BookingCheckedIn: true, models.BookingCancelled: true},
	models.BookingCheckedIn:  {models.BookingCheckedOut: true, models.BookingCancelled: true},
	models.BookingCheckedOut: {models.BookingCancelled: true},
	models.BookingCancelled:  {},
}

func canTransition(from, to models.BookingStatus) bool {
	allowed, ok := bookingTransitions[from]
	if !ok {
		return false
	}
	return allowed[to]
}

type CreateBookingInput struct {
	CustomerID uint
	RoomID     uint
	CheckIn    time.Time
	CheckOut   time.Time
	Channel    models.BookingChannel
}

// Create validates the customer and room references, prices the stay once,
// and stores the booking as Confirmed/Pending. When the stay starts today the
// room flips to Occupied in the same transaction (booking-for-today occupies
// the room immediately, in addition to the explicit check-in path).
//
// Overlapping bookings on the same room are accepted on purpose: front-desk
// staff resolve conflicts by eye, and the manual room-status override stays
// available either way.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	var created models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, in.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("db error checking customer %d: %w", in.CustomerID, err)
		}

		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
		}

		ref, err := utils.GenerateReferenceCode("BK", 6)
		if err != nil {
			return err
		}

		nights := Nights(in.CheckIn, in.CheckOut)
		created = models.Booking{
			ReferenceCode: ref,
			CustomerID:    customer.ID,
			RoomID:        room.ID,
			CheckInDate:   utils.DateOnly(in.CheckIn),
			CheckOutDate:  utils.DateOnly(in.CheckOut),
			Nights:        nights,
			TotalAmount:   Total(room.PricePerNight, nights),
			Status:        models.BookingConfirmed,
			PaymentStatus: models.PaymentPending,
			Channel:       in.Channel,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if utils.SameDay(in.CheckIn, time.Now()) {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", room.ID).
				Update("status", models.RoomOccupied).Error; err != nil {
				return fmt.Errorf("failed to update room %d status: %w", room.ID, err)
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Customer").Preload("Room").First(&created, created.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &created, nil
}

// Transition moves a booking to newStatus if the lifecycle allows it, and
// applies the room side effect in the same transaction: check-in occupies the
// room, check-out sends it to Cleaning (never straight back to Available).
// Disallowed moves fail with ErrInvalidTransition and leave state untouched.
func (s *BookingService) Transition(bookingID uint, newStatus models.BookingStatus) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to find booking %d: %w", bookingID, err)
		}

		if !canTransition(booking.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if err := tx.Model(&booking).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		var roomStatus models.RoomStatus
		switch newStatus {
		case models.BookingCheckedIn:
			roomStatus = models.RoomOccupied
		case models.BookingCheckedOut:
			roomStatus = models.RoomCleaning
		default:
			// Cancellation does not touch the room; the manual override
			// covers reclaiming it.
			return nil
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Update("status", roomStatus).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", booking.RoomID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Customer").Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &booking, nil
}

// GetAllWithRelations lists bookings newest first with room and customer
// preloaded for the bookings table view.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Customer").
		Preload("Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Customer").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &booking, nil
}
