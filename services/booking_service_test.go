package services

import (
	"testing"
	"time"

	"dbhotel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNights(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two nights", base, base.AddDate(0, 0, 2), 2},
		{"one night", base, base.AddDate(0, 0, 1), 1},
		{"same day", base, base, 0},
		{"checkout before checkin", base.AddDate(0, 0, 3), base, 0},
		{"clock portion is ignored", base.Add(18 * time.Hour), base.AddDate(0, 0, 1).Add(2 * time.Hour), 1},
		{"long stay", base, base.AddDate(0, 0, 30), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNightsAcrossDSTFallBack(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// DST ends during this night, so it spans 25 wall-clock hours
	in := time.Date(2026, 10, 25, 0, 0, 0, 0, berlin)
	out := time.Date(2026, 10, 26, 0, 0, 0, 0, berlin)
	assert.Equal(t, 1, Nights(in, out))
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 800.0, Total(400, 2))
	assert.Equal(t, 0.0, Total(400, 0))
	assert.Equal(t, 0.0, Total(400, -1))
	assert.Equal(t, 1500.0, Total(500, 3))
}

func TestCreateBookingForTodayOccupiesRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "A101", 400, models.RoomAvailable)
	customer := seedCustomer(t, db, "Chatri Mongkol")

	booking, err := svc.Create(CreateBookingInput{
		CustomerID: customer.ID,
		RoomID:     room.ID,
		CheckIn:    today(),
		CheckOut:   today().AddDate(0, 0, 2),
		Channel:    models.ChannelWalkIn,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, booking.Nights)
	assert.Equal(t, 800.0, booking.TotalAmount)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, models.PaymentPending, booking.PaymentStatus)
	assert.NotEmpty(t, booking.ReferenceCode)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomOccupied, got.Status, "booking for today must occupy the room immediately")
}

func TestCreateBookingForFutureLeavesRoomAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "A102", 400, models.RoomAvailable)
	customer := seedCustomer(t, db, "Somchai Rakchart")

	booking, err := svc.Create(CreateBookingInput{
		CustomerID: customer.ID,
		RoomID:     room.ID,
		CheckIn:    today().AddDate(0, 0, 3),
		CheckOut:   today().AddDate(0, 0, 4),
		Channel:    models.ChannelPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, booking.Nights)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomAvailable, got.Status)
}

func TestCreateBookingZeroNightsHasZeroTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "A103", 400, models.RoomAvailable)
	customer := seedCustomer(t, db, "Kamonlak Jaidee")

	booking, err := svc.Create(CreateBookingInput{
		CustomerID: customer.ID,
		RoomID:     room.ID,
		CheckIn:    today().AddDate(0, 0, 5),
		CheckOut:   today().AddDate(0, 0, 5),
		Channel:    models.ChannelOnline,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, booking.Nights)
	assert.Equal(t, 0.0, booking.TotalAmount)
}

func TestCreateBookingRejectsUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "A104", 400, models.RoomAvailable)
	customer := seedCustomer(t, db, "Chatri Mongkol")

	_, err := svc.Create(CreateBookingInput{
		CustomerID: customer.ID + 999,
		RoomID:     room.ID,
		CheckIn:    today(),
		CheckOut:   today().AddDate(0, 0, 1),
		Channel:    models.ChannelWalkIn,
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.Create(CreateBookingInput{
		CustomerID: customer.ID,
		RoomID:     room.ID + 999,
		CheckIn:    today(),
		CheckOut:   today().AddDate(0, 0, 1),
		Channel:    models.ChannelWalkIn,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count, "failed creates must not leave partial writes")
}

func TestOverlappingBookingsAreAccepted(t *testing.T) {
	// Overlap checking is intentionally absent: front-desk staff resolve
	// conflicts by eye. This pins the permissive behavior.
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "B110", 400, models.RoomAvailable)
	c1 := seedCustomer(t, db, "Chatri Mongkol")
	c2 := seedCustomer(t, db, "Somchai Rakchart")

	in := today().AddDate(0, 0, 1)
	out := today().AddDate(0, 0, 3)

	_, err := svc.Create(CreateBookingInput{CustomerID: c1.ID, RoomID: room.ID, CheckIn: in, CheckOut: out, Channel: models.ChannelWalkIn})
	require.NoError(t, err)
	_, err = svc.Create(CreateBookingInput{CustomerID: c2.ID, RoomID: room.ID, CheckIn: in, CheckOut: out, Channel: models.ChannelLine})
	require.NoError(t, err)

	var count int64
	db.Model(&models.Booking{}).Where("room_id = ?", room.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func makeBooking(t *testing.T, svc *BookingService, customerID, roomID uint, status models.BookingStatus) *models.Booking {
	t.Helper()

	booking, err := svc.Create(CreateBookingInput{
		CustomerID: customerID,
		RoomID:     roomID,
		CheckIn:    today().AddDate(0, 0, 1),
		CheckOut:   today().AddDate(0, 0, 2),
		Channel:    models.ChannelWalkIn,
	})
	require.NoError(t, err)

	for _, step := range pathTo(status) {
		booking, err = svc.Transition(booking.ID, step)
		require.NoError(t, err)
	}
	return booking
}

// pathTo walks the linear lifecycle up to the wanted state.
func pathTo(status models.BookingStatus) []models.BookingStatus {
	switch status {
	case models.BookingCheckedIn:
		return []models.BookingStatus{models.BookingCheckedIn}
	case models.BookingCheckedOut:
		return []models.BookingStatus{models.BookingCheckedIn, models.BookingCheckedOut}
	case models.BookingCancelled:
		return []models.BookingStatus{models.BookingCancelled}
	default:
		return nil
	}
}

func TestTransitionCheckInOccupiesRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "A201", 500, models.RoomAvailable)
	customer := seedCustomer(t, db, "Kamonlak Jaidee")
	booking := makeBooking(t, svc, customer.ID, room.ID, models.BookingConfirmed)

	updated, err := svc.Transition(booking.ID, models.BookingCheckedIn)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCheckedIn, updated.Status)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomOccupied, got.Status)
}

func TestTransitionCheckOutSendsRoomToCleaning(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "A202", 500, models.RoomAvailable)
	customer := seedCustomer(t, db, "Chatri Mongkol")
	booking := makeBooking(t, svc, customer.ID, room.ID, models.BookingCheckedIn)

	updated, err := svc.Transition(booking.ID, models.BookingCheckedOut)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCheckedOut, updated.Status)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomCleaning, got.Status, "checkout must go through Cleaning, never straight to Available")
}

func TestTransitionRejectsBackwardMoves(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "A203", 500, models.RoomAvailable)
	customer := seedCustomer(t, db, "Somchai Rakchart")
	booking := makeBooking(t, svc, customer.ID, room.ID, models.BookingCheckedOut)

	_, err := svc.Transition(booking.ID, models.BookingCheckedIn)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// state untouched on failure
	var got models.Booking
	require.NoError(t, db.First(&got, booking.ID).Error)
	assert.Equal(t, models.BookingCheckedOut, got.Status)

	var gotRoom models.Room
	require.NoError(t, db.First(&gotRoom, room.ID).Error)
	assert.Equal(t, models.RoomCleaning, gotRoom.Status)
}

func TestTransitionCancelReachableFromLiveStates(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "A204", 500, models.RoomAvailable)
	customer := seedCustomer(t, db, "Chatri Mongkol")

	confirmed := makeBooking(t, svc, customer.ID, room.ID, models.BookingConfirmed)
	cancelled, err := svc.Transition(confirmed.ID, models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)

	// nothing leads out of Cancelled
	_, err = svc.Transition(cancelled.ID, models.BookingCheckedIn)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Transition(cancelled.ID, models.BookingCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionCancelDoesNotTouchRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	room := seedRoom(t, db, "A205", 500, models.RoomAvailable)
	customer := seedCustomer(t, db, "Kamonlak Jaidee")
	booking := makeBooking(t, svc, customer.ID, room.ID, models.BookingCheckedIn)

	_, err := svc.Transition(booking.ID, models.BookingCancelled)
	require.NoError(t, err)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomOccupied, got.Status, "cancellation leaves the room to the manual override")
}

func TestTransitionUnknownBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.Transition(12345, models.BookingCheckedIn)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
