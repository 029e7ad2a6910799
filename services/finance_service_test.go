package services

import (
	"testing"
	"time"

	"dbhotel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentProgressesPartialToPaid(t *testing.T) {
	db := newTestDB(t)
	bookingSvc := NewBookingService(db)
	svc := NewFinanceService(db)

	room := seedRoom(t, db, "A101", 400, models.RoomAvailable)
	customer := seedCustomer(t, db, "Kamonlak Jaidee")
	booking, err := bookingSvc.Create(CreateBookingInput{
		CustomerID: customer.ID, RoomID: room.ID,
		CheckIn: today().AddDate(0, 0, 1), CheckOut: today().AddDate(0, 0, 3),
		Channel: models.ChannelPhone,
	})
	require.NoError(t, err)
	require.Equal(t, 800.0, booking.TotalAmount)
	require.Equal(t, models.PaymentPending, booking.PaymentStatus)

	updated, err := svc.RecordPayment(booking.ID, 300, models.MethodCash)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPartial, updated.PaymentStatus)

	updated, err = svc.RecordPayment(booking.ID, 500, models.MethodQRCode)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("booking_id = ?", booking.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count, "each payment leaves a transaction row")
}

func TestRecordPaymentOverpaymentStaysPaid(t *testing.T) {
	db := newTestDB(t)
	bookingSvc := NewBookingService(db)
	svc := NewFinanceService(db)

	room := seedRoom(t, db, "A201", 500, models.RoomAvailable)
	customer := seedCustomer(t, db, "Somchai Rakchart")
	booking, err := bookingSvc.Create(CreateBookingInput{
		CustomerID: customer.ID, RoomID: room.ID,
		CheckIn: today().AddDate(0, 0, 1), CheckOut: today().AddDate(0, 0, 2),
		Channel: models.ChannelWalkIn,
	})
	require.NoError(t, err)

	updated, err := svc.RecordPayment(booking.ID, 9999, models.MethodTransfer)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
}

func TestRecordPaymentUnknownBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewFinanceService(db)

	_, err := svc.RecordPayment(9999, 100, models.MethodCash)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "failed payment must not leave a transaction")
}

func TestFinanceSummaryNetsIncomeAgainstExpenses(t *testing.T) {
	db := newTestDB(t)
	bookingSvc := NewBookingService(db)
	svc := NewFinanceService(db)

	room := seedRoom(t, db, "B101", 400, models.RoomAvailable)
	customer := seedCustomer(t, db, "Chatri Mongkol")
	_, err := bookingSvc.Create(CreateBookingInput{
		CustomerID: customer.ID, RoomID: room.ID,
		CheckIn: today(), CheckOut: today().AddDate(0, 0, 3),
		Channel: models.ChannelOnline,
	})
	require.NoError(t, err)

	require.NoError(t, svc.CreateExpense(&models.Expense{
		Description: "Laundry service", Amount: 350, Category: "Operations",
	}))
	require.NoError(t, svc.CreateExpense(&models.Expense{
		Description: "Light bulbs", Amount: 150, Category: "Maintenance",
		Date: time.Now().AddDate(0, 0, -1),
	}))

	summary, err := svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 1200.0, summary.TotalIncome)
	assert.Equal(t, 500.0, summary.TotalExpense)
	assert.Equal(t, 700.0, summary.NetProfit)
}

func TestCreateExpenseDefaultsDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewFinanceService(db)

	expense := models.Expense{Description: "Cleaning supplies", Amount: 200, Category: "Operations"}
	require.NoError(t, svc.CreateExpense(&expense))
	assert.False(t, expense.Date.IsZero())

	listed, err := svc.GetExpenses()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Cleaning supplies", listed[0].Description)
}
