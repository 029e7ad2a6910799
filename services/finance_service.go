package services

import (
	"errors"
	"fmt"
	"time"

	"dbhotel-backend/models"

	"gorm.io/gorm"
)

type FinanceService struct {
	DB *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{DB: db}
}

type FinanceSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetProfit    float64 `json:"net_profit"`
}

// Summary totals booking income against recorded expenses.
func (s *FinanceService) Summary() (*FinanceSummary, error) {
	var out FinanceSummary

	if err := s.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&out.TotalIncome).Error; err != nil {
		return nil, fmt.Errorf("failed to sum booking income: %w", err)
	}
	if err := s.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&out.TotalExpense).Error; err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	out.NetProfit = out.TotalIncome - out.TotalExpense
	return &out, nil
}

// RecordPayment stores a payment transaction against a booking and recomputes
// its payment status from the cumulative paid amount: Paid at or above the
// booking total, Partial above zero, Pending otherwise.
func (s *FinanceService) RecordPayment(bookingID uint, amount float64, method models.PaymentMethod) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to find booking %d: %w", bookingID, err)
		}

		payment := models.Transaction{
			BookingID: booking.ID,
			Amount:    amount,
			Method:    method,
			Date:      time.Now(),
			Type:      models.TransactionIncome,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		var paid float64
		if err := tx.Model(&models.Transaction{}).
			Where("booking_id = ? AND type = ?", booking.ID, models.TransactionIncome).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&paid).Error; err != nil {
			return fmt.Errorf("failed to sum payments: %w", err)
		}

		status := models.PaymentPending
		switch {
		case paid >= booking.TotalAmount && booking.TotalAmount > 0:
			status = models.PaymentPaid
		case paid > 0:
			status = models.PaymentPartial
		}

		if err := tx.Model(&booking).Update("payment_status", status).Error; err != nil {
			return fmt.Errorf("failed to update payment status: %w", err)
		}
		booking.PaymentStatus = status
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

func (s *FinanceService) GetExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.DB.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (s *FinanceService) CreateExpense(expense *models.Expense) error {
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	return s.DB.Create(expense).Error
}
