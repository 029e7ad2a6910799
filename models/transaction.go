package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "Cash"
	MethodQRCode   PaymentMethod = "QRCode"
	MethodTransfer PaymentMethod = "Transfer"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodQRCode, MethodTransfer:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("unknown payment method: %s", s)
	}
}

type TransactionType string

const (
	TransactionIncome  TransactionType = "Income"
	TransactionExpense TransactionType = "Expense"
)

// Transaction records a single payment against a booking.
type Transaction struct {
	gorm.Model

	BookingID uint            `gorm:"index;column:booking_id" json:"booking_id"`
	Amount    float64         `json:"amount"`
	Method    PaymentMethod   `gorm:"size:32" json:"method"`
	Date      time.Time       `json:"date"`
	Type      TransactionType `gorm:"size:32" json:"type"`
}
