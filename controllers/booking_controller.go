package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"dbhotel-backend/models"
	"dbhotel-backend/services"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	RoomID     uint   `json:"room_id" binding:"required"`
	CheckIn    string `json:"check_in_date" binding:"required"`
	CheckOut   string `json:"check_out_date" binding:"required"`
	Channel    string `json:"channel"`
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
	FinanceSvc *services.FinanceService
}

func NewBookingController(bookingSvc *services.BookingService, financeSvc *services.FinanceService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, FinanceSvc: financeSvc}
}

// parseDate accepts the dashboard's date-only format and RFC3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date format: %s", s)
}

// GET /api/bookings
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAllWithRelations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid check_in_date: " + err.Error()})
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid check_out_date: " + err.Error()})
		return
	}

	channel := models.ChannelWalkIn
	if req.Channel != "" {
		channel, err = models.ParseBookingChannel(req.Channel)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
	}

	booking, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		CustomerID: req.CustomerID,
		RoomID:     req.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Channel:    channel,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "message": "Customer not found"})
		case errors.Is(err, services.ErrRoomNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "message": "Room not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (ctrl *BookingController) transition(c *gin.Context, newStatus models.BookingStatus) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Transition(id, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Booking not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings/:id/checkin
func (ctrl *BookingController) CheckIn(c *gin.Context) {
	ctrl.transition(c, models.BookingCheckedIn)
}

// POST /api/bookings/:id/checkout
func (ctrl *BookingController) CheckOut(c *gin.Context) {
	ctrl.transition(c, models.BookingCheckedOut)
}

// POST /api/bookings/:id/cancel
func (ctrl *BookingController) Cancel(c *gin.Context) {
	ctrl.transition(c, models.BookingCancelled)
}

// POST /api/bookings/:id/payments
func (ctrl *BookingController) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	method, err := models.ParsePaymentMethod(req.Method)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	booking, err := ctrl.FinanceSvc.RecordPayment(id, req.Amount, method)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}
