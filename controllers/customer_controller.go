package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"dbhotel-backend/models"
	"dbhotel-backend/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
	ScanSvc     *services.ScanService
}

func NewCustomerController(customerSvc *services.CustomerService, scanSvc *services.ScanService) *CustomerController {
	return &CustomerController{CustomerSvc: customerSvc, ScanSvc: scanSvc}
}

type scanRequest struct {
	Image string `json:"image" binding:"required"` // base64 or data URI
}

// GET /api/customers
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// POST /api/customers
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid customer payload: " + err.Error()})
		return
	}

	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	if customer.Name == "" || customer.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Name and phone are required."})
		return
	}

	if err := ctrl.CustomerSvc.Create(&customer); err != nil {
		log.Printf("DB error creating customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create customer: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// PUT /api/customers/:id
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload models.Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid customer payload: " + err.Error()})
		return
	}

	if _, err := ctrl.CustomerSvc.GetByID(id); err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	payload.ID = id
	if err := ctrl.CustomerSvc.Update(&payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	customer, err := ctrl.CustomerSvc.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DELETE /api/customers/:id
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.CustomerSvc.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// POST /api/customers/scan. Run OCR on a captured document frame. The form
// state stays client-side; a failed scan changes nothing.
func (ctrl *CustomerController) ScanDocument(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid scan payload: " + err.Error()})
		return
	}

	result, err := ctrl.ScanSvc.ScanDocument(req.Image)
	if err != nil {
		if errors.Is(err, services.ErrScanIncomplete) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "message": "Scan did not return the required fields"})
			return
		}
		log.Printf("document scan failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": "Scan service unavailable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/customers/:id/apply-scan. Merge scanned fields into a stored
// customer without clobbering user-entered data.
func (ctrl *CustomerController) ApplyScan(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var scan services.ScanResult
	if err := c.ShouldBindJSON(&scan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid scan payload: " + err.Error()})
		return
	}

	customer, err := ctrl.CustomerSvc.ApplyScan(id, scan)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}
