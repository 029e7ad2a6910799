package services

import (
	"errors"
	"fmt"
	"strings"

	"dbhotel-backend/models"
	"dbhotel-backend/utils"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Create stores the customer and assigns its CM-prefixed code from the row id
// in the same transaction.
func (s *CustomerService) Create(customer *models.Customer) error {
	if customer.CustomerType == "" {
		customer.CustomerType = models.CustomerRegular
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return err
		}
		customer.CustomerCode = utils.CustomerCode(customer.ID)
		return tx.Model(customer).Update("customer_code", customer.CustomerCode).Error
	})
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.DB.Order("id").Find(&customers).Error
	return customers, err
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Update(customer *models.Customer) error {
	return s.DB.Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(customer).Error
}

func (s *CustomerService) Delete(id uint) error {
	return s.DB.Delete(&models.Customer{}, id).Error
}

// MergeScan folds scanned document fields into a customer record. A scanned
// value only overwrites when it is non-empty, so user-entered data survives a
// partial scan, and applying the same scan twice is a no-op. The document
// number lands in the passport field for PASSPORT results and in the id-card
// field otherwise; the opposite field is left untouched.
func MergeScan(customer models.Customer, scan ScanResult) models.Customer {
	if scan.Name != "" {
		customer.Name = scan.Name
	}
	if scan.DocumentNumber != "" {
		if strings.Contains(strings.ToUpper(scan.DocumentType), "PASSPORT") {
			customer.Passport = scan.DocumentNumber
		} else {
			customer.IDCard = scan.DocumentNumber
		}
	}
	if scan.DateOfBirth != "" {
		customer.DateOfBirth = scan.DateOfBirth
	}
	if scan.Address != "" {
		customer.Address = scan.Address
	}
	return customer
}

// ApplyScan merges a scan result into a stored customer and persists it.
func (s *CustomerService) ApplyScan(id uint, scan ScanResult) (*models.Customer, error) {
	customer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	merged := MergeScan(*customer, scan)
	if err := s.DB.Save(&merged).Error; err != nil {
		return nil, fmt.Errorf("failed to apply scan to customer %d: %w", id, err)
	}
	return &merged, nil
}
