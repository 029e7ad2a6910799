package services

import (
	"testing"
	"time"

	"dbhotel-backend/config"
	"dbhotel-backend/models"
	"dbhotel-backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test so state never leaks
// between cases.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite db")

	// the whole database lives in one connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db), "failed to migrate")
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number string, price float64, status models.RoomStatus) models.Room {
	t.Helper()

	room := models.Room{
		RoomNumber:    number,
		Building:      "A",
		Floor:         1,
		RoomType:      "Standard",
		PricePerNight: price,
		Status:        status,
		MaxOccupancy:  2,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()

	customer := models.Customer{
		Name:         name,
		Phone:        "081-000-0000",
		CustomerType: models.CustomerRegular,
	}
	require.NoError(t, db.Create(&customer).Error)
	// customer_code carries a unique index; assign it from the row id the
	// same way CustomerService.Create does so two seeds never collide.
	customer.CustomerCode = utils.CustomerCode(customer.ID)
	require.NoError(t, db.Model(&customer).Update("customer_code", customer.CustomerCode).Error)
	return customer
}

func today() time.Time {
	return utils.DateOnly(time.Now())
}
