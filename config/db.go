package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"dbhotel-backend/models"
	"dbhotel-backend/utils"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// resolveMySQLDSN returns the MySQL DSN from MYSQL_URL / DATABASE_URL / DB_*
// env vars, or "" when no database is configured at all.
func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	if strings.TrimSpace(os.Getenv("DB_HOST")) == "" {
		return "", nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "dbhotel")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens MySQL when one is configured, otherwise falls back to
// an in-memory SQLite database so every start works from a fresh mock data
// set. Runs migrations and seeding before returning.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold: time.Second,
				LogLevel:      logger.Warn,
				Colorful:      true,
			},
		),
	}

	var db *gorm.DB
	if dsn != "" {
		log.Println("Connecting to MySQL...")
		db, err = gorm.Open(mysql.Open(dsn), gormCfg)
	} else {
		log.Println("No database configured; using in-memory SQLite (state is re-seeded on every start)")
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormCfg)
		if err == nil {
			// The in-memory database lives inside a single connection.
			if sqlDB, derr := db.DB(); derr == nil {
				sqlDB.SetMaxOpenConns(1)
			}
		}
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	SeedDatabase(db)
	return db, nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.HotelSetting{},
		&models.Room{},
		&models.Customer{},
		&models.Booking{},
		&models.Transaction{},
		&models.Expense{},
		&models.AssistantLog{},
	)
}

// SeedDatabase loads the front-desk mock data set when the corresponding
// tables are still empty. Booking dates are anchored to today so the
// dashboard shows live-looking numbers right after startup.
func SeedDatabase(db *gorm.DB) {
	today := utils.DateOnly(time.Now())

	// ---------------- Rooms ----------------
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "A101", Building: "A", Floor: 1, RoomType: "Standard", PricePerNight: 400, Status: models.RoomAvailable, MaxOccupancy: 2},
			{RoomNumber: "A102", Building: "A", Floor: 1, RoomType: "Standard", PricePerNight: 400, Status: models.RoomAvailable, MaxOccupancy: 2},
			{RoomNumber: "A103", Building: "A", Floor: 1, RoomType: "Standard", PricePerNight: 400, Status: models.RoomOccupied, MaxOccupancy: 2},
			{RoomNumber: "A201", Building: "A", Floor: 2, RoomType: "Standard Twin", PricePerNight: 500, Status: models.RoomAvailable, MaxOccupancy: 2},
			{RoomNumber: "B101", Building: "B", Floor: 1, RoomType: "Standard", PricePerNight: 400, Status: models.RoomCleaning, MaxOccupancy: 2},
			{RoomNumber: "B110", Building: "B", Floor: 1, RoomType: "Standard", PricePerNight: 400, Status: models.RoomOccupied, MaxOccupancy: 2},
			{RoomNumber: "N1", Building: "N", Floor: 1, RoomType: "Standard", PricePerNight: 400, Status: models.RoomMaintenance, MaxOccupancy: 2},
			{RoomNumber: "N2", Building: "N", Floor: 1, RoomType: "Standard", PricePerNight: 400, Status: models.RoomAvailable, MaxOccupancy: 2},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	// ---------------- Customers ----------------
	var customerCount int64
	db.Model(&models.Customer{}).Count(&customerCount)
	if customerCount == 0 {
		customers := []models.Customer{
			{CustomerCode: "CM001", Name: "Chatri Mongkol", Phone: "081-234-5678", CustomerType: models.CustomerRegular, IDCard: "1-1000-12345-67-8"},
			{CustomerCode: "CM002", Name: "Kamonlak Jaidee", Phone: "089-987-6543", CustomerType: models.CustomerVIP, IDCard: "2-3456-78901-23-4"},
			{CustomerCode: "CM003", Name: "Somchai Rakchart", Phone: "065-432-1111", CustomerType: models.CustomerRegular},
		}
		if err := db.Create(&customers).Error; err != nil {
			log.Printf("warning: failed to seed customers: %v", err)
		} else {
			log.Println("Customers seeded")
		}
	}

	// ---------------- Bookings ----------------
	var bookingCount int64
	db.Model(&models.Booking{}).Count(&bookingCount)
	if bookingCount == 0 {
		var customers []models.Customer
		var rooms []models.Room
		db.Order("id").Find(&customers)
		db.Order("id").Find(&rooms)

		roomByNumber := map[string]uint{}
		for _, r := range rooms {
			roomByNumber[r.RoomNumber] = r.ID
		}
		customerByCode := map[string]uint{}
		for _, c := range customers {
			customerByCode[c.CustomerCode] = c.ID
		}

		if len(roomByNumber) > 0 && len(customerByCode) > 0 {
			bookings := []models.Booking{
				{
					ReferenceCode: "VP01764",
					CustomerID:    customerByCode["CM001"],
					RoomID:        roomByNumber["B110"],
					CheckInDate:   today,
					CheckOutDate:  today.AddDate(0, 0, 2),
					Nights:        2,
					TotalAmount:   800,
					Status:        models.BookingCheckedIn,
					PaymentStatus: models.PaymentPending,
					Channel:       models.ChannelWalkIn,
				},
				{
					ReferenceCode: "VP01765",
					CustomerID:    customerByCode["CM002"],
					RoomID:        roomByNumber["A103"],
					CheckInDate:   today,
					CheckOutDate:  today.AddDate(0, 0, 1),
					Nights:        1,
					TotalAmount:   400,
					Status:        models.BookingCheckedIn,
					PaymentStatus: models.PaymentPaid,
					Channel:       models.ChannelLine,
				},
				{
					ReferenceCode: "VP01766",
					CustomerID:    customerByCode["CM003"],
					RoomID:        roomByNumber["A201"],
					CheckInDate:   today.AddDate(0, 0, 4),
					CheckOutDate:  today.AddDate(0, 0, 5),
					Nights:        1,
					TotalAmount:   500,
					Status:        models.BookingConfirmed,
					PaymentStatus: models.PaymentPending,
					Channel:       models.ChannelPhone,
				},
			}
			if err := db.Create(&bookings).Error; err != nil {
				log.Printf("warning: failed to seed bookings: %v", err)
			} else {
				log.Println("Bookings seeded")
			}
		}
	}

	// ---------------- Expenses ----------------
	var expenseCount int64
	db.Model(&models.Expense{}).Count(&expenseCount)
	if expenseCount == 0 {
		expenses := []models.Expense{
			{Category: "Utilities", Description: "Electricity Bill", Amount: 4500, Date: today.AddDate(0, 0, -6), PaidBy: "Manager"},
			{Category: "Maintenance", Description: "AC Repair Room N1", Amount: 1200, Date: today.AddDate(0, 0, -3), PaidBy: "Admin"},
			{Category: "Supplies", Description: "Cleaning Supplies", Amount: 850, Date: today.AddDate(0, 0, -1), PaidBy: "Staff"},
		}
		if err := db.Create(&expenses).Error; err != nil {
			log.Printf("warning: failed to seed expenses: %v", err)
		} else {
			log.Println("Expenses seeded")
		}
	}

	// ---------------- Settings ----------------
	var settingCount int64
	db.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		settings := []models.HotelSetting{
			{Category: "General", Name: "Hotel Name", Value: "DB-Hotel-UP"},
			{Category: "Financial", Name: "VAT Rate", Value: "7%"},
			{Category: "Policy", Name: "Check-in Time", Value: "14:00"},
			{Category: "Policy", Name: "Check-out Time", Value: "12:00"},
			{Category: "Payment", Name: "PromptPay ID", Value: "081-234-5678"},
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("warning: failed to seed settings: %v", err)
		} else {
			log.Println("Settings seeded")
		}
	}
}
