package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dbhotel-backend/controllers"
	"dbhotel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all controllers into the Gin engine.
func SetupRouter(
	rc *controllers.RoomController,
	cc *controllers.CustomerController,
	bc *controllers.BookingController,
	dc *controllers.DashboardController,
	fc *controllers.FinanceController,
	sc *controllers.SettingsController,
	ac *controllers.AssistantController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestLogger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		customersRoutes := api.Group("/customers")
		{
			customersRoutes.GET("", cc.GetCustomers)
			customersRoutes.POST("", cc.CreateCustomer)
			customersRoutes.PUT("/:id", cc.UpdateCustomer)
			customersRoutes.DELETE("/:id", cc.DeleteCustomer)
			customersRoutes.POST("/scan", cc.ScanDocument)
			customersRoutes.POST("/:id/apply-scan", cc.ApplyScan)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.POST("/:id/checkin", bc.CheckIn)
			bookings.POST("/:id/checkout", bc.CheckOut)
			bookings.POST("/:id/cancel", bc.Cancel)
			bookings.POST("/:id/payments", bc.RecordPayment)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", fc.GetExpenses)
			expenses.POST("", fc.CreateExpense)
		}

		api.GET("/dashboard/summary", dc.GetSummary)
		api.GET("/finance/summary", fc.GetSummary)

		settings := api.Group("/settings")
		{
			settings.GET("", sc.GetSettings)
			settings.PUT("", sc.UpsertSetting)
		}

		assistant := api.Group("/assistant")
		{
			assistant.POST("/chat", ac.Chat)
			assistant.GET("/history", ac.History)
		}
	}

	return r
}
