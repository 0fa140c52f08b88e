package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"barberbook/handlers"
	"barberbook/middleware"
)

// RegisterCatalogRoutes registers the public catalog endpoints and
// their admin counterparts.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.ListServicesHandler)
		api.GET("/services/:id", hb.Catalog.GetServiceHandler)
		api.GET("/barbers", hb.Catalog.ListBarbersHandler)
		api.GET("/barbers/:id", hb.Catalog.GetBarberHandler)
		api.GET("/barbers/:id/schedule", hb.Schedule.GetWeekHandler)
	}

	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AuthMiddleware(hb.Identity), middleware.AdminMiddleware())
		admin.POST("/services", hb.Catalog.CreateServiceHandler)
		admin.PUT("/services/:id", hb.Catalog.UpdateServiceHandler)
		admin.DELETE("/services/:id", hb.Catalog.DeleteServiceHandler)
		admin.POST("/barbers", hb.Catalog.CreateBarberHandler)
		admin.PUT("/barbers/:id", hb.Catalog.UpdateBarberHandler)
		admin.DELETE("/barbers/:id", hb.Catalog.DeleteBarberHandler)
		admin.POST("/barbers/:id/image", hb.Catalog.UploadBarberImageHandler)
		admin.PUT("/barbers/:id/schedule", hb.Schedule.SetEntryHandler)
		admin.DELETE("/barbers/:id/schedule/:day", hb.Schedule.ClearDayHandler)
	}
}

// RegisterBookingRoutes registers availability lookups (public) and the
// appointment lifecycle (authenticated).
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/availability", hb.Booking.GetAvailabilityHandler)
		api.GET("/days", hb.Booking.GetEligibleDaysHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.Identity))
		protected.POST("/appointments", hb.Booking.CreateAppointmentHandler)
		protected.PUT("/appointments/:id/cancel", hb.Booking.CancelAppointmentHandler)
	}

	customers := r.Group("/api/customers")
	{
		customers.Use(middleware.AuthMiddleware(hb.Identity))
		customers.GET("/me/appointments", hb.Booking.MyAppointmentsHandler)
	}

	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AuthMiddleware(hb.Identity), middleware.AdminMiddleware())
		admin.GET("/appointments", hb.Booking.BarberDayHandler)
		admin.PUT("/appointments/:id/complete", hb.Booking.CompleteAppointmentHandler)
		admin.PUT("/appointments/:id/reschedule", hb.Booking.RescheduleAppointmentHandler)
		admin.POST("/optimize", hb.Optimizer.OptimizeDayHandler)
	}
}

// RegisterAuthRoutes registers identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/line", hb.Auth.LineLoginHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.Identity))
		protected.POST("/check-and-set-admin", hb.Auth.CheckAdminHandler)
	}

	me := r.Group("/api/customers/me")
	{
		me.Use(middleware.AuthMiddleware(hb.Identity))
		me.GET("", hb.Auth.MeHandler)
		me.PUT("", hb.Auth.UpdateMeHandler)
		me.PUT("/fcm-token", hb.Auth.SetFCMTokenHandler)
	}

	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AuthMiddleware(hb.Identity), middleware.AdminMiddleware())
		admin.POST("/set-admin-claim", hb.Auth.SetAdminClaimHandler)
	}
}

// RegisterContentRoutes registers the landing-page content and shop
// settings endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/content", hb.Content.GetPageContentHandler)
		api.GET("/settings", hb.Content.GetShopSettingsHandler)
	}

	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AuthMiddleware(hb.Identity), middleware.AdminMiddleware())
		admin.PUT("/content", hb.Content.SetPageContentHandler)
		admin.PUT("/settings", hb.Content.SetShopSettingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and global
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterContentRoutes(r, hb)
}
