package routes

import (
	"time"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/config"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/handlers"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/middleware"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the public offering schedule endpoints.
// kind is one of "workshops" or "cut-flowers".
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/offerings/:kind")
	{
		api.GET("", hb.ListSchedulesHandler)
		api.GET("/:id/schedule", hb.GetScheduleHandler)
		api.GET("/:id/calendar.ics", hb.GetCalendarHandler)
		api.POST("/:id/sessions", hb.StartSessionHandler)
	}
}

// RegisterSessionRoutes registers the day/slot selection session endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions/:sessionID")
	{
		api.GET("", hb.GetSessionHandler)
		api.PUT("/day", hb.SelectDayHandler)
		api.PUT("/slot", hb.SelectSlotHandler)
		api.POST("/booking", hb.SubmitBookingHandler)
		api.DELETE("", hb.CancelSessionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// CORSMiddleware allows the storefront origins from CORS_ALLOWED_ORIGINS.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "Retry-After", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterMiddleware installs the global middleware. CORS runs ahead of the rate
// limiter so rejected requests still carry the CORS headers.
func RegisterMiddleware(r *gin.Engine) {
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())
	r.Use(CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterScheduleRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
