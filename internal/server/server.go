package server

import (
	"context"
	"net/http"
	"time"

	"barbershop/internal/auth"
	"barbershop/internal/booking"
	"barbershop/internal/catalog"
	"barbershop/internal/config"
	"barbershop/internal/email"
	"barbershop/internal/gallery"
	"barbershop/internal/hours"
	"barbershop/internal/settings"
	"barbershop/internal/staff"
	"barbershop/internal/testimonial"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(db *sqlx.DB, rdb *redis.Client, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	occupies := cfg.OccupancyPolicy()

	catalogRepo := catalog.NewRepository(db)
	hoursRepo := hours.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	staffRepo := staff.NewRepository(db)

	bookingService := booking.NewService(bookingRepo, hoursRepo, catalogRepo, emailService, occupies, cfg.StaffNotifyEmail)
	staffService := staff.NewService(staffRepo, cfg.JWTSecret)
	settingsService := settings.NewService(settings.NewRepository(db), rdb)

	catalogHandler := catalog.NewHandler(db)
	hoursHandler := hours.NewHandler(db)
	bookingHandler := booking.NewHandler(bookingService)
	staffHandler := staff.NewHandler(staffService)
	galleryHandler := gallery.NewHandler(db)
	testimonialHandler := testimonial.NewHandler(db)
	settingsHandler := settings.NewHandler(settingsService)

	// Public site endpoints.
	router.GET("/services", catalogHandler.ListServices)
	router.GET("/hours", hoursHandler.GetWeek)
	router.GET("/availability", bookingHandler.GetAvailability)
	router.POST("/bookings", bookingHandler.CreateBooking)
	router.GET("/bookings/:reference", bookingHandler.GetBooking)
	router.DELETE("/bookings/:reference", bookingHandler.CancelBooking)
	router.GET("/gallery", galleryHandler.ListImages)
	router.GET("/testimonials", testimonialHandler.ListTestimonials)
	router.POST("/testimonials", testimonialHandler.SubmitTestimonial)
	router.GET("/settings", settingsHandler.GetSettings)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", staffHandler.Login)
		authGroup.POST("/refresh", staffHandler.RefreshToken)
	}

	// Both roles use the panel; account management stays admin only.
	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	admin := router.Group("/admin")
	admin.Use(authMiddleware)
	{
		admin.GET("/me", staffHandler.GetMe)

		admin.GET("/services", catalogHandler.ListAllServices)
		admin.POST("/services", catalogHandler.CreateService)
		admin.PUT("/services/:serviceID", catalogHandler.UpdateService)
		admin.DELETE("/services/:serviceID", catalogHandler.DeactivateService)

		admin.PUT("/hours", hoursHandler.UpdateWeek)

		admin.GET("/bookings", bookingHandler.ListBookings)
		admin.POST("/bookings/:bookingID/confirm", bookingHandler.ConfirmBooking)
		admin.POST("/bookings/:bookingID/cancel", bookingHandler.AdminCancelBooking)
		admin.POST("/bookings/:bookingID/reschedule", bookingHandler.RescheduleBooking)
		admin.DELETE("/bookings/:bookingID", bookingHandler.DeleteBooking)

		accounts := admin.Group("/staff")
		accounts.Use(auth.RequireRole(staff.RoleAdmin))
		{
			accounts.GET("", staffHandler.ListStaff)
			accounts.POST("", staffHandler.CreateStaff)
			accounts.DELETE("/:staffID", staffHandler.DeactivateStaff)
		}

		admin.POST("/gallery", galleryHandler.AddImage)
		admin.DELETE("/gallery/:imageID", galleryHandler.DeleteImage)

		admin.GET("/testimonials", testimonialHandler.ListAllTestimonials)
		admin.POST("/testimonials/:testimonialID/approve", testimonialHandler.ApproveTestimonial)
		admin.DELETE("/testimonials/:testimonialID", testimonialHandler.DeleteTestimonial)

		admin.PUT("/settings", settingsHandler.UpdateSettings)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
