package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/lyquocphong/booking-system/internal/auth"
	"github.com/lyquocphong/booking-system/internal/booking"
	"github.com/lyquocphong/booking-system/internal/catalog"
	"github.com/lyquocphong/booking-system/internal/config"
	"github.com/lyquocphong/booking-system/internal/email"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	config     *config.Config
	email      *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	loc := cfg.Location()
	engine := catalog.NewEngine(loc)

	catalogRepo := catalog.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	bookingService := booking.NewService(bookingRepo, engine, emailService, loc, cfg.DefaultDateFormat, cfg.PublicBaseURL)

	catalogHandler := catalog.NewHandler(catalogRepo)
	bookingHandler := booking.NewHandler(bookingService, catalogRepo, cfg.DefaultDateFormat, loc)
	authHandler := auth.NewHandler(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)

	public := router.Group("/")
	public.Use(RateLimitMiddleware(10, 20))
	{
		public.GET("/services", catalogHandler.ListServices)
		public.GET("/services/:serviceID/available-slots", bookingHandler.AvailableSlots)
		public.POST("/services/:serviceID/reserve", bookingHandler.Reserve)
		public.GET("/bookings/:identifier", bookingHandler.GetBooking)
		public.POST("/bookings/:identifier/confirm", bookingHandler.Confirm)
		public.POST("/admin/login", authHandler.Login)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	adminMiddleware := auth.RequireRole(auth.RoleAdmin)
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("/bookings", bookingHandler.ListBookings)
		admin.POST("/bookings/:identifier/cancel", bookingHandler.CancelBooking)
		admin.POST("/services", catalogHandler.CreateService)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
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
