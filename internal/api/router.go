package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/grandhorizon/booking-gateway/internal/api/handler"
	"github.com/grandhorizon/booking-gateway/internal/api/middleware"
	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
	"github.com/grandhorizon/booking-gateway/internal/core/service"
	"github.com/grandhorizon/booking-gateway/internal/infrastructure/config"
	redisstore "github.com/grandhorizon/booking-gateway/internal/infrastructure/db/redis"
	"github.com/grandhorizon/booking-gateway/internal/upstream"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, base *upstream.Client, notifier ports.LogoutNotifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking_gateway"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Session.CookieName)

	// --- Upstream clients ---
	authClient := upstream.NewAuthClient(base)
	roomsClient := upstream.NewRoomsClient(base)
	bookingsClient := upstream.NewBookingsClient(base)
	clientsClient := upstream.NewClientsClient(base)
	accountClient := upstream.NewAccountClient(base)
	recsClient := upstream.NewRecommendationsClient(base)
	paymentsClient := upstream.NewPaymentsClient(base)

	// --- Services ---
	sessionStore := redisstore.NewSessionStore(rdb, cfg.Session.TTL)
	sessionService := service.NewSessionService(sessionStore, authClient, notifier, cfg.Upstream.ValidateTimeout, log)
	availabilityService := service.NewAvailabilityService(roomsClient, recsClient, log)
	bookingService := service.NewBookingService(bookingsClient, paymentsClient, log)

	// --- Handlers ---
	cookie := handler.SessionCookie{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.SecureCookie,
	}
	authHandler := handler.NewAuthHandler(authClient, sessionService, cookie)
	roomHandler := handler.NewRoomHandler(availabilityService, roomsClient)
	bookingHandler := handler.NewBookingHandler(bookingService)
	clientHandler := handler.NewClientHandler(clientsClient)
	accountHandler := handler.NewAccountHandler(accountClient)

	session := middleware.Session(sessionService, cfg.Session.CookieName)
	optionalSession := middleware.OptionalSession(sessionService, cfg.Session.CookieName)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register)
	e.GET("/api/auth/session", authHandler.Session)
	e.GET("/api/rooms/available", roomHandler.Available, optionalSession)

	// --- Authenticated routes ---
	authed := e.Group("/api", session)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/account", accountHandler.Get)
	authed.PUT("/account", accountHandler.Update)
	authed.GET("/bookings", bookingHandler.List)
	authed.POST("/bookings", bookingHandler.Create)
	authed.DELETE("/bookings/:startDate/:roomNr", bookingHandler.Cancel)
	authed.GET("/payments/checkout-session", bookingHandler.Confirm)
	authed.POST("/rooms/recommend", roomHandler.Recommend)

	// --- Admin routes ---
	admin := e.Group("/api/admin", session, adminOnly)
	admin.GET("/rooms", roomHandler.List)
	admin.POST("/rooms", roomHandler.Create)
	admin.PUT("/rooms/:roomNr", roomHandler.Update)
	admin.DELETE("/rooms/:roomNr", roomHandler.Delete)
	admin.GET("/bookings", bookingHandler.ListAll)
	admin.GET("/clients", clientHandler.List)
	admin.POST("/clients", clientHandler.Create)
	admin.PUT("/clients/:email", clientHandler.Update)
	admin.DELETE("/clients/:email", clientHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is Redis up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
