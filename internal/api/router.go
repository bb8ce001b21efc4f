package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/jobmaroc/backend/internal/api/handler"
	"github.com/jobmaroc/backend/internal/api/middleware"
	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// Dependencies carries everything the router needs to stand up the API.
type Dependencies struct {
	DB  *gorm.DB
	RDB *redis.Client
	Log zerolog.Logger

	Tokens        ports.TokenService
	Users         ports.UserRepository
	Roles         ports.RoleRepository
	Companies     ports.CompanyRepository
	Auth          ports.AuthService
	UserService   ports.UserService
	Offers        ports.OfferService
	Applications  ports.ApplicationService
	Notifications ports.NotificationService
	Stats         ports.StatsService

	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			deps.Log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("jobboard"))
	e.Use(middleware.Authenticate(deps.Tokens, deps.Users, deps.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	registrationHandler := handler.NewRegistrationHandler(deps.UserService)
	userHandler := handler.NewUserHandler(deps.UserService)
	offerHandler := handler.NewOfferHandler(deps.Offers)
	applicationHandler := handler.NewApplicationHandler(deps.Applications)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	statsHandler := handler.NewStatsHandler(deps.Stats)
	roleHandler := handler.NewRoleHandler(deps.Roles)
	companyHandler := handler.NewCompanyHandler(deps.Companies)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.RDB)

	// Brute-force protection on the credential routes only.
	signinLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(5),
			Burst:     10,
			ExpiresIn: 3 * time.Minute,
		}),
	})

	// --- Public routes ---
	e.POST("/signin", authHandler.SignIn, signinLimiter)
	e.POST("/google-signin", authHandler.GoogleSignIn, signinLimiter)
	e.POST("/talent/add", registrationHandler.RegisterTalent)
	e.POST("/manager/addNew", registrationHandler.RegisterManager)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	authed := e.Group("", middleware.RequireAuth())
	authed.GET("/users/profile", userHandler.Profile)
	authed.POST("/users/change-password", userHandler.ChangePassword)
	authed.GET("/roles", roleHandler.List)
	authed.GET("/offers", offerHandler.List)
	authed.GET("/offers/:id", offerHandler.Get)
	authed.GET("/notifications", notificationHandler.List)
	authed.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	// --- Admin routes ---
	admin := e.Group("", middleware.RequireRoles(domain.RoleAdmin))
	admin.GET("/users", userHandler.List)
	admin.GET("/users/waiting", userHandler.ListWaiting)
	admin.GET("/users/:id", userHandler.Get)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.PATCH("/users/:id/status", userHandler.UpdateStatus)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.GET("/stats/top-sectors", statsHandler.TopSectors)
	admin.GET("/stats/by-modality", statsHandler.ByModality)
	admin.GET("/stats/by-study-level", statsHandler.ByStudyLevel)
	admin.GET("/stats/by-region", statsHandler.ByRegion)

	// --- Manager routes ---
	manager := e.Group("", middleware.RequireRoles(domain.RoleManager, domain.RoleAdmin))
	manager.POST("/offers", offerHandler.Create)
	manager.PUT("/offers/:id", offerHandler.Update)
	manager.DELETE("/offers/:id", offerHandler.Delete)
	manager.GET("/offers/mine", offerHandler.ListMine)
	manager.GET("/applications/offer/:id", applicationHandler.ListByOffer)
	manager.PATCH("/applications/:id/status", applicationHandler.UpdateStatus)
	manager.GET("/companies/mine", companyHandler.Mine)
	manager.PUT("/companies/mine", companyHandler.Update)

	// --- Talent routes ---
	e.POST("/applications", applicationHandler.Submit, middleware.RequireRoles(domain.RoleTalent))
	e.GET("/applications/mine", applicationHandler.ListMine,
		middleware.RequireRoles(domain.RoleTalent, domain.RoleManager))

	return e
}
