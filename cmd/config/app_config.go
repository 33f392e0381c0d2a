package config

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"parth-agrotech/internal/api/handlers"
	"parth-agrotech/internal/api/presenters"
	"parth-agrotech/internal/api/routes"
	"parth-agrotech/internal/middleware"
	"parth-agrotech/internal/utils"
	"parth-agrotech/internal/utils/mailing"
	"parth-agrotech/pkg/coldstorage"
	"parth-agrotech/pkg/contact"
	"parth-agrotech/pkg/factory"
	"parth-agrotech/pkg/farmer"
	"parth-agrotech/pkg/inventory"
	"parth-agrotech/pkg/jwt"
	"parth-agrotech/pkg/session"
	"parth-agrotech/pkg/stats"
	"parth-agrotech/pkg/user"
)

type AppOptions struct {
	Config   utils.Config
	DB       *gorm.DB
	Sessions session.SessionStore
	Notifier mailing.Notifier
	// AccessLog receives one line per request; stdout when nil.
	AccessLog io.Writer
	// HealthChecks are run by /api/health in addition to the database ping.
	HealthChecks map[string]handlers.HealthCheck
}

func NewApp(opts AppOptions) (*fiber.App, error) {
	cfg := opts.Config
	app := fiber.New(fiber.Config{
		AppName:      "parth-agrotech",
		ErrorHandler: presenters.ErrorHandler,
	})

	accessLog := opts.AccessLog
	if accessLog == nil {
		accessLog = os.Stdout
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     accessLog,
	}))

	validator := utils.NewValidator()
	notifier := opts.Notifier
	if notifier == nil {
		notifier = mailing.NewNoopNotifier()
	}

	// Repository
	farmerRepository := farmer.NewFarmerRepository(opts.DB)
	factoryRepository := factory.NewFactoryRepository(opts.DB)
	coldStorageRepository := coldstorage.NewColdStorageRepository(opts.DB)
	inventoryRepository := inventory.NewInventoryRepository(opts.DB)
	contactRepository := contact.NewContactRepository(opts.DB)
	statsRepository := stats.NewStatsRepository(opts.DB)
	userRepository := user.NewUserRepository(opts.DB)

	// Service
	jwtService := jwt.NewJWTService(cfg.SessionSecret)
	farmerService := farmer.NewFarmerService(farmerRepository, notifier)
	factoryService := factory.NewFactoryService(factoryRepository)
	coldStorageService := coldstorage.NewColdStorageService(coldStorageRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository, coldStorageRepository)
	contactService := contact.NewContactService(contactRepository, notifier)
	statsService := stats.NewStatsService(statsRepository)
	userService := user.NewUserService(userRepository, opts.Sessions, jwtService, cfg.SessionTTL())

	// Health
	checks := map[string]handlers.HealthCheck{
		"database": databaseCheck(opts.DB),
	}
	for name, check := range opts.HealthChecks {
		checks[name] = check
	}

	// routes
	routesConfig := routes.Config{
		App:                app,
		FarmerHandler:      handlers.NewFarmerHandler(farmerService, validator),
		FactoryHandler:     handlers.NewFactoryHandler(factoryService, validator),
		ColdStorageHandler: handlers.NewColdStorageHandler(coldStorageService, validator),
		InventoryHandler:   handlers.NewInventoryHandler(inventoryService, validator),
		ContactHandler:     handlers.NewContactHandler(contactService, validator),
		StatsHandler:       handlers.NewStatsHandler(statsService),
		AuthHandler:        handlers.NewAuthHandler(userService, validator, cfg.CookieSecure),
		UserHandler:        handlers.NewUserHandler(userService),
		HealthHandler:      handlers.NewHealthHandler(checks),
		Middleware:         middleware.NewMiddleware(userService, cfg.CORSAllowOrigins, cfg.RateLimitMax),
	}
	routesConfig.Setup()
	return app, nil
}
