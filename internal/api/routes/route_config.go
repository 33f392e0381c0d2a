package routes

import (
	"github.com/gofiber/fiber/v2"

	"parth-agrotech/internal/api/handlers"
	"parth-agrotech/internal/middleware"
)

type Config struct {
	App                *fiber.App
	FarmerHandler      handlers.FarmerHandler
	FactoryHandler     handlers.FactoryHandler
	ColdStorageHandler handlers.ColdStorageHandler
	InventoryHandler   handlers.InventoryHandler
	ContactHandler     handlers.ContactHandler
	StatsHandler       handlers.StatsHandler
	AuthHandler        handlers.AuthHandler
	UserHandler        handlers.UserHandler
	HealthHandler      handlers.HealthHandler
	Middleware         middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Farmers()
	c.Factories()
	c.ColdStorages()
	c.Inventory()
	c.Contact()
	c.Stats()
	c.Auth()
	c.Users()
	c.GuestRoute()
}

func (c *Config) Farmers() {
	admin := c.Middleware.AuthMiddleware()
	farmers := c.App.Group("/api/farmers")
	{
		farmers.Get("", admin, c.FarmerHandler.GetFarmers)
		farmers.Get("/:id", admin, c.FarmerHandler.GetFarmer)
		farmers.Post("", c.Middleware.RateLimiter(), c.FarmerHandler.RegisterFarmer)
		farmers.Patch("/:id", admin, c.FarmerHandler.UpdateFarmer)
		farmers.Patch("/:id/status", admin, c.FarmerHandler.UpdateFarmerStatus)
		farmers.Delete("/:id", admin, c.FarmerHandler.DeleteFarmer)
	}
}

func (c *Config) Factories() {
	factories := c.App.Group("/api/factories", c.Middleware.AuthMiddleware())
	{
		factories.Get("", c.FactoryHandler.GetFactories)
		factories.Get("/:id", c.FactoryHandler.GetFactory)
		factories.Post("", c.FactoryHandler.CreateFactory)
		factories.Patch("/:id", c.FactoryHandler.UpdateFactory)
		factories.Delete("/:id", c.FactoryHandler.DeleteFactory)
	}
}

func (c *Config) ColdStorages() {
	admin := c.Middleware.AuthMiddleware()
	storages := c.App.Group("/api/cold-storages")
	{
		storages.Get("", c.ColdStorageHandler.GetColdStorages)
		storages.Get("/:id", c.ColdStorageHandler.GetColdStorage)
		storages.Post("", admin, c.ColdStorageHandler.CreateColdStorage)
		storages.Patch("/:id", admin, c.ColdStorageHandler.UpdateColdStorage)
		storages.Delete("/:id", admin, c.ColdStorageHandler.DeleteColdStorage)
	}
}

func (c *Config) Inventory() {
	admin := c.Middleware.AuthMiddleware()
	inventory := c.App.Group("/api/inventory")
	{
		// before /:id so "export" is not taken for a lot id
		inventory.Get("/export", admin, c.InventoryHandler.ExportInventory)
		inventory.Get("", c.InventoryHandler.GetLots)
		inventory.Get("/:id", c.InventoryHandler.GetLot)
		inventory.Post("", admin, c.InventoryHandler.DepositLot)
		inventory.Patch("/:id", admin, c.InventoryHandler.UpdateLot)
		inventory.Delete("/:id", admin, c.InventoryHandler.DeleteLot)
	}
}

func (c *Config) Contact() {
	admin := c.Middleware.AuthMiddleware()
	contact := c.App.Group("/api/contact")
	{
		contact.Get("", admin, c.ContactHandler.GetInquiries)
		contact.Get("/:id", admin, c.ContactHandler.GetInquiry)
		contact.Post("", c.Middleware.RateLimiter(), c.ContactHandler.SubmitInquiry)
		contact.Patch("/:id", admin, c.ContactHandler.UpdateInquiry)
		contact.Patch("/:id/status", admin, c.ContactHandler.UpdateInquiryStatus)
		contact.Delete("/:id", admin, c.ContactHandler.DeleteInquiry)
	}
}

func (c *Config) Stats() {
	c.App.Get("/api/stats", c.StatsHandler.GetStats)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/login", c.Middleware.RateLimiter(), c.AuthHandler.Login)
		auth.Post("/logout", c.AuthHandler.Logout)
		auth.Get("/me", c.AuthHandler.Me)
		auth.Post("/setup", c.Middleware.RateLimiter(), c.AuthHandler.Setup)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/users", c.Middleware.AuthMiddleware())
	{
		users.Get("", c.UserHandler.GetUsers)
		users.Get("/:id", c.UserHandler.GetUser)
		users.Delete("/:id", c.UserHandler.DeleteUser)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/health", c.HealthHandler.Health)
}
