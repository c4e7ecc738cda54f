package server

import (
	adminController "coursehub/controllers/admin"
	userController "coursehub/controllers/user"

	"coursehub/config"
	"coursehub/middleware"
	"coursehub/routers/adminRoutes"
	"coursehub/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// New wires the full HTTP surface against the given database handle.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,username,password,dev-mode",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	auth := middleware.NewAuth(cfg)
	adminCtrl := adminController.New(db, auth, cfg)
	userCtrl := userController.New(db, auth, cfg)

	adminRoutes.SetupAdminRoutes(app, adminCtrl, auth, cfg.DevRoutes)
	userRoutes.SetupUserRoutes(app, userCtrl, auth, cfg.DevRoutes)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Course Hub Backend!",
		})
	})

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Route not found",
		})
	})

	return app
}
