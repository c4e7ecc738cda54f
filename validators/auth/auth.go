package authValidator

import (
	"coursehub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Credentials is the signup/login payload shared by both roles.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup validates the JSON signup body.
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(Credentials)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Username and Password are required")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Username and Password are required")
		}

		c.Locals("credentials", reqData)
		return c.Next()
	}
}

// Login reads credentials from the username and password request headers.
// Existing API clients send them there rather than in the body.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds := &Credentials{
			Username: c.Get("username"),
			Password: c.Get("password"),
		}

		if err := validate.Struct(creds); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Username and Password are required")
		}

		c.Locals("credentials", creds)
		return c.Next()
	}
}
