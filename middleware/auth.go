package middleware

import (
	"errors"
	"fmt"
	"time"

	"coursehub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Auth issues and verifies the signed identity tokens carried in the
// Authorization header. Clients send the raw token without a Bearer
// prefix; the existing API surface depends on that.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

func NewAuth(cfg *config.Config) *Auth {
	return &Auth{secret: []byte(cfg.JWTKey), ttl: cfg.TokenTTL}
}

// GenerateToken signs a {username, role} claim valid for the configured
// TTL. Role is fixed at issue time; a token keeps its role until expiry.
func (a *Auth) GenerateToken(username, role string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(a.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Authenticate verifies the Authorization header and stores the username
// and role in the request locals. Expired and malformed tokens both map to
// 401 but carry distinct codes for client-side retry logic.
func (a *Auth) Authenticate(c *fiber.Ctx) error {
	raw := c.Get("Authorization")
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing Authorization Headers",
			"code":    "token_missing",
		})
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Token expired",
				"code":    "token_expired",
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token",
			"code":    "token_malformed",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token payload",
			"code":    "token_malformed",
		})
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token payload",
			"code":    "token_malformed",
		})
	}

	c.Locals("username", username)
	c.Locals("role", role)

	return c.Next()
}

// AdminOnly rejects callers whose token role is not admin. It must run
// after Authenticate.
func AdminOnly(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access restricted",
		})
	}
	return c.Next()
}
