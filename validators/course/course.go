package courseValidator

import (
	"strconv"
	"strings"

	"coursehub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateRequest carries the five course fields. Pointers distinguish an
// absent field from a zero value, so published:false still counts as
// present.
type CreateRequest struct {
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageLink   *string  `json:"imageLink" validate:"required"`
	Published   *bool    `json:"published" validate:"required"`
}

// UpdateRequest is the partial-update whitelist. Keys outside these five
// are dropped by the JSON decoder, not rejected.
type UpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageLink   *string  `json:"imageLink"`
	Published   *bool    `json:"published"`
}

// CreateCourse requires all five course fields. Validation failures
// surface as 401 to keep the existing API contract.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusUnauthorized, "All properties are required")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.Message(c, fiber.StatusUnauthorized, "All properties are required")
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse accepts a partial body but insists on at least one
// recognized field.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.Title == nil && reqData.Description == nil && reqData.Price == nil &&
			reqData.ImageLink == nil && reqData.Published == nil {
			return middleware.Message(c, fiber.StatusBadRequest, "At least one field required")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the courseId path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("courseId"))

		courseID, err := strconv.Atoi(raw)
		if err != nil || courseID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid courseId",
			})
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
