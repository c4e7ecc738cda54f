package adminController

import (
	"errors"
	"log"

	"coursehub/config"
	"coursehub/middleware"
	"coursehub/models"
	authValidator "coursehub/validators/auth"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Controller struct {
	db   *gorm.DB
	auth *middleware.Auth
	cost int
}

func New(db *gorm.DB, auth *middleware.Auth, cfg *config.Config) *Controller {
	return &Controller{db: db, auth: auth, cost: cfg.SaltRound}
}

// Signup registers a new admin and returns a signed token right away.
func (ctrl *Controller) Signup(c *fiber.Ctx) error {
	creds := c.Locals("credentials").(*authValidator.Credentials)

	// Check if username already exists
	if err := ctrl.db.Where("username = ?", creds.Username).First(&models.Admin{}).Error; err == nil {
		return middleware.Message(c, fiber.StatusConflict, "User exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), ctrl.cost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	admin := models.Admin{
		Username: creds.Username,
		Password: string(hashedPassword),
	}

	if err := ctrl.db.Create(&admin).Error; err != nil {
		// Unique index backstop for signups racing on the same username.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.Message(c, fiber.StatusConflict, "User exists")
		}
		log.Printf("Error saving admin to database: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	token, err := ctrl.auth.GenerateToken(admin.Username, middleware.RoleAdmin)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Admin created successfully",
		"token":   token,
		"role":    middleware.RoleAdmin,
	})
}

func (ctrl *Controller) Login(c *fiber.Ctx) error {
	creds := c.Locals("credentials").(*authValidator.Credentials)

	var admin models.Admin
	if err := ctrl.db.Where("username = ?", creds.Username).First(&admin).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(creds.Password)); err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := ctrl.auth.GenerateToken(admin.Username, middleware.RoleAdmin)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged in successfully",
		"token":   token,
		"role":    middleware.RoleAdmin,
	})
}

// CreateCourse records the caller's admin id as the course instructor.
// InstructorID is set once here and never updatable.
func (ctrl *Controller) CreateCourse(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	reqData := c.Locals("validatedCourse").(*courseValidator.CreateRequest)

	var admin models.Admin
	if err := ctrl.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "User not found")
	}

	course := models.Course{
		Title:        *reqData.Title,
		Description:  *reqData.Description,
		Price:        *reqData.Price,
		ImageLink:    *reqData.ImageLink,
		Published:    *reqData.Published,
		InstructorID: admin.ID,
	}

	if err := ctrl.db.Create(&course).Error; err != nil {
		log.Printf("Error saving course to database: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Course created successfully",
		"courseId": course.ID,
	})
}

// UpdateCourse applies the whitelisted fields that were present in the
// body. An unknown course id answers 401, matching the existing API.
func (ctrl *Controller) UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateRequest)

	var course models.Course
	if err := ctrl.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Message(c, fiber.StatusUnauthorized, "Course not found")
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.ImageLink != nil {
		course.ImageLink = *reqData.ImageLink
	}
	if reqData.Published != nil {
		course.Published = *reqData.Published
	}

	if err := ctrl.db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return middleware.Message(c, fiber.StatusOK, "Course updated successfully")
}

// ListCourses returns the caller's own courses, projected.
func (ctrl *Controller) ListCourses(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)

	var admin models.Admin
	if err := ctrl.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "User not found")
	}

	var courses []models.Course
	if err := ctrl.db.Where("instructor_id = ?", admin.ID).Order("id asc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	response := make([]models.CourseResponse, 0, len(courses))
	for _, course := range courses {
		response = append(response, course.ToResponse())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"courses": response,
	})
}

// ListAdmins is a diagnostic listing left over from development. The route
// is only registered when DEV_ROUTES is set, and still wants the dev-mode
// header. Password hashes never serialize.
func (ctrl *Controller) ListAdmins(c *fiber.Ctx) error {
	if c.Get("dev-mode") == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var admins []models.Admin
	if err := ctrl.db.Find(&admins).Error; err != nil {
		log.Printf("Error fetching admins: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.Status(fiber.StatusOK).JSON(admins)
}
