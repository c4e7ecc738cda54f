package userController

import (
	"errors"
	"log"

	"coursehub/config"
	"coursehub/middleware"
	"coursehub/models"
	authValidator "coursehub/validators/auth"

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

func (ctrl *Controller) Signup(c *fiber.Ctx) error {
	creds := c.Locals("credentials").(*authValidator.Credentials)

	// Check if username already exists
	if err := ctrl.db.Where("username = ?", creds.Username).First(&models.User{}).Error; err == nil {
		return middleware.Message(c, fiber.StatusConflict, "User exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), ctrl.cost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	user := models.User{
		Username: creds.Username,
		Password: string(hashedPassword),
	}

	if err := ctrl.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.Message(c, fiber.StatusConflict, "User exists")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	token, err := ctrl.auth.GenerateToken(user.Username, middleware.RoleUser)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User created successfully",
		"token":   token,
		"role":    middleware.RoleUser,
	})
}

func (ctrl *Controller) Login(c *fiber.Ctx) error {
	creds := c.Locals("credentials").(*authValidator.Credentials)

	var user models.User
	if err := ctrl.db.Where("username = ?", creds.Username).First(&user).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := ctrl.auth.GenerateToken(user.Username, middleware.RoleUser)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged in successfully",
		"token":   token,
		"role":    middleware.RoleUser,
	})
}

// ListCourses returns every published course, projected. Any valid token
// may call this; there is no role gate on browsing the catalog.
func (ctrl *Controller) ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ctrl.db.Where("published = ?", true).Order("id asc").Find(&courses).Error; err != nil {
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

// PurchaseCourse appends the course to the caller's ledger. A course is
// purchasable only while published; unpublished and nonexistent courses
// answer identically so catalog state never leaks.
func (ctrl *Controller) PurchaseCourse(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.db.Where("id = ? AND published = ?", courseID, true).First(&course).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "Course not found")
	}

	var user models.User
	if err := ctrl.db.Where("username = ?", username).First(&user).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "User not found")
	}

	var existing models.Purchase
	if err := ctrl.db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&existing).Error; err == nil {
		return middleware.Message(c, fiber.StatusConflict, "Course purchased already")
	}

	purchase := models.Purchase{
		UserID:   user.ID,
		CourseID: course.ID,
	}

	if err := ctrl.db.Create(&purchase).Error; err != nil {
		// Two sessions can pass the pre-check together; the unique index
		// turns the lost race into a duplicate-key error, not a double
		// purchase.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.Message(c, fiber.StatusConflict, "Course purchased already")
		}
		log.Printf("Error saving purchase: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return middleware.Message(c, fiber.StatusOK, "Course purchased successfully")
}

// PurchasedCourses resolves the caller's ledger to course records in
// purchase order. A reference whose course was removed out-of-band is
// skipped, not fatal.
func (ctrl *Controller) PurchasedCourses(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)

	var user models.User
	if err := ctrl.db.Where("username = ?", username).First(&user).Error; err != nil {
		return middleware.Message(c, fiber.StatusUnauthorized, "User not found")
	}

	var purchases []models.Purchase
	if err := ctrl.db.Where("user_id = ?", user.ID).Order("id asc").Preload("Course").Find(&purchases).Error; err != nil {
		log.Printf("Error fetching purchases: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	response := make([]models.CourseResponse, 0, len(purchases))
	for _, purchase := range purchases {
		if purchase.Course.ID == 0 {
			continue
		}
		response = append(response, purchase.Course.ToResponse())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"courses": response,
	})
}

// ListUsers is the user-side diagnostic listing; same gating as
// ListAdmins.
func (ctrl *Controller) ListUsers(c *fiber.Ctx) error {
	if c.Get("dev-mode") == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var users []models.User
	if err := ctrl.db.Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.Status(fiber.StatusOK).JSON(users)
}
