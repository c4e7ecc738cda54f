package userRoutes

import (
	userController "coursehub/controllers/user"
	"coursehub/middleware"
	authValidators "coursehub/validators/auth"
	courseValidators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up signup/login, catalog browsing and the purchase
// routes.
func SetupUserRoutes(app *fiber.App, ctrl *userController.Controller, auth *middleware.Auth, devRoutes bool) {
	userGroup := app.Group("/users")

	userGroup.Post("/signup", authValidators.Signup(), ctrl.Signup)
	userGroup.Post("/login", authValidators.Login(), ctrl.Login)

	userGroup.Get("/courses", auth.Authenticate, ctrl.ListCourses)
	userGroup.Post("/courses/:courseId", auth.Authenticate, courseValidators.CourseID(), ctrl.PurchaseCourse)
	userGroup.Get("/purchasedCourses", auth.Authenticate, ctrl.PurchasedCourses)

	if devRoutes {
		app.Get("/users", ctrl.ListUsers)
	}
}
