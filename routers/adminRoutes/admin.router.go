package adminRoutes

import (
	adminController "coursehub/controllers/admin"
	"coursehub/middleware"
	authValidators "coursehub/validators/auth"
	courseValidators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up signup/login and course management routes.
func SetupAdminRoutes(app *fiber.App, ctrl *adminController.Controller, auth *middleware.Auth, devRoutes bool) {
	adminGroup := app.Group("/admin")

	adminGroup.Post("/signup", authValidators.Signup(), ctrl.Signup)
	adminGroup.Post("/login", authValidators.Login(), ctrl.Login)

	adminGroup.Post("/courses", auth.Authenticate, middleware.AdminOnly, courseValidators.CreateCourse(), ctrl.CreateCourse)
	adminGroup.Put("/courses/:courseId", auth.Authenticate, middleware.AdminOnly, courseValidators.CourseID(), courseValidators.UpdateCourse(), ctrl.UpdateCourse)
	adminGroup.Get("/courses", auth.Authenticate, middleware.AdminOnly, ctrl.ListCourses)

	if devRoutes {
		app.Get("/admins", ctrl.ListAdmins)
	}
}
