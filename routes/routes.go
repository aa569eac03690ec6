package routes

import (
	"learnhub/config"
	"learnhub/controllers"
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Course catalog
	coursesController := controllers.NewCoursesController(db, cfg)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Get("/api/courses/:id", coursesController.GetCourse)
	app.Post("/api/courses", authMiddleware, adminMiddleware, coursesController.CreateCourse)

	// Enrollments
	enrollmentController := controllers.NewEnrollmentController(db, cfg)
	app.Post("/api/enrollments", authMiddleware, enrollmentController.CreateEnrollment)
	app.Get("/api/users/:userId/enrollments", authMiddleware, enrollmentController.GetUserEnrollments)
	app.Get("/api/users/:userId/courses/:courseId/enrolled", authMiddleware, enrollmentController.CheckEnrollment)

	// Learning progress
	progressController := controllers.NewProgressController(db, cfg)
	app.Post("/api/courses/:id/lessons/:lessonId/complete", authMiddleware, progressController.CompleteLesson)
	app.Get("/api/courses/:id/progress", authMiddleware, progressController.GetCourseProgress)
}
