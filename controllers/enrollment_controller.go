package controllers

import (
	"errors"
	"strconv"
	"time"

	"learnhub/config"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EnrollmentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewEnrollmentController(db *gorm.DB, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{DB: db, Cfg: cfg}
}

// CreateEnrollment enrolls the authenticated user in a course. A user enrolls
// in a course at most once; the first attempt wins and later ones get 409.
// The initial course progress record is created in the same transaction, with
// the active pointer on the first lesson of the outline.
func (ec *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	authID, ok := c.Locals("userID").(uint)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input validators.EnrollRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validators.Check(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}
	if input.UserID != authID {
		return utils.Forbidden(c, "Cannot enroll another user")
	}

	var course models.Course
	if err := ec.DB.Preload("Modules.Lessons").First(&course, input.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var existing models.Enrollment
	err := ec.DB.Where("user_id = ? AND course_id = ?", authID, course.ID).First(&existing).Error
	if err == nil {
		return utils.Conflict(c, "Already enrolled in this course")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	enrollment := models.Enrollment{UserID: authID, CourseID: course.ID}
	progress := models.UserCourseProgress{
		UserID:       authID,
		CourseID:     course.ID,
		TotalLessons: course.LessonCount(),
		LastAccessed: time.Now(),
	}
	if mod, lesson := course.FirstLesson(); lesson != nil {
		progress.ActiveModuleID = mod.ID
		progress.ActiveLessonID = lesson.ID
	}

	err = ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Create(&progress).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "Already enrolled in this course")
		}
		return utils.InternalServerError(c, "Could not create enrollment")
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// GetUserEnrollments lists the courses a user is enrolled in, in enrollment
// order.
func (ec *EnrollmentController) GetUserEnrollments(c *fiber.Ctx) error {
	authID, ok := c.Locals("userID").(uint)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}
	if uint(userID) != authID {
		return utils.Forbidden(c, "Cannot view another user's enrollments")
	}

	courses := []models.Course{}
	err = ec.DB.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", authID).
		Order("enrollments.id").
		Find(&courses).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(courses)
}

// CheckEnrollment reports whether a user is enrolled in a course.
func (ec *EnrollmentController) CheckEnrollment(c *fiber.Ctx) error {
	authID, ok := c.Locals("userID").(uint)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}
	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	if uint(userID) != authID {
		return utils.Forbidden(c, "Cannot view another user's enrollments")
	}

	var count int64
	err = ec.DB.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", authID, courseID).
		Count(&count).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{"enrolled": count > 0})
}
