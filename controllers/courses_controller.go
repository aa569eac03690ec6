package controllers

import (
	"errors"
	"strconv"

	"learnhub/config"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

// GetCourses returns all courses in insertion order.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	courses := []models.Course{}
	if err := cc.DB.Order("id").Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch courses")
	}
	return c.JSON(courses)
}

// GetCourse returns a single course with its module/lesson outline.
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.Preload("Modules.Lessons").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	course.SortOutline()
	return c.JSON(course)
}

// CreateCourse adds a course to the catalog. Admin only (enforced in routes).
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input validators.CreateCourseRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validators.Check(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Duration:    input.Duration,
		Level:       input.Level,
		Rating:      input.Rating,
		RatingCount: input.RatingCount,
	}
	if input.IsPopular != nil {
		course.IsPopular = *input.IsPopular
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}
