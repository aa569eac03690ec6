package controllers

import (
	"errors"
	"strconv"
	"time"

	"learnhub/config"
	"learnhub/models"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// CompleteLesson marks a lesson as completed for the authenticated user.
// Completion is idempotent: the completed-set is keyed by (user, lesson) and
// the rate is recomputed from its cardinality, so repeating the call changes
// nothing. When the completed lesson is the active one, the pointer advances
// to the next lesson in the module, then to the first lesson of the next
// module, and parks on the last lesson of the course.
func (pc *ProgressController) CompleteLesson(c *fiber.Ctx) error {
	authID, ok := c.Locals("userID").(uint)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	var course models.Course
	if err := pc.DB.Preload("Modules.Lessons").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	_, lesson := course.FindLesson(uint(lessonID))
	if lesson == nil {
		return utils.NotFound(c, "Lesson not found")
	}

	enrolled, err := pc.isEnrolled(authID, course.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !enrolled {
		return utils.Forbidden(c, "Not enrolled in this course")
	}

	record := models.LessonProgress{UserID: authID, LessonID: lesson.ID}
	err = pc.DB.Where(&record).
		Attrs(models.LessonProgress{CourseID: course.ID, CompletedAt: time.Now()}).
		FirstOrCreate(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.InternalServerError(c, "Could not save progress")
	}

	progress, err := pc.refreshProgress(authID, &course)
	if err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	if progress.ActiveLessonID == lesson.ID || progress.ActiveLessonID == 0 {
		if mod, next := course.NextLesson(lesson.ID); next != nil {
			progress.ActiveModuleID = mod.ID
			progress.ActiveLessonID = next.ID
		}
	}
	progress.LastAccessed = time.Now()
	if err := pc.DB.Save(progress).Error; err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	return c.JSON(fiber.Map{
		"message":  "Lesson completed",
		"progress": progress,
	})
}

// GetCourseProgress returns the per-course summary plus the ids of every
// completed lesson, so a client can render the outline state.
func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	authID, ok := c.Locals("userID").(uint)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := pc.DB.Preload("Modules.Lessons").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	enrolled, err := pc.isEnrolled(authID, course.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !enrolled {
		return utils.Forbidden(c, "Not enrolled in this course")
	}

	progress, err := pc.refreshProgress(authID, &course)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	completedIDs := []uint{}
	err = pc.DB.Model(&models.LessonProgress{}).
		Where("user_id = ? AND course_id = ?", authID, course.ID).
		Order("lesson_id").
		Pluck("lesson_id", &completedIDs).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"progress":           progress,
		"completedLessonIds": completedIDs,
	})
}

func (pc *ProgressController) isEnrolled(userID, courseID uint) (bool, error) {
	var count int64
	err := pc.DB.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

// refreshProgress loads (or creates) the user's course progress record and
// recomputes the completed count and rate from the completed-set cardinality.
func (pc *ProgressController) refreshProgress(userID uint, course *models.Course) (*models.UserCourseProgress, error) {
	progress := models.UserCourseProgress{UserID: userID, CourseID: course.ID}
	attrs := models.UserCourseProgress{
		TotalLessons: course.LessonCount(),
		LastAccessed: time.Now(),
	}
	if mod, lesson := course.FirstLesson(); lesson != nil {
		attrs.ActiveModuleID = mod.ID
		attrs.ActiveLessonID = lesson.ID
	}
	err := pc.DB.Where(&models.UserCourseProgress{UserID: userID, CourseID: course.ID}).
		Attrs(attrs).
		FirstOrCreate(&progress).Error
	if err != nil {
		return nil, err
	}

	var completed int64
	err = pc.DB.Model(&models.LessonProgress{}).
		Where("user_id = ? AND course_id = ?", userID, course.ID).
		Count(&completed).Error
	if err != nil {
		return nil, err
	}

	progress.LessonsCompleted = int(completed)
	progress.TotalLessons = course.LessonCount()
	progress.CompletionRate = models.CompletionPercent(progress.LessonsCompleted, progress.TotalLessons)
	return &progress, nil
}
