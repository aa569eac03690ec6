package models

import (
	"math"
	"time"
)

// LessonProgress marks a single lesson as completed by a user. Completion is
// one-way: rows are only ever inserted, never updated or deleted, and the
// unique index on (user, lesson) makes re-completion a no-op.
type LessonProgress struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex:idx_user_lesson" json:"userId"`
	LessonID    uint      `gorm:"uniqueIndex:idx_user_lesson" json:"lessonId"`
	CourseID    uint      `gorm:"index" json:"courseId"`
	CompletedAt time.Time `json:"completedAt"`
}

// UserCourseProgress is the per-course summary for a user: where they are in
// the outline and how much of it is done. CompletionRate is always derived
// from the completed-set cardinality, never incremented.
type UserCourseProgress struct {
	ID               uint      `gorm:"primarykey" json:"-"`
	UserID           uint      `gorm:"uniqueIndex:idx_user_course_progress" json:"userId"`
	CourseID         uint      `gorm:"uniqueIndex:idx_user_course_progress" json:"courseId"`
	ActiveModuleID   uint      `json:"activeModuleId"`
	ActiveLessonID   uint      `json:"activeLessonId"`
	LessonsCompleted int       `json:"lessonsCompleted"`
	TotalLessons     int       `json:"totalLessons"`
	CompletionRate   int       `json:"completionRate"`
	LastAccessed     time.Time `json:"lastAccessed"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// CompletionPercent returns round(100 * completed / total). A course with no
// lessons reports 0.
func CompletionPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
