package models

import "time"

// Enrollment records that a user has registered for a course. The composite
// unique index makes the insert the arbiter of the at-most-once invariant.
type Enrollment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID  uint      `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
	CreatedAt time.Time `json:"enrolledAt"`
}
