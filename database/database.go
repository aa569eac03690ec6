package database

import (
	"learnhub/config"
	"learnhub/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database and runs migrations. The default DSN is a
// shared in-memory database, so all state is lost when the process exits.
// TranslateError lets callers treat unique-index violations as
// gorm.ErrDuplicatedKey instead of parsing driver messages.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.LoginHistory{},
		&models.Course{},
		&models.CourseModule{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.LessonProgress{},
		&models.UserCourseProgress{},
	)
}
