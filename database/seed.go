package database

import (
	"errors"

	"learnhub/config"
	"learnhub/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the fixed startup data: the admin account and the three sample
// courses. It is idempotent so a shared database can be seeded more than once.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(db, cfg); err != nil {
		return err
	}
	return seedCourses(db)
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var admin models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	return db.Create(&admin).Error
}

func seedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	courses := []models.Course{
		{
			Title:       "Web Development Fundamentals",
			Description: "Learn HTML, CSS, and JavaScript basics to build responsive websites from scratch.",
			Price:       "49.99",
			ImageURL:    "https://images.unsplash.com/photo-1587620962725-abab7fe55159?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Duration:    "8 weeks",
			Level:       "Beginner",
			Rating:      "4.5",
			RatingCount: 256,
			IsPopular:   true,
			Modules:     webDevOutline(),
		},
		{
			Title:       "Data Science with Python",
			Description: "Master data analysis, visualization, and machine learning with Python libraries.",
			Price:       "69.99",
			ImageURL:    "https://images.unsplash.com/photo-1555949963-ff9fe0c870eb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Duration:    "12 weeks",
			Level:       "Intermediate",
			Rating:      "4.0",
			RatingCount: 189,
		},
		{
			Title:       "UX/UI Design Principles",
			Description: "Learn user-centered design processes and create stunning interfaces that users love.",
			Price:       "59.99",
			ImageURL:    "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Duration:    "10 weeks",
			Level:       "All levels",
			Rating:      "5.0",
			RatingCount: 312,
		},
	}

	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func webDevOutline() []models.CourseModule {
	return []models.CourseModule{
		{
			Title:         "Module 1: HTML Foundations",
			SequenceOrder: 1,
			Lessons: []models.Lesson{
				{Title: "Introduction to the Web", Duration: "15 min", SequenceOrder: 1},
				{Title: "HTML Document Structure", Duration: "22 min", SequenceOrder: 2},
				{Title: "Text, Links and Images", Duration: "18 min", SequenceOrder: 3},
				{Title: "Forms and Tables", Duration: "25 min", SequenceOrder: 4},
			},
		},
		{
			Title:         "Module 2: Styling with CSS",
			SequenceOrder: 2,
			Lessons: []models.Lesson{
				{Title: "Selectors and the Cascade", Duration: "20 min", SequenceOrder: 1},
				{Title: "The Box Model", Duration: "28 min", SequenceOrder: 2},
				{Title: "Flexbox and Grid", Duration: "25 min", SequenceOrder: 3},
				{Title: "Responsive Layouts", Duration: "30 min", SequenceOrder: 4},
			},
		},
		{
			Title:         "Module 3: JavaScript Basics",
			SequenceOrder: 3,
			Lessons: []models.Lesson{
				{Title: "Variables and Types", Duration: "23 min", SequenceOrder: 1},
				{Title: "Functions and Control Flow", Duration: "15 min", SequenceOrder: 2},
				{Title: "Working with the DOM", Duration: "28 min", SequenceOrder: 3},
				{Title: "Events and Interactivity", Duration: "35 min", SequenceOrder: 4},
			},
		},
	}
}
