package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"learnhub/config"
	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

var testDBCounter int64

func testConfig() *config.Config {
	return &config.Config{
		DBPath:        fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1)),
		JWTSecret:     "testsecret",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}
}

func TestSeedLoadsSampleData(t *testing.T) {
	cfg := testConfig()
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NoError(t, Seed(db, cfg))

	var courses []models.Course
	assert.NoError(t, db.Order("id").Find(&courses).Error)
	assert.Len(t, courses, 3)
	assert.Equal(t, uint(1), courses[0].ID)
	assert.Equal(t, uint(3), courses[2].ID)
	assert.True(t, courses[0].IsPopular)

	var outlined models.Course
	assert.NoError(t, db.Preload("Modules.Lessons").First(&outlined, 1).Error)
	assert.Equal(t, 12, outlined.LessonCount())

	var admin models.User
	assert.NoError(t, db.Where("username = ?", cfg.AdminUsername).First(&admin).Error)
	assert.Equal(t, "admin", admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(cfg.AdminPassword)))
}

func TestSeedIsIdempotent(t *testing.T) {
	cfg := testConfig()
	db, err := Connect(cfg)
	assert.NoError(t, err)

	assert.NoError(t, Seed(db, cfg))
	assert.NoError(t, Seed(db, cfg))

	var courseCount, userCount int64
	db.Model(&models.Course{}).Count(&courseCount)
	db.Model(&models.User{}).Count(&userCount)
	assert.Equal(t, int64(3), courseCount)
	assert.Equal(t, int64(1), userCount)
}

func TestUsernameUniqueIndex(t *testing.T) {
	cfg := testConfig()
	db, err := Connect(cfg)
	assert.NoError(t, err)

	first := models.User{Username: "alice", PasswordHash: "x"}
	assert.NoError(t, db.Create(&first).Error)

	second := models.User{Username: "alice", PasswordHash: "y"}
	assert.Error(t, db.Create(&second).Error)
}

func TestEnrollmentUniqueIndex(t *testing.T) {
	cfg := testConfig()
	db, err := Connect(cfg)
	assert.NoError(t, err)

	assert.NoError(t, db.Create(&models.Enrollment{UserID: 1, CourseID: 1}).Error)
	assert.Error(t, db.Create(&models.Enrollment{UserID: 1, CourseID: 1}).Error)
	assert.NoError(t, db.Create(&models.Enrollment{UserID: 1, CourseID: 2}).Error)
	assert.NoError(t, db.Create(&models.Enrollment{UserID: 2, CourseID: 1}).Error)
}
