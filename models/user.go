package models

import "time"

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"default:user" json:"role"` // user, admin
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

type LoginHistory struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"index"`
	LoginTime time.Time
}
