package model

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile shares its primary key with the owning User.
type Profile struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	DisplayName    string     `json:"display_name" gorm:"not null"`
	College        string     `json:"college,omitempty"`
	Year           string     `json:"year,omitempty"`
	Status         string     `json:"status,omitempty"`
	LastNameChange *time.Time `json:"last_name_change,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
