package dto

import "time"

type ProfileUpdateDTO struct {
	College string `json:"college"`
	Year    string `json:"year"`
	Status  string `json:"status"`
}

type DisplayNameUpdateDTO struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type ProfileResponseDTO struct {
	ID             uint       `json:"id"`
	DisplayName    string     `json:"display_name"`
	College        string     `json:"college,omitempty"`
	Year           string     `json:"year,omitempty"`
	Status         string     `json:"status,omitempty"`
	LastNameChange *time.Time `json:"last_name_change,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
