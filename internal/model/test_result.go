package model

import (
	"time"
)

// TestResult is the immutable record of one submitted attempt. It is written
// exactly once at submission and never updated.
type TestResult struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	Subject         string    `json:"subject" gorm:"not null;index"`
	ScorePercent    int       `json:"score_percent" gorm:"not null"`
	CorrectCount    int       `json:"correct_count" gorm:"not null"`
	WrongCount      int       `json:"wrong_count" gorm:"not null"`
	SkippedCount    int       `json:"skipped_count" gorm:"not null"`
	TotalQuestions  int       `json:"total_questions" gorm:"not null"`
	TimePerQuestion []int     `json:"time_per_question" gorm:"serializer:json"`
	CreatedAt       time.Time `json:"created_at"`
}
