package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	Options       pq.StringArray `json:"options" gorm:"type:text[]"`
	CorrectAnswer string         `json:"correct_answer" gorm:"not null"`
	Subject       string         `json:"subject" gorm:"not null;index"`
	Explanation   string         `json:"explanation,omitempty" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
