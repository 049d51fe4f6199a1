package dto

import "time"

type SessionStartDTO struct {
	Subject string `json:"subject" binding:"required"`
}

type AnswerSelectDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Option     string `json:"option" binding:"required"`
}

type JumpDTO struct {
	Index int `json:"index" binding:"min=0"`
}

// SessionStateDTO is the live view of an attempt returned after every
// session operation.
type SessionStateDTO struct {
	SessionID        string               `json:"session_id"`
	Subject          string               `json:"subject"`
	Questions        []SessionQuestionDTO `json:"questions"`
	CurrentIndex     int                  `json:"current_index"`
	Answers          map[uint]string      `json:"answers"`
	TotalQuestions   int                  `json:"total_questions"`
	AllottedSeconds  int                  `json:"allotted_seconds"`
	RemainingSeconds int                  `json:"remaining_seconds"`
	StartedAt        time.Time            `json:"started_at"`
}

// QuestionReviewDTO is one scored question in the review bundle.
type QuestionReviewDTO struct {
	Question   QuestionResponseDTO `json:"question"`
	UserAnswer string              `json:"user_answer"`
	IsCorrect  bool                `json:"is_correct"`
	IsSkipped  bool                `json:"is_skipped"`
	TimeSpent  int                 `json:"time_spent"`
}

// TestReviewDTO is the full result bundle handed to the review stage at
// submission. The score fields are always computed locally, whether or not
// the result row persisted.
type TestReviewDTO struct {
	Results         []QuestionReviewDTO `json:"results"`
	Score           int                 `json:"score"`
	Total           int                 `json:"total"`
	ScorePercent    int                 `json:"score_percent"`
	WrongCount      int                 `json:"wrong_count"`
	SkippedCount    int                 `json:"skipped_count"`
	TimePerQuestion []int               `json:"time_per_question"`
	AutoSubmitted   bool                `json:"auto_submitted"`
}

// TestResultDTO is a persisted result row as listed in attempt history.
type TestResultDTO struct {
	ID              uint      `json:"id"`
	Subject         string    `json:"subject"`
	ScorePercent    int       `json:"score_percent"`
	CorrectCount    int       `json:"correct_count"`
	WrongCount      int       `json:"wrong_count"`
	SkippedCount    int       `json:"skipped_count"`
	TotalQuestions  int       `json:"total_questions"`
	TimePerQuestion []int     `json:"time_per_question"`
	CreatedAt       time.Time `json:"created_at"`
}
