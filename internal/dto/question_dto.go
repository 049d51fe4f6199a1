package dto

import "time"

// QuestionCreateDTO is used by admins to add questions to the bank.
type QuestionCreateDTO struct {
	QuestionText  string   `json:"question_text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Subject       string   `json:"subject" binding:"required"`
	Explanation   string   `json:"explanation"`
}

// QuestionBatchCreateDTO imports a whole set of questions in one call.
type QuestionBatchCreateDTO struct {
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// QuestionResponseDTO carries full question details, including the correct
// answer and explanation. Served to admins and to the review stage, never to
// a live session.
type QuestionResponseDTO struct {
	ID            uint      `json:"id"`
	QuestionText  string    `json:"question_text"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Subject       string    `json:"subject"`
	Explanation   string    `json:"explanation,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// SessionQuestionDTO is the answer-free projection shown during an attempt.
type SessionQuestionDTO struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	Subject      string   `json:"subject"`
}
