package dto

// SubjectStatsDTO aggregates a user's results within one subject.
type SubjectStatsDTO struct {
	Subject        string  `json:"subject"`
	Attempts       int     `json:"attempts"`
	AverageScore   float64 `json:"average_score"`
	BestScore      int     `json:"best_score"`
	TotalQuestions int     `json:"total_questions"`
	TotalTimeSpent int     `json:"total_time_spent"`
}

// OverallStatsDTO is the cross-subject summary for a user's dashboard.
type OverallStatsDTO struct {
	TotalAttempts  int     `json:"total_attempts"`
	AverageScore   float64 `json:"average_score"`
	TotalQuestions int     `json:"total_questions"`
	TotalTimeSpent int     `json:"total_time_spent"`
}
