package service

import (
	"testing"

	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedResults(t *testing.T, repo repository.ResultRepository) {
	t.Helper()
	rows := []model.TestResult{
		{UserID: 1, Subject: "Anatomy", ScorePercent: 60, CorrectCount: 3, WrongCount: 1, SkippedCount: 1, TotalQuestions: 5, TimePerQuestion: []int{10, 20, 30, 5, 5}},
		{UserID: 1, Subject: "Anatomy", ScorePercent: 85, CorrectCount: 17, WrongCount: 3, TotalQuestions: 20, TimePerQuestion: []int{6, 6, 6}},
		{UserID: 1, Subject: "Physiology", ScorePercent: 40, CorrectCount: 2, WrongCount: 3, TotalQuestions: 5, TimePerQuestion: []int{12}},
		{UserID: 2, Subject: "Anatomy", ScorePercent: 100, CorrectCount: 5, TotalQuestions: 5},
	}
	for i := range rows {
		require.NoError(t, repo.Create(&rows[i]))
	}
}

func TestSubjectStats(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewResultRepository(db)
	seedResults(t, repo)
	svc := NewAnalyticsService(repo)

	stats, err := svc.SubjectStats(1)
	require.NoError(t, err)
	require.Len(t, stats, 2, "other users' results stay out of the aggregation")

	anatomy := stats[0]
	assert.Equal(t, "Anatomy", anatomy.Subject)
	assert.Equal(t, 2, anatomy.Attempts)
	assert.Equal(t, 72.5, anatomy.AverageScore)
	assert.Equal(t, 85, anatomy.BestScore)
	assert.Equal(t, 25, anatomy.TotalQuestions)
	assert.Equal(t, 88, anatomy.TotalTimeSpent)

	physiology := stats[1]
	assert.Equal(t, "Physiology", physiology.Subject)
	assert.Equal(t, 1, physiology.Attempts)
	assert.Equal(t, 40.0, physiology.AverageScore)
	assert.Equal(t, 12, physiology.TotalTimeSpent)
}

func TestOverallStats(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewResultRepository(db)
	seedResults(t, repo)
	svc := NewAnalyticsService(repo)

	stats, err := svc.OverallStats(1)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalAttempts)
	assert.Equal(t, 30, stats.TotalQuestions)
	assert.Equal(t, 100, stats.TotalTimeSpent)
	assert.Equal(t, 61.7, stats.AverageScore) // round((60+85+40)/3 to one decimal)
}

func TestOverallStatsWithNoResults(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(repository.NewResultRepository(db))

	stats, err := svc.OverallStats(1)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalAttempts)
	assert.Equal(t, 0.0, stats.AverageScore)
}
