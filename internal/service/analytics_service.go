package service

import (
	"fmt"
	"math"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// AnalyticsService derives aggregate statistics from persisted results. All
// values are recomputed from the raw rows on every read; nothing is cached.
type AnalyticsService interface {
	SubjectStats(userID uint) ([]dto.SubjectStatsDTO, error)
	OverallStats(userID uint) (*dto.OverallStatsDTO, error)
}

type analyticsService struct {
	resultRepo repository.ResultRepository
}

func NewAnalyticsService(resultRepo repository.ResultRepository) AnalyticsService {
	return &analyticsService{resultRepo: resultRepo}
}

func (s *analyticsService) SubjectStats(userID uint) ([]dto.SubjectStatsDTO, error) {
	aggregates, err := s.resultRepo.AggregateBySubject(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubjectStats: aggregation failed")
		return nil, fmt.Errorf("error aggregating results: %w", err)
	}

	// Time spent lives in a serialized column, so it is summed in a second
	// pass over the raw rows.
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching results: %w", err)
	}
	timeBySubject := make(map[string]int)
	for _, r := range results {
		for _, seconds := range r.TimePerQuestion {
			timeBySubject[r.Subject] += seconds
		}
	}

	stats := make([]dto.SubjectStatsDTO, len(aggregates))
	for i, agg := range aggregates {
		stats[i] = dto.SubjectStatsDTO{
			Subject:        agg.Subject,
			Attempts:       agg.Attempts,
			AverageScore:   math.Round(agg.AverageScore*10) / 10,
			BestScore:      agg.BestScore,
			TotalQuestions: agg.TotalQuestions,
			TotalTimeSpent: timeBySubject[agg.Subject],
		}
	}
	return stats, nil
}

func (s *analyticsService) OverallStats(userID uint) (*dto.OverallStatsDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("OverallStats: failed to fetch results")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}

	stats := &dto.OverallStatsDTO{TotalAttempts: len(results)}
	scoreSum := 0
	for _, r := range results {
		scoreSum += r.ScorePercent
		stats.TotalQuestions += r.TotalQuestions
		for _, seconds := range r.TimePerQuestion {
			stats.TotalTimeSpent += seconds
		}
	}
	if len(results) > 0 {
		stats.AverageScore = math.Round(float64(scoreSum)/float64(len(results))*10) / 10
	}
	return stats, nil
}
