package service

import (
	"fmt"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type ResultService interface {
	History(userID uint) ([]dto.TestResultDTO, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
}

func NewResultService(resultRepo repository.ResultRepository) ResultService {
	return &resultService{resultRepo: resultRepo}
}

// History lists the user's persisted results, newest first.
func (s *resultService) History(userID uint) ([]dto.TestResultDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("History: failed to fetch results")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}

	dtos := make([]dto.TestResultDTO, len(results))
	for i, r := range results {
		copier.Copy(&dtos[i], &r)
	}
	return dtos, nil
}
