package service

import (
	"fmt"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// Point values awarded for community activity. The ledger is one-way:
// removing a post or toggling off an upvote never claws points back.
const (
	PointsPostCreated    = 10
	PointsReplyCreated   = 5
	PointsUpvoteReceived = 2
)

// Grant source types, paired with the id of the row that earned the grant.
const (
	GrantSourcePost   = "post"
	GrantSourceReply  = "reply"
	GrantSourceUpvote = "upvote"
)

type PointsService interface {
	// Award grants points exactly once per (sourceType, sourceID);
	// duplicate deliveries of the same event are detected and ignored.
	Award(userID uint, points int, sourceType string, sourceID uint) error
	GetPoints(userID uint) (*dto.UserPointsDTO, error)
}

type pointsService struct {
	pointsRepo repository.PointsRepository
}

func NewPointsService(pointsRepo repository.PointsRepository) PointsService {
	return &pointsService{pointsRepo: pointsRepo}
}

func (s *pointsService) Award(userID uint, points int, sourceType string, sourceID uint) error {
	existing, err := s.pointsRepo.FindGrant(sourceType, sourceID)
	if err != nil {
		return fmt.Errorf("error checking existing point grant: %w", err)
	}
	if existing != nil {
		log.Debug().Str("sourceType", sourceType).Uint("sourceID", sourceID).
			Msg("Award: grant already recorded, skipping")
		return nil
	}

	grant := model.PointGrant{
		UserID:     userID,
		SourceType: sourceType,
		SourceID:   sourceID,
		Points:     points,
	}
	if err := s.pointsRepo.CreateGrant(&grant); err != nil {
		return fmt.Errorf("error recording point grant: %w", err)
	}
	if err := s.pointsRepo.AddPoints(userID, points); err != nil {
		return fmt.Errorf("error incrementing user points: %w", err)
	}
	return nil
}

func (s *pointsService) GetPoints(userID uint) (*dto.UserPointsDTO, error) {
	up, err := s.pointsRepo.FindByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetPoints: repository error")
		return nil, fmt.Errorf("error fetching points: %w", err)
	}
	return &dto.UserPointsDTO{UserID: userID, Points: up.Points}, nil
}
