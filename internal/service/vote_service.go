package service

import (
	"fmt"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// VoteService implements the per-(post,user) vote toggle machine. Each
// transition is one existing-vote lookup followed by exactly one write:
// insert on first vote, update in place on a flip, delete on toggle-off.
type VoteService interface {
	Toggle(postID, userID uint, voteType string) (*dto.VoteStateDTO, error)
	Tally(postID, userID uint) (*dto.VoteStateDTO, error)
}

type voteService struct {
	postRepo  repository.PostRepository
	voteRepo  repository.VoteRepository
	pointsSvc PointsService
}

func NewVoteService(postRepo repository.PostRepository, voteRepo repository.VoteRepository, pointsSvc PointsService) VoteService {
	return &voteService{postRepo: postRepo, voteRepo: voteRepo, pointsSvc: pointsSvc}
}

func (s *voteService) Toggle(postID, userID uint, voteType string) (*dto.VoteStateDTO, error) {
	if voteType != model.VoteUp && voteType != model.VoteDown {
		return nil, ErrInvalidVoteType
	}

	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	existing, err := s.voteRepo.FindByPostAndUser(postID, userID)
	if err != nil {
		log.Error().Err(err).Uint("postID", postID).Uint("userID", userID).Msg("Toggle: vote lookup failed")
		return nil, fmt.Errorf("error looking up existing vote: %w", err)
	}

	var grantErr error
	switch {
	case existing == nil:
		vote := model.Vote{PostID: postID, UserID: userID, VoteType: voteType}
		if err := s.voteRepo.Create(&vote); err != nil {
			return nil, fmt.Errorf("error creating vote: %w", err)
		}
		// The post author earns points only when an upvote row is
		// inserted, never on a flip.
		if voteType == model.VoteUp {
			grantErr = s.pointsSvc.Award(post.AuthorID, PointsUpvoteReceived, GrantSourceUpvote, vote.ID)
		}
	case existing.VoteType == voteType:
		// Toggle-off: same vote repeated removes the row. Points are
		// not clawed back.
		if err := s.voteRepo.Delete(existing); err != nil {
			return nil, fmt.Errorf("error removing vote: %w", err)
		}
	default:
		existing.VoteType = voteType
		if err := s.voteRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("error updating vote: %w", err)
		}
	}

	state, err := s.Tally(postID, userID)
	if err != nil {
		return nil, err
	}
	if grantErr != nil {
		log.Error().Err(grantErr).Uint("postID", postID).Msg("Toggle: vote recorded but points grant failed")
		return state, fmt.Errorf("%w: %s", ErrPointsGrantFailed, grantErr.Error())
	}
	return state, nil
}

// Tally recomputes the authoritative (upvotes, downvotes, score) triple from
// the raw vote rows, plus the caller's own vote state.
func (s *voteService) Tally(postID, userID uint) (*dto.VoteStateDTO, error) {
	votes, err := s.voteRepo.FindAllByPost(postID)
	if err != nil {
		log.Error().Err(err).Uint("postID", postID).Msg("Tally: failed to load votes")
		return nil, fmt.Errorf("error loading votes: %w", err)
	}
	state := tallyVotes(votes, userID)
	state.PostID = postID
	return state, nil
}

func tallyVotes(votes []model.Vote, viewerID uint) *dto.VoteStateDTO {
	state := &dto.VoteStateDTO{}
	for _, v := range votes {
		switch v.VoteType {
		case model.VoteUp:
			state.Upvotes++
		case model.VoteDown:
			state.Downvotes++
		}
		if v.UserID == viewerID {
			state.MyVote = v.VoteType
		}
	}
	state.Score = state.Upvotes - state.Downvotes
	return state
}
