package service

import (
	"fmt"

	"github.com/adislens/medpgprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// AccountService deletes a user and everything they own. The cascade is a
// best-effort sequence, children first; there is no enclosing transaction,
// so completed steps are not rolled back when a later one fails.
type AccountService interface {
	DeleteAccount(userID uint) error
}

type accountService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	replyRepo   repository.ReplyRepository
	voteRepo    repository.VoteRepository
	pointsRepo  repository.PointsRepository
	resultRepo  repository.ResultRepository
}

func NewAccountService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
	replyRepo repository.ReplyRepository,
	voteRepo repository.VoteRepository,
	pointsRepo repository.PointsRepository,
	resultRepo repository.ResultRepository,
) AccountService {
	return &accountService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
		replyRepo:   replyRepo,
		voteRepo:    voteRepo,
		pointsRepo:  pointsRepo,
		resultRepo:  resultRepo,
	}
}

func (s *accountService) DeleteAccount(userID uint) error {
	if err := s.voteRepo.DeleteAllByUser(userID); err != nil {
		return fmt.Errorf("error deleting votes: %w", err)
	}
	if err := s.replyRepo.DeleteAllByAuthor(userID); err != nil {
		return fmt.Errorf("error deleting replies: %w", err)
	}

	// Posts cascade to other users' replies and votes on those posts.
	postIDs, err := s.postRepo.FindIDsByAuthor(userID)
	if err != nil {
		return fmt.Errorf("error listing posts: %w", err)
	}
	for _, postID := range postIDs {
		if err := s.replyRepo.DeleteAllByPost(postID); err != nil {
			return fmt.Errorf("error deleting replies of post %d: %w", postID, err)
		}
		if err := s.voteRepo.DeleteAllByPost(postID); err != nil {
			return fmt.Errorf("error deleting votes of post %d: %w", postID, err)
		}
	}
	if err := s.postRepo.DeleteAllByAuthor(userID); err != nil {
		return fmt.Errorf("error deleting posts: %w", err)
	}

	if err := s.pointsRepo.DeleteAllByUser(userID); err != nil {
		return fmt.Errorf("error deleting points: %w", err)
	}
	if err := s.resultRepo.DeleteAllByUser(userID); err != nil {
		return fmt.Errorf("error deleting test results: %w", err)
	}
	if err := s.profileRepo.Delete(userID); err != nil {
		return fmt.Errorf("error deleting profile: %w", err)
	}
	if err := s.userRepo.Delete(userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	log.Info().Uint("userID", userID).Msg("Account deleted")
	return nil
}
