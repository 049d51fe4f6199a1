package service

import (
	"fmt"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// Replies are paged oldest-first in fixed pages of 5.
const ReplyPageSize = 5

type ReplyService interface {
	Create(postID, userID uint, req dto.ReplyCreateDTO) (*dto.ReplyResponseDTO, error)
	ListPage(postID uint, page int) (*dto.ReplyPageDTO, error)
}

type replyService struct {
	postRepo    repository.PostRepository
	replyRepo   repository.ReplyRepository
	profileRepo repository.ProfileRepository
	pointsSvc   PointsService
}

func NewReplyService(
	postRepo repository.PostRepository,
	replyRepo repository.ReplyRepository,
	profileRepo repository.ProfileRepository,
	pointsSvc PointsService,
) ReplyService {
	return &replyService{
		postRepo:    postRepo,
		replyRepo:   replyRepo,
		profileRepo: profileRepo,
		pointsSvc:   pointsSvc,
	}
}

func (s *replyService) Create(postID, userID uint, req dto.ReplyCreateDTO) (*dto.ReplyResponseDTO, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, ErrPostNotFound
	}

	authorName := ""
	if profile, err := s.profileRepo.FindByID(userID); err == nil {
		authorName = profile.DisplayName
	}

	reply := model.Reply{
		PostID:     postID,
		Content:    req.Content,
		AuthorID:   userID,
		AuthorName: authorName,
	}
	if err := s.replyRepo.Create(&reply); err != nil {
		log.Error().Err(err).Uint("postID", postID).Msg("Create: failed to create reply")
		return nil, fmt.Errorf("error creating reply: %w", err)
	}

	var resp dto.ReplyResponseDTO
	if err := copier.Copy(&resp, &reply); err != nil {
		return nil, fmt.Errorf("error preparing reply response: %w", err)
	}

	if err := s.pointsSvc.Award(userID, PointsReplyCreated, GrantSourceReply, reply.ID); err != nil {
		log.Error().Err(err).Uint("replyID", reply.ID).Msg("Create: reply saved but points grant failed")
		return &resp, fmt.Errorf("%w: %s", ErrPointsGrantFailed, err.Error())
	}
	return &resp, nil
}

// ListPage fetches one page of replies ordered by creation time ascending.
// hasMore reports whether another page exists past this one.
func (s *replyService) ListPage(postID uint, page int) (*dto.ReplyPageDTO, error) {
	if page < 0 {
		page = 0
	}

	total, err := s.replyRepo.CountByPost(postID)
	if err != nil {
		log.Error().Err(err).Uint("postID", postID).Msg("ListPage: failed to count replies")
		return nil, fmt.Errorf("error counting replies: %w", err)
	}

	replies, err := s.replyRepo.FindPageByPost(postID, ReplyPageSize, page*ReplyPageSize)
	if err != nil {
		log.Error().Err(err).Uint("postID", postID).Int("page", page).Msg("ListPage: failed to fetch replies")
		return nil, fmt.Errorf("error fetching replies: %w", err)
	}

	dtos := make([]dto.ReplyResponseDTO, len(replies))
	for i, r := range replies {
		copier.Copy(&dtos[i], &r)
	}

	return &dto.ReplyPageDTO{
		Replies:    dtos,
		Page:       page,
		PageSize:   ReplyPageSize,
		TotalCount: int(total),
		HasMore:    (page+1)*ReplyPageSize < int(total),
	}, nil
}
