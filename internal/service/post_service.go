package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/model"
	"github.com/adislens/medpgprep/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// Sort orders accepted by the post listing.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortMostVoted = "most_voted"
)

// ListPostsQuery carries the listing filters: case-insensitive substring
// search over title/content, exact subject match, and a sort order.
type ListPostsQuery struct {
	Search  string
	Subject string
	Sort    string
}

type PostService interface {
	Create(userID uint, req dto.PostCreateDTO) (*dto.PostResponseDTO, error)
	List(query ListPostsQuery, viewerID uint) ([]dto.PostResponseDTO, error)
	Get(postID, viewerID uint) (*dto.PostResponseDTO, error)
	Delete(postID, userID uint) error
}

type postService struct {
	postRepo    repository.PostRepository
	replyRepo   repository.ReplyRepository
	voteRepo    repository.VoteRepository
	profileRepo repository.ProfileRepository
	pointsSvc   PointsService
}

func NewPostService(
	postRepo repository.PostRepository,
	replyRepo repository.ReplyRepository,
	voteRepo repository.VoteRepository,
	profileRepo repository.ProfileRepository,
	pointsSvc PointsService,
) PostService {
	return &postService{
		postRepo:    postRepo,
		replyRepo:   replyRepo,
		voteRepo:    voteRepo,
		profileRepo: profileRepo,
		pointsSvc:   pointsSvc,
	}
}

func (s *postService) Create(userID uint, req dto.PostCreateDTO) (*dto.PostResponseDTO, error) {
	post := model.Post{
		Title:      req.Title,
		Content:    req.Content,
		Subject:    req.Subject,
		AuthorID:   userID,
		AuthorName: s.displayName(userID),
	}
	if err := s.postRepo.Create(&post); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Create: failed to create post")
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	var resp dto.PostResponseDTO
	if err := copier.Copy(&resp, &post); err != nil {
		return nil, fmt.Errorf("error preparing post response: %w", err)
	}

	if err := s.pointsSvc.Award(userID, PointsPostCreated, GrantSourcePost, post.ID); err != nil {
		log.Error().Err(err).Uint("postID", post.ID).Msg("Create: post saved but points grant failed")
		return &resp, fmt.Errorf("%w: %s", ErrPointsGrantFailed, err.Error())
	}
	return &resp, nil
}

func (s *postService) List(query ListPostsQuery, viewerID uint) ([]dto.PostResponseDTO, error) {
	posts, err := s.postRepo.FindAllWithVotesAndReplyCount()
	if err != nil {
		log.Error().Err(err).Msg("List: failed to fetch posts")
		return nil, fmt.Errorf("error fetching posts: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	dtos := make([]dto.PostResponseDTO, 0, len(posts))
	for _, p := range posts {
		if query.Subject != "" && p.Subject != query.Subject {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Content), search) {
			continue
		}
		dtos = append(dtos, s.postDTO(p.Post, p.ReplyCount, viewerID))
	}

	switch query.Sort {
	case SortOldest:
		sort.SliceStable(dtos, func(i, j int) bool { return dtos[i].CreatedAt.Before(dtos[j].CreatedAt) })
	case SortMostVoted:
		sort.SliceStable(dtos, func(i, j int) bool { return dtos[i].Score > dtos[j].Score })
	default: // SortNewest
		sort.SliceStable(dtos, func(i, j int) bool { return dtos[i].CreatedAt.After(dtos[j].CreatedAt) })
	}
	return dtos, nil
}

func (s *postService) Get(postID, viewerID uint) (*dto.PostResponseDTO, error) {
	post, err := s.postRepo.FindByIDWithVotes(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	count, err := s.replyRepo.CountByPost(postID)
	if err != nil {
		log.Error().Err(err).Uint("postID", postID).Msg("Get: failed to count replies")
		return nil, fmt.Errorf("error counting replies: %w", err)
	}
	resp := s.postDTO(*post, int(count), viewerID)
	return &resp, nil
}

// Delete removes a post and cascades to its replies and votes. Owner only.
func (s *postService) Delete(postID, userID uint) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ErrNotPostAuthor
	}

	if err := s.replyRepo.DeleteAllByPost(postID); err != nil {
		return fmt.Errorf("error deleting post replies: %w", err)
	}
	if err := s.voteRepo.DeleteAllByPost(postID); err != nil {
		return fmt.Errorf("error deleting post votes: %w", err)
	}
	if err := s.postRepo.Delete(postID); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	log.Info().Uint("postID", postID).Uint("userID", userID).Msg("Post deleted")
	return nil
}

func (s *postService) postDTO(post model.Post, replyCount int, viewerID uint) dto.PostResponseDTO {
	var resp dto.PostResponseDTO
	copier.Copy(&resp, &post)
	tally := tallyVotes(post.Votes, viewerID)
	resp.Upvotes = tally.Upvotes
	resp.Downvotes = tally.Downvotes
	resp.Score = tally.Score
	resp.MyVote = tally.MyVote
	resp.ReplyCount = replyCount
	return resp
}

// displayName resolves the author name snapshot stored on new content; a
// missing profile degrades to an empty name rather than failing the write.
func (s *postService) displayName(userID uint) string {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("displayName: profile lookup failed")
		return ""
	}
	return profile.DisplayName
}
