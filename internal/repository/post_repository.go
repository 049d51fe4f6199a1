package repository

import (
	"github.com/adislens/medpgprep/internal/model"
	"gorm.io/gorm"
)

// PostWithReplyCount pairs a post (votes preloaded) with its reply total so
// the listing needs a single round trip.
type PostWithReplyCount struct {
	model.Post
	ReplyCount int
}

type PostRepository interface {
	Create(post *model.Post) error
	FindByID(id uint) (*model.Post, error)
	FindByIDWithVotes(id uint) (*model.Post, error)
	FindAllWithVotesAndReplyCount() ([]PostWithReplyCount, error)
	Delete(id uint) error
	DeleteAllByAuthor(authorID uint) error
	FindIDsByAuthor(authorID uint) ([]uint, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindByIDWithVotes(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Votes").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAllWithVotesAndReplyCount() ([]PostWithReplyCount, error) {
	var posts []model.Post
	if err := r.db.Preload("Votes").Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}

	results := make([]PostWithReplyCount, len(posts))
	for i, post := range posts {
		var count int64
		if err := r.db.Model(&model.Reply{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		results[i] = PostWithReplyCount{Post: post, ReplyCount: int(count)}
	}
	return results, nil
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&model.Post{}, id).Error
}

func (r *postRepository) DeleteAllByAuthor(authorID uint) error {
	return r.db.Where("author_id = ?", authorID).Delete(&model.Post{}).Error
}

func (r *postRepository) FindIDsByAuthor(authorID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Post{}).Where("author_id = ?", authorID).Pluck("id", &ids).Error
	return ids, err
}
