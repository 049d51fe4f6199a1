package repository

import (
	"errors"

	"github.com/adislens/medpgprep/internal/model"
	"gorm.io/gorm"
)

type VoteRepository interface {
	Create(vote *model.Vote) error
	Update(vote *model.Vote) error
	Delete(vote *model.Vote) error
	FindByPostAndUser(postID, userID uint) (*model.Vote, error)
	FindAllByPost(postID uint) ([]model.Vote, error)
	DeleteAllByPost(postID uint) error
	DeleteAllByUser(userID uint) error
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(vote *model.Vote) error {
	return r.db.Create(vote).Error
}

func (r *voteRepository) Update(vote *model.Vote) error {
	return r.db.Save(vote).Error
}

func (r *voteRepository) Delete(vote *model.Vote) error {
	return r.db.Delete(vote).Error
}

// FindByPostAndUser returns (nil, nil) when the user has no vote on the post.
func (r *voteRepository) FindByPostAndUser(postID, userID uint) (*model.Vote, error) {
	var vote model.Vote
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *voteRepository) FindAllByPost(postID uint) ([]model.Vote, error) {
	var votes []model.Vote
	err := r.db.Where("post_id = ?", postID).Find(&votes).Error
	return votes, err
}

func (r *voteRepository) DeleteAllByPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&model.Vote{}).Error
}

func (r *voteRepository) DeleteAllByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Vote{}).Error
}
