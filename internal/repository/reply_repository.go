package repository

import (
	"github.com/adislens/medpgprep/internal/model"
	"gorm.io/gorm"
)

type ReplyRepository interface {
	Create(reply *model.Reply) error
	FindPageByPost(postID uint, limit, offset int) ([]model.Reply, error)
	CountByPost(postID uint) (int64, error)
	DeleteAllByPost(postID uint) error
	DeleteAllByAuthor(authorID uint) error
}

type replyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(reply *model.Reply) error {
	return r.db.Create(reply).Error
}

func (r *replyRepository) FindPageByPost(postID uint, limit, offset int) ([]model.Reply, error) {
	var replies []model.Reply
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Limit(limit).Offset(offset).Find(&replies).Error
	return replies, err
}

func (r *replyRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Reply{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *replyRepository) DeleteAllByPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&model.Reply{}).Error
}

func (r *replyRepository) DeleteAllByAuthor(authorID uint) error {
	return r.db.Where("author_id = ?", authorID).Delete(&model.Reply{}).Error
}
