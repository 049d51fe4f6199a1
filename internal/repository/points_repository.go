package repository

import (
	"errors"

	"github.com/adislens/medpgprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PointsRepository interface {
	AddPoints(userID uint, points int) error
	FindByUser(userID uint) (*model.UserPoints, error)
	CreateGrant(grant *model.PointGrant) error
	FindGrant(sourceType string, sourceID uint) (*model.PointGrant, error)
	DeleteAllByUser(userID uint) error
}

type pointsRepository struct {
	db *gorm.DB
}

func NewPointsRepository(db *gorm.DB) PointsRepository {
	return &pointsRepository{db: db}
}

// AddPoints upserts the per-user counter: insert on first award, otherwise
// increment in place.
func (r *pointsRepository) AddPoints(userID uint, points int) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"points": gorm.Expr("user_points.points + ?", points)}),
	}).Create(&model.UserPoints{UserID: userID, Points: points}).Error
}

func (r *pointsRepository) FindByUser(userID uint) (*model.UserPoints, error) {
	var up model.UserPoints
	err := r.db.Where("user_id = ?", userID).First(&up).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.UserPoints{UserID: userID, Points: 0}, nil
	}
	if err != nil {
		return nil, err
	}
	return &up, nil
}

func (r *pointsRepository) CreateGrant(grant *model.PointGrant) error {
	return r.db.Create(grant).Error
}

func (r *pointsRepository) FindGrant(sourceType string, sourceID uint) (*model.PointGrant, error) {
	var grant model.PointGrant
	err := r.db.Where("source_type = ? AND source_id = ?", sourceType, sourceID).First(&grant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

func (r *pointsRepository) DeleteAllByUser(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.PointGrant{}).Error; err != nil {
		return err
	}
	return r.db.Where("user_id = ?", userID).Delete(&model.UserPoints{}).Error
}
