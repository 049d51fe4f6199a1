package repository

import (
	"github.com/adislens/medpgprep/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *model.Profile) error
	FindByID(id uint) (*model.Profile, error)
	Update(profile *model.Profile) error
	Delete(id uint) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) FindByID(id uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *model.Profile) error {
	return r.db.Save(profile).Error
}

func (r *profileRepository) Delete(id uint) error {
	return r.db.Delete(&model.Profile{}, id).Error
}
