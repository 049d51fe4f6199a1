package repository

import (
	"github.com/adislens/medpgprep/internal/model"
	"gorm.io/gorm"
)

// SubjectAggregate is the grouped projection used by the analytics service.
type SubjectAggregate struct {
	Subject        string
	Attempts       int
	AverageScore   float64
	BestScore      int
	TotalQuestions int
}

type ResultRepository interface {
	Create(result *model.TestResult) error
	FindAllByUser(userID uint) ([]model.TestResult, error)
	FindByID(id uint) (*model.TestResult, error)
	AggregateBySubject(userID uint) ([]SubjectAggregate, error)
	DeleteAllByUser(userID uint) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.TestResult) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindAllByUser(userID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error
	return results, err
}

func (r *resultRepository) FindByID(id uint) (*model.TestResult, error) {
	var result model.TestResult
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) AggregateBySubject(userID uint) ([]SubjectAggregate, error) {
	var aggregates []SubjectAggregate
	err := r.db.Model(&model.TestResult{}).
		Select("subject, COUNT(*) as attempts, AVG(score_percent) as average_score, MAX(score_percent) as best_score, SUM(total_questions) as total_questions").
		Where("user_id = ?", userID).
		Group("subject").
		Order("subject ASC").
		Scan(&aggregates).Error
	return aggregates, err
}

func (r *resultRepository) DeleteAllByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.TestResult{}).Error
}
