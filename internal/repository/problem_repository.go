package repository

import (
	"github.com/falconakhil/CompeteHub/internal/model"
	"gorm.io/gorm"
)

type ProblemRepository interface {
	Create(problem *model.Problem) error
	FindByID(id uint) (*model.Problem, error)
	FindAll(genre string, offset, limit int) ([]model.Problem, int64, error)
}

type problemRepository struct {
	db *gorm.DB
}

func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) Create(problem *model.Problem) error {
	return r.db.Create(problem).Error
}

func (r *problemRepository) FindByID(id uint) (*model.Problem, error) {
	var problem model.Problem
	if err := r.db.Preload("Genres").First(&problem, id).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

// FindAll returns a page of problems, newest first, optionally filtered by
// genre name, along with the total row count for pagination.
func (r *problemRepository) FindAll(genre string, offset, limit int) ([]model.Problem, int64, error) {
	query := r.db.Model(&model.Problem{})
	if genre != "" {
		query = query.
			Joins("JOIN problem_genres ON problem_genres.problem_id = problems.id").
			Joins("JOIN genres ON genres.id = problem_genres.genre_id").
			Where("genres.name LIKE ?", "%"+genre+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var problems []model.Problem
	err := query.Preload("Genres").
		Order("problems.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&problems).Error
	if err != nil {
		return nil, 0, err
	}
	return problems, count, nil
}
