package repository

import (
	"github.com/falconakhil/CompeteHub/internal/model"
	"gorm.io/gorm"
)

type ContestProblemRepository interface {
	Create(cp *model.ContestProblem) error
	CountByContest(contestID uint) (int64, error)
	FindByContestAndProblem(contestID, problemID uint) (*model.ContestProblem, error)
	FindByContestAndOrder(contestID uint, order int) (*model.ContestProblem, error)
	FindByContest(contestID uint, offset, limit int) ([]model.ContestProblem, int64, error)
	DeleteByContestAndProblem(contestID, problemID uint) (int64, error)
}

type contestProblemRepository struct {
	db *gorm.DB
}

func NewContestProblemRepository(db *gorm.DB) ContestProblemRepository {
	return &contestProblemRepository{db: db}
}

func (r *contestProblemRepository) Create(cp *model.ContestProblem) error {
	return r.db.Create(cp).Error
}

func (r *contestProblemRepository) CountByContest(contestID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ContestProblem{}).Where("contest_id = ?", contestID).Count(&count).Error
	return count, err
}

func (r *contestProblemRepository) FindByContestAndProblem(contestID, problemID uint) (*model.ContestProblem, error) {
	var cp model.ContestProblem
	err := r.db.Where("contest_id = ? AND problem_id = ?", contestID, problemID).First(&cp).Error
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *contestProblemRepository) FindByContestAndOrder(contestID uint, order int) (*model.ContestProblem, error) {
	var cp model.ContestProblem
	err := r.db.Preload("Problem.Genres").
		Where("contest_id = ? AND \"order\" = ?", contestID, order).
		First(&cp).Error
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

// FindByContest returns a page of contest problems sorted by presentation
// order, along with the total count.
func (r *contestProblemRepository) FindByContest(contestID uint, offset, limit int) ([]model.ContestProblem, int64, error) {
	query := r.db.Model(&model.ContestProblem{}).Where("contest_id = ?", contestID)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var cps []model.ContestProblem
	err := query.Preload("Problem.Genres").
		Order("\"order\" ASC").
		Offset(offset).Limit(limit).
		Find(&cps).Error
	if err != nil {
		return nil, 0, err
	}
	return cps, count, nil
}

// DeleteByContestAndProblem hard-deletes the association and reports how many
// rows were removed. Remaining orders are intentionally not renumbered.
func (r *contestProblemRepository) DeleteByContestAndProblem(contestID, problemID uint) (int64, error) {
	result := r.db.Where("contest_id = ? AND problem_id = ?", contestID, problemID).Delete(&model.ContestProblem{})
	return result.RowsAffected, result.Error
}
