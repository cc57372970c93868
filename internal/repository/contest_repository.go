package repository

import (
	"time"

	"github.com/falconakhil/CompeteHub/internal/model"
	"gorm.io/gorm"
)

type ContestRepository interface {
	Create(contest *model.Contest) error
	FindByID(id uint) (*model.Contest, error)
	Delete(id uint) error
	FindFutureByCreator(creatorID uint, now time.Time) ([]model.Contest, error)
	FindStartedBefore(now time.Time) ([]model.Contest, error)
}

type contestRepository struct {
	db *gorm.DB
}

func NewContestRepository(db *gorm.DB) ContestRepository {
	return &contestRepository{db: db}
}

func (r *contestRepository) Create(contest *model.Contest) error {
	// Create with associations also links the genres.
	return r.db.Create(contest).Error
}

func (r *contestRepository) FindByID(id uint) (*model.Contest, error) {
	var contest model.Contest
	if err := r.db.Preload("Genres").Preload("Creator").First(&contest, id).Error; err != nil {
		return nil, err
	}
	return &contest, nil
}

func (r *contestRepository) Delete(id uint) error {
	return r.db.Delete(&model.Contest{}, id).Error
}

func (r *contestRepository) FindFutureByCreator(creatorID uint, now time.Time) ([]model.Contest, error) {
	var contests []model.Contest
	err := r.db.Preload("Genres").
		Where("creator_id = ? AND starting_time > ?", creatorID, now).
		Order("starting_time ASC").
		Find(&contests).Error
	return contests, err
}

// FindStartedBefore returns contests whose starting time has passed. The end
// time is derived from the stored duration, so splitting them into active and
// completed happens in the service layer.
func (r *contestRepository) FindStartedBefore(now time.Time) ([]model.Contest, error) {
	var contests []model.Contest
	err := r.db.Preload("Genres").
		Where("starting_time <= ?", now).
		Order("starting_time DESC").
		Find(&contests).Error
	return contests, err
}
