package repository

import (
	"github.com/falconakhil/CompeteHub/internal/model"
	"gorm.io/gorm"
)

type ParticipationRepository interface {
	Create(p *model.Participation) error
	FindByUserAndContest(userID, contestID uint) (*model.Participation, error)
	Delete(id uint) error
	TopByContest(contestID uint, limit int) ([]model.Participation, error)
	RankInContest(contestID, userID uint) (int, *model.Participation, error)
}

type participationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) Create(p *model.Participation) error {
	return r.db.Create(p).Error
}

func (r *participationRepository) FindByUserAndContest(userID, contestID uint) (*model.Participation, error) {
	var p model.Participation
	err := r.db.Where("user_id = ? AND contest_id = ?", userID, contestID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participationRepository) Delete(id uint) error {
	return r.db.Delete(&model.Participation{}, id).Error
}

// TopByContest is the database fallback for the redis leaderboard: highest
// score first, earlier registration breaking ties.
func (r *participationRepository) TopByContest(contestID uint, limit int) ([]model.Participation, error) {
	var parts []model.Participation
	err := r.db.Preload("User").
		Where("contest_id = ?", contestID).
		Order("score DESC, registration_time ASC").
		Limit(limit).
		Find(&parts).Error
	return parts, err
}

// RankInContest computes a user's 1-based rank as the number of strictly
// higher scores plus one.
func (r *participationRepository) RankInContest(contestID, userID uint) (int, *model.Participation, error) {
	p, err := r.FindByUserAndContest(userID, contestID)
	if err != nil {
		return 0, nil, err
	}

	var higher int64
	err = r.db.Model(&model.Participation{}).
		Where("contest_id = ? AND score > ?", contestID, p.Score).
		Count(&higher).Error
	if err != nil {
		return 0, nil, err
	}
	return int(higher) + 1, p, nil
}
