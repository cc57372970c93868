package repository

import (
	"fmt"
	"time"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository interface {
	Create(sub *model.Submission) error
	HasCorrect(userID, problemID uint) (bool, error)
	FindByUserAndProblem(userID, problemID uint, offset, limit int) ([]model.Submission, int64, error)
	RecordContestSubmission(sub *model.Submission, participationID uint, points int) (*model.Participation, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(sub *model.Submission) error {
	return r.db.Create(sub).Error
}

func (r *submissionRepository) HasCorrect(userID, problemID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Submission{}).
		Where("user_id = ? AND problem_id = ? AND status = ?", userID, problemID, model.SubmissionCorrect).
		Count(&count).Error
	return count > 0, err
}

func (r *submissionRepository) FindByUserAndProblem(userID, problemID uint, offset, limit int) ([]model.Submission, int64, error) {
	query := r.db.Model(&model.Submission{}).Where("user_id = ? AND problem_id = ?", userID, problemID)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var subs []model.Submission
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, count, nil
}

// RecordContestSubmission appends the submission and updates the participation
// ledger in a single transaction. The participation row is locked for the
// duration so two concurrent submissions by the same user cannot both pass the
// already-solved check and double-award points.
func (r *submissionRepository) RecordContestSubmission(sub *model.Submission, participationID uint, points int) (*model.Participation, error) {
	var updated model.Participation

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var part model.Participation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&part, participationID).Error; err != nil {
			return err
		}

		award := 0
		if sub.Status == model.SubmissionCorrect && points > 0 {
			// Re-check under the lock: a concurrent submission may have
			// solved the problem since the caller's check.
			var solved int64
			err := tx.Model(&model.Submission{}).
				Where("user_id = ? AND problem_id = ? AND status = ?", sub.UserID, sub.ProblemID, model.SubmissionCorrect).
				Count(&solved).Error
			if err != nil {
				return err
			}
			if solved > 0 {
				return fmt.Errorf("%w: problem already solved", common.ErrBadRequest)
			}
			award = points
		}

		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		now := time.Now()
		part.SubmissionsCount++
		part.LastSubmissionTime = &now
		part.Score += award
		if err := tx.Model(&model.Participation{}).Where("id = ?", part.ID).Updates(map[string]interface{}{
			"submissions_count":    part.SubmissionsCount,
			"last_submission_time": part.LastSubmissionTime,
			"score":                part.Score,
		}).Error; err != nil {
			return err
		}
		updated = part
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
