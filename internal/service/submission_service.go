package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/model"
	"github.com/falconakhil/CompeteHub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService judges contest submissions: it gates on registration and
// contest phase, scores the answer, and applies the submission insert and the
// participation update as one atomic step. The oracle is consulted before
// anything is persisted, so an oracle failure leaves no trace in the ledger.
type SubmissionService interface {
	Submit(ctx context.Context, userID, contestID uint, order int, answer string) (*dto.ContestSubmissionResponse, error)
}

type submissionService struct {
	contestRepo        repository.ContestRepository
	contestProblemRepo repository.ContestProblemRepository
	participationRepo  repository.ParticipationRepository
	submissionRepo     repository.SubmissionRepository
	scoring            ScoringService
	leaderboard        LeaderboardService
}

func NewSubmissionService(
	contestRepo repository.ContestRepository,
	contestProblemRepo repository.ContestProblemRepository,
	participationRepo repository.ParticipationRepository,
	submissionRepo repository.SubmissionRepository,
	scoring ScoringService,
	leaderboard LeaderboardService,
) SubmissionService {
	return &submissionService{
		contestRepo:        contestRepo,
		contestProblemRepo: contestProblemRepo,
		participationRepo:  participationRepo,
		submissionRepo:     submissionRepo,
		scoring:            scoring,
		leaderboard:        leaderboard,
	}
}

func (s *submissionService) Submit(ctx context.Context, userID, contestID uint, order int, answer string) (*dto.ContestSubmissionResponse, error) {
	contest, err := s.contestRepo.FindByID(contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contest not found", common.ErrNotFound)
		}
		return nil, err
	}

	participation, err := s.participationRepo.FindByUserAndContest(userID, contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: not registered for this contest", common.ErrForbidden)
		}
		return nil, err
	}

	if contest.StatusAt(time.Now()) != model.ContestActive {
		return nil, fmt.Errorf("%w: contest is not active", common.ErrForbidden)
	}

	cp, err := s.contestProblemRepo.FindByContestAndOrder(contestID, order)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no problem at order %d", common.ErrNotFound, order)
		}
		return nil, err
	}

	solved, err := s.submissionRepo.HasCorrect(userID, cp.ProblemID)
	if err != nil {
		return nil, err
	}
	if solved {
		return nil, fmt.Errorf("%w: problem already solved", common.ErrBadRequest)
	}

	// Evaluate first, persist second: a slow or failing oracle must not leave
	// partial state behind.
	verdict, err := s.scoring.Evaluate(ctx, &cp.Problem, answer)
	if err != nil {
		return nil, err
	}

	submission := model.Submission{
		UserID:    userID,
		ProblemID: cp.ProblemID,
		Content:   answer,
		Status:    verdict.Status,
		Score:     verdict.Score,
		Remarks:   verdict.Remarks,
	}

	updated, err := s.submissionRepo.RecordContestSubmission(&submission, participation.ID, cp.Points)
	if err != nil {
		return nil, err
	}

	awarded := updated.Score - participation.Score
	if awarded > 0 {
		s.leaderboard.RecordScore(ctx, contestID, userID, updated.Score)
	}

	log.Info().
		Uint("contest_id", contestID).
		Uint("user_id", userID).
		Int("order", order).
		Str("status", submission.Status).
		Int("points_awarded", awarded).
		Msg("Submission judged")

	return &dto.ContestSubmissionResponse{
		Submission:       submissionToResponse(&submission),
		PointsAwarded:    awarded,
		TotalScore:       updated.Score,
		SubmissionsCount: updated.SubmissionsCount,
	}, nil
}

func submissionToResponse(sub *model.Submission) dto.SubmissionResponse {
	return dto.SubmissionResponse{
		ID:        sub.ID,
		ProblemID: sub.ProblemID,
		Content:   sub.Content,
		Status:    sub.Status,
		Score:     sub.Score,
		Remarks:   sub.Remarks,
		CreatedAt: sub.CreatedAt,
	}
}
