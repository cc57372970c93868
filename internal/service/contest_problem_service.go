package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/model"
	"github.com/falconakhil/CompeteHub/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ContestProblemService manages the ordered set of problems attached to a
// contest. Mutations are creator-only and allowed only before the contest
// starts.
type ContestProblemService interface {
	AddProblems(userID, contestID uint, problemIDs []uint) ([]uint, error)
	RemoveProblem(userID, contestID, problemID uint) error
	ListProblems(contestID uint, offset, limit int) ([]dto.ContestProblemResponse, int64, error)
	GetProblemByOrder(userID, contestID uint, order int) (*dto.ContestProblemResponse, error)
}

type contestProblemService struct {
	contestRepo        repository.ContestRepository
	problemRepo        repository.ProblemRepository
	contestProblemRepo repository.ContestProblemRepository
	participationRepo  repository.ParticipationRepository
}

func NewContestProblemService(
	contestRepo repository.ContestRepository,
	problemRepo repository.ProblemRepository,
	contestProblemRepo repository.ContestProblemRepository,
	participationRepo repository.ParticipationRepository,
) ContestProblemService {
	return &contestProblemService{
		contestRepo:        contestRepo,
		problemRepo:        problemRepo,
		contestProblemRepo: contestProblemRepo,
		participationRepo:  participationRepo,
	}
}

// AddProblems attaches each problem to the contest with the default point
// value and the next free order. Problems already attached are skipped, so
// the operation is idempotent per problem.
func (s *contestProblemService) AddProblems(userID, contestID uint, problemIDs []uint) ([]uint, error) {
	contest, err := s.requireUpcomingOwnedContest(userID, contestID)
	if err != nil {
		return nil, err
	}

	added := make([]uint, 0, len(problemIDs))
	for _, problemID := range problemIDs {
		if _, err := s.problemRepo.FindByID(problemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: problem with ID %d does not exist", common.ErrBadRequest, problemID)
			}
			return nil, err
		}

		if _, err := s.contestProblemRepo.FindByContestAndProblem(contestID, problemID); err == nil {
			added = append(added, problemID)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		count, err := s.contestProblemRepo.CountByContest(contestID)
		if err != nil {
			return nil, err
		}
		cp := model.ContestProblem{
			ContestID: contestID,
			ProblemID: problemID,
			Points:    model.DefaultProblemPoints,
			Order:     int(count) + 1,
		}
		if err := s.contestProblemRepo.Create(&cp); err != nil {
			log.Error().Err(err).Uint("contest_id", contestID).Uint("problem_id", problemID).Msg("Failed to attach problem to contest")
			return nil, fmt.Errorf("%w: could not add problem %d", common.ErrInternalServer, problemID)
		}
		added = append(added, problemID)
	}

	log.Info().Uint("contest_id", contest.ID).Int("added", len(added)).Msg("Problems attached to contest")
	return added, nil
}

// RemoveProblem detaches a problem. Orders of the remaining problems are left
// untouched, so a gap in the sequence is possible.
func (s *contestProblemService) RemoveProblem(userID, contestID, problemID uint) error {
	if _, err := s.requireUpcomingOwnedContest(userID, contestID); err != nil {
		return err
	}

	removed, err := s.contestProblemRepo.DeleteByContestAndProblem(contestID, problemID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return fmt.Errorf("%w: problem is not part of this contest", common.ErrNotFound)
	}
	return nil
}

func (s *contestProblemService) ListProblems(contestID uint, offset, limit int) ([]dto.ContestProblemResponse, int64, error) {
	if _, err := s.contestRepo.FindByID(contestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("%w: contest not found", common.ErrNotFound)
		}
		return nil, 0, err
	}

	cps, count, err := s.contestProblemRepo.FindByContest(contestID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.ContestProblemResponse, 0, len(cps))
	for i := range cps {
		responses = append(responses, *contestProblemToResponse(&cps[i]))
	}
	return responses, count, nil
}

// GetProblemByOrder resolves the problem at a 1-based order. The caller must
// be registered and the contest must be active.
func (s *contestProblemService) GetProblemByOrder(userID, contestID uint, order int) (*dto.ContestProblemResponse, error) {
	contest, err := s.contestRepo.FindByID(contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contest not found", common.ErrNotFound)
		}
		return nil, err
	}

	if _, err := s.participationRepo.FindByUserAndContest(userID, contestID); err != nil {
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
	return contestProblemToResponse(cp), nil
}

func (s *contestProblemService) requireUpcomingOwnedContest(userID, contestID uint) (*model.Contest, error) {
	contest, err := s.contestRepo.FindByID(contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contest not found", common.ErrNotFound)
		}
		return nil, err
	}
	if contest.CreatorID != userID {
		return nil, fmt.Errorf("%w: only the creator can modify contest problems", common.ErrForbidden)
	}
	if contest.StatusAt(time.Now()) != model.ContestUpcoming {
		return nil, fmt.Errorf("%w: contest problems can only be changed before the contest starts", common.ErrForbidden)
	}
	return contest, nil
}

func contestProblemToResponse(cp *model.ContestProblem) *dto.ContestProblemResponse {
	resp := dto.ContestProblemResponse{
		ProblemID: cp.ProblemID,
		Title:     cp.Problem.Title,
		Question:  cp.Problem.Question,
		EvalMode:  cp.Problem.EvalMode,
		Points:    cp.Points,
		Order:     cp.Order,
	}
	copier.Copy(&resp.Genres, &cp.Problem.Genres)
	return &resp
}
