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

// completedDefaultWindow is how far back the completed-contests listing looks
// when no date range is given.
const completedDefaultWindow = 30 * 24 * time.Hour

type ContestService interface {
	Create(creatorID uint, req dto.CreateContestRequest) (*dto.ContestResponse, error)
	Detail(contestID uint) (*dto.ContestResponse, error)
	Delete(userID, contestID uint) error
	ListFuture(creatorID uint) ([]dto.ContestResponse, error)
	ListActive() ([]dto.ContestResponse, error)
	ListCompleted(query dto.CompletedContestsQuery) ([]dto.ContestResponse, error)
}

type contestService struct {
	contestRepo repository.ContestRepository
	genreRepo   repository.GenreRepository
}

func NewContestService(contestRepo repository.ContestRepository, genreRepo repository.GenreRepository) ContestService {
	return &contestService{contestRepo: contestRepo, genreRepo: genreRepo}
}

func (s *contestService) Create(creatorID uint, req dto.CreateContestRequest) (*dto.ContestResponse, error) {
	now := time.Now()
	if !req.StartingTime.After(now) {
		return nil, fmt.Errorf("%w: starting time must be in the future", common.ErrValidation)
	}

	genres, err := s.genreRepo.GetOrCreate(req.GenreNames)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve contest genres")
		return nil, fmt.Errorf("%w: could not resolve genres", common.ErrInternalServer)
	}

	contest := model.Contest{
		Name:         req.Name,
		Description:  req.Description,
		StartingTime: req.StartingTime,
		Duration:     time.Duration(req.DurationMinutes) * time.Minute,
		Genres:       genres,
		CreatorID:    creatorID,
	}
	if err := s.contestRepo.Create(&contest); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create contest")
		return nil, fmt.Errorf("%w: could not create contest", common.ErrInternalServer)
	}

	return contestToResponse(&contest, now), nil
}

func (s *contestService) Detail(contestID uint) (*dto.ContestResponse, error) {
	contest, err := s.contestRepo.FindByID(contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contest not found", common.ErrNotFound)
		}
		return nil, err
	}
	return contestToResponse(contest, time.Now()), nil
}

// Delete removes a contest. Only the creator may delete, and only while the
// contest has not started.
func (s *contestService) Delete(userID, contestID uint) error {
	contest, err := s.contestRepo.FindByID(contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: contest not found", common.ErrNotFound)
		}
		return err
	}
	if contest.CreatorID != userID {
		return fmt.Errorf("%w: only the creator can delete a contest", common.ErrForbidden)
	}
	if contest.StatusAt(time.Now()) != model.ContestUpcoming {
		return fmt.Errorf("%w: contest can only be deleted before it starts", common.ErrForbidden)
	}
	return s.contestRepo.Delete(contestID)
}

func (s *contestService) ListFuture(creatorID uint) ([]dto.ContestResponse, error) {
	now := time.Now()
	contests, err := s.contestRepo.FindFutureByCreator(creatorID, now)
	if err != nil {
		return nil, err
	}
	return contestsToResponses(contests, now), nil
}

func (s *contestService) ListActive() ([]dto.ContestResponse, error) {
	now := time.Now()
	started, err := s.contestRepo.FindStartedBefore(now)
	if err != nil {
		return nil, err
	}

	var active []model.Contest
	for _, c := range started {
		if c.StatusAt(now) == model.ContestActive {
			active = append(active, c)
		}
	}
	return contestsToResponses(active, now), nil
}

// ListCompleted returns contests whose derived end time falls inside the
// requested date range, defaulting to the last 30 days.
func (s *contestService) ListCompleted(query dto.CompletedContestsQuery) ([]dto.ContestResponse, error) {
	now := time.Now()

	rangeStart := now.Add(-completedDefaultWindow)
	if query.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", common.ErrValidation)
		}
		rangeStart = parsed
	}

	rangeEnd := now
	if query.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", common.ErrValidation)
		}
		// Inclusive through end of day.
		rangeEnd = parsed.Add(24*time.Hour - time.Second)
	}

	started, err := s.contestRepo.FindStartedBefore(now)
	if err != nil {
		return nil, err
	}

	var completed []model.Contest
	for _, c := range started {
		end := c.EndTime()
		if c.StatusAt(now) == model.ContestCompleted && !end.Before(rangeStart) && !end.After(rangeEnd) {
			completed = append(completed, c)
		}
	}
	return contestsToResponses(completed, now), nil
}

func contestToResponse(contest *model.Contest, now time.Time) *dto.ContestResponse {
	resp := dto.ContestResponse{
		ID:              contest.ID,
		Name:            contest.Name,
		Description:     contest.Description,
		StartingTime:    contest.StartingTime,
		DurationMinutes: int(contest.Duration / time.Minute),
		EndTime:         contest.EndTime(),
		Status:          string(contest.StatusAt(now)),
		CreatorID:       contest.CreatorID,
		CreatorUsername: contest.Creator.Username,
	}
	copier.Copy(&resp.Genres, &contest.Genres)
	return &resp
}

func contestsToResponses(contests []model.Contest, now time.Time) []dto.ContestResponse {
	responses := make([]dto.ContestResponse, 0, len(contests))
	for i := range contests {
		responses = append(responses, *contestToResponse(&contests[i], now))
	}
	return responses
}
