package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/model"
	"github.com/falconakhil/CompeteHub/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProblemService owns the problem catalog and submissions made directly
// against a problem, outside any contest. Direct submissions are judged the
// same way as contest ones but never award points.
type ProblemService interface {
	Create(creatorID uint, req dto.CreateProblemRequest) (*dto.ProblemResponse, error)
	List(genre string, offset, limit int) ([]dto.ProblemResponse, int64, error)
	SubmitDirect(ctx context.Context, userID, problemID uint, answer string) (*dto.SubmissionResponse, error)
	ListSubmissions(userID, problemID uint, offset, limit int) ([]dto.SubmissionResponse, int64, error)
}

type problemService struct {
	problemRepo    repository.ProblemRepository
	genreRepo      repository.GenreRepository
	submissionRepo repository.SubmissionRepository
	scoring        ScoringService
}

func NewProblemService(
	problemRepo repository.ProblemRepository,
	genreRepo repository.GenreRepository,
	submissionRepo repository.SubmissionRepository,
	scoring ScoringService,
) ProblemService {
	return &problemService{
		problemRepo:    problemRepo,
		genreRepo:      genreRepo,
		submissionRepo: submissionRepo,
		scoring:        scoring,
	}
}

func (s *problemService) Create(creatorID uint, req dto.CreateProblemRequest) (*dto.ProblemResponse, error) {
	genres, err := s.genreRepo.GetOrCreate(req.GenreNames)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve problem genres")
		return nil, fmt.Errorf("%w: could not resolve genres", common.ErrInternalServer)
	}

	evalMode := req.EvalMode
	if evalMode == "" {
		evalMode = model.EvalModeExact
	}

	problem := model.Problem{
		Title:     req.Title,
		Question:  req.Question,
		Answer:    req.Answer,
		Genres:    genres,
		EvalMode:  evalMode,
		CreatorID: creatorID,
	}
	if err := s.problemRepo.Create(&problem); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create problem")
		return nil, fmt.Errorf("%w: could not create problem", common.ErrInternalServer)
	}
	return problemToResponse(&problem), nil
}

func (s *problemService) List(genre string, offset, limit int) ([]dto.ProblemResponse, int64, error) {
	problems, count, err := s.problemRepo.FindAll(genre, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.ProblemResponse, 0, len(problems))
	for i := range problems {
		responses = append(responses, *problemToResponse(&problems[i]))
	}
	return responses, count, nil
}

func (s *problemService) SubmitDirect(ctx context.Context, userID, problemID uint, answer string) (*dto.SubmissionResponse, error) {
	problem, err := s.problemRepo.FindByID(problemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: problem not found", common.ErrNotFound)
		}
		return nil, err
	}

	verdict, err := s.scoring.Evaluate(ctx, problem, answer)
	if err != nil {
		return nil, err
	}

	submission := model.Submission{
		UserID:    userID,
		ProblemID: problemID,
		Content:   answer,
		Status:    verdict.Status,
		Score:     verdict.Score,
		Remarks:   verdict.Remarks,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Uint("problem_id", problemID).Msg("Failed to record submission")
		return nil, fmt.Errorf("%w: could not record submission", common.ErrInternalServer)
	}

	resp := submissionToResponse(&submission)
	return &resp, nil
}

func (s *problemService) ListSubmissions(userID, problemID uint, offset, limit int) ([]dto.SubmissionResponse, int64, error) {
	subs, count, err := s.submissionRepo.FindByUserAndProblem(userID, problemID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.SubmissionResponse, 0, len(subs))
	for i := range subs {
		responses = append(responses, submissionToResponse(&subs[i]))
	}
	return responses, count, nil
}

func problemToResponse(problem *model.Problem) *dto.ProblemResponse {
	resp := dto.ProblemResponse{
		ID:        problem.ID,
		Title:     problem.Title,
		Question:  problem.Question,
		EvalMode:  problem.EvalMode,
		CreatorID: problem.CreatorID,
		CreatedAt: problem.CreatedAt,
	}
	copier.Copy(&resp.Genres, &problem.Genres)
	return &resp
}
