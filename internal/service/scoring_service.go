package service

import (
	"context"
	"strings"

	"github.com/falconakhil/CompeteHub/internal/model"
)

// CorrectThreshold is the minimum oracle score that counts as a correct
// answer.
const CorrectThreshold = 80

// Verdict is the judged outcome of one answer.
type Verdict struct {
	Status  string
	Score   int
	Remarks string
}

// ScoringService turns a submitted answer into a verdict using the strategy
// selected by the problem's evaluation mode: exact case-insensitive matching,
// the LLM oracle, or no automatic evaluation at all.
type ScoringService interface {
	Evaluate(ctx context.Context, problem *model.Problem, answer string) (*Verdict, error)
}

type scoringService struct {
	oracle GeminiLLMService
}

func NewScoringService(oracle GeminiLLMService) ScoringService {
	return &scoringService{oracle: oracle}
}

func (s *scoringService) Evaluate(ctx context.Context, problem *model.Problem, answer string) (*Verdict, error) {
	switch problem.EvalMode {
	case model.EvalModeLLM:
		score, remarks, err := s.oracle.EvaluateAnswer(ctx, problem.Question, problem.Answer, answer)
		if err != nil {
			return nil, err
		}
		status := model.SubmissionWrong
		if score >= CorrectThreshold {
			status = model.SubmissionCorrect
		}
		return &Verdict{Status: status, Score: score, Remarks: remarks}, nil

	case model.EvalModeNone:
		return &Verdict{Status: model.SubmissionUnknown, Score: 0, Remarks: "Pending manual review."}, nil

	default: // EvalModeExact
		if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(problem.Answer)) {
			return &Verdict{Status: model.SubmissionCorrect, Score: 100, Remarks: "Exact match with the reference answer."}, nil
		}
		return &Verdict{Status: model.SubmissionWrong, Score: 0, Remarks: "Answer does not match the reference answer."}, nil
	}
}
