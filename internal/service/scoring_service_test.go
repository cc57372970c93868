package service

import (
	"context"
	"errors"
	"testing"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateExactMatch(t *testing.T) {
	scoring := NewScoringService(&fakeOracle{})
	problem := &model.Problem{Answer: "42", EvalMode: model.EvalModeExact}

	verdict, err := scoring.Evaluate(context.Background(), problem, "42")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionCorrect, verdict.Status)
	assert.Equal(t, 100, verdict.Score)

	verdict, err = scoring.Evaluate(context.Background(), problem, "43")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionWrong, verdict.Status)
	assert.Equal(t, 0, verdict.Score)
}

func TestEvaluateExactMatchNormalizesInput(t *testing.T) {
	scoring := NewScoringService(&fakeOracle{})
	problem := &model.Problem{Answer: "Hello World", EvalMode: model.EvalModeExact}

	// Comparison ignores case and surrounding whitespace.
	verdict, err := scoring.Evaluate(context.Background(), problem, "  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionCorrect, verdict.Status)
}

func TestEvaluateLLMThreshold(t *testing.T) {
	cases := []struct {
		name       string
		score      int
		wantStatus string
	}{
		{"below threshold", 79, model.SubmissionWrong},
		{"at threshold", 80, model.SubmissionCorrect},
		{"above threshold", 95, model.SubmissionCorrect},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			oracle := &fakeOracle{score: tc.score, remarks: "graded"}
			scoring := NewScoringService(oracle)
			problem := &model.Problem{Answer: "reference", EvalMode: model.EvalModeLLM}

			verdict, err := scoring.Evaluate(context.Background(), problem, "attempt")
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, verdict.Status)
			assert.Equal(t, tc.score, verdict.Score)
			assert.Equal(t, "graded", verdict.Remarks)
		})
	}
}

func TestEvaluateLLMOracleFailure(t *testing.T) {
	oracle := &fakeOracle{err: common.ErrOracleUnavailable}
	scoring := NewScoringService(oracle)
	problem := &model.Problem{Answer: "reference", EvalMode: model.EvalModeLLM}

	_, err := scoring.Evaluate(context.Background(), problem, "attempt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrOracleUnavailable))
}

func TestEvaluateNoneMode(t *testing.T) {
	oracle := &fakeOracle{}
	scoring := NewScoringService(oracle)
	problem := &model.Problem{Answer: "reference", EvalMode: model.EvalModeNone}

	verdict, err := scoring.Evaluate(context.Background(), problem, "anything")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionUnknown, verdict.Status)
	assert.Equal(t, 0, verdict.Score)
	assert.Zero(t, oracle.calls, "none mode must not consult the oracle")
}
