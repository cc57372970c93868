package service

import (
	"errors"
	"testing"
	"time"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contestProblemFixture struct {
	svc            ContestProblemService
	contests       *fakeContestRepo
	problems       *fakeProblemRepo
	entries        *fakeContestProblemRepo
	participations *fakeParticipationRepo
	contestID      uint
	problemIDs     []uint
}

func newContestProblemFixture(t *testing.T, start time.Time) *contestProblemFixture {
	t.Helper()
	f := &contestProblemFixture{
		contests:       newFakeContestRepo(),
		problems:       newFakeProblemRepo(),
		entries:        newFakeContestProblemRepo(),
		participations: newFakeParticipationRepo(),
	}
	f.svc = NewContestProblemService(f.contests, f.problems, f.entries, f.participations)

	contest := &model.Contest{Name: "Qualifier", StartingTime: start, Duration: 2 * time.Hour, CreatorID: 7}
	require.NoError(t, f.contests.Create(contest))
	f.contestID = contest.ID

	for _, title := range []string{"Two Sum", "Knapsack", "Dijkstra"} {
		p := &model.Problem{Title: title, Question: "q", Answer: "a", EvalMode: model.EvalModeExact}
		require.NoError(t, f.problems.Create(p))
		f.problemIDs = append(f.problemIDs, p.ID)
	}
	return f
}

func TestAddProblemsAssignsOrderAndDefaultPoints(t *testing.T) {
	f := newContestProblemFixture(t, time.Now().Add(time.Hour))

	added, err := f.svc.AddProblems(7, f.contestID, f.problemIDs[:2])
	require.NoError(t, err)
	assert.Equal(t, f.problemIDs[:2], added)

	first, err := f.entries.FindByContestAndProblem(f.contestID, f.problemIDs[0])
	require.NoError(t, err)
	assert.Equal(t, 1, first.Order)
	assert.Equal(t, model.DefaultProblemPoints, first.Points)

	second, err := f.entries.FindByContestAndProblem(f.contestID, f.problemIDs[1])
	require.NoError(t, err)
	assert.Equal(t, 2, second.Order)
}

func TestAddProblemsIdempotentPerProblem(t *testing.T) {
	f := newContestProblemFixture(t, time.Now().Add(time.Hour))

	_, err := f.svc.AddProblems(7, f.contestID, f.problemIDs[:1])
	require.NoError(t, err)

	added, err := f.svc.AddProblems(7, f.contestID, f.problemIDs[:2])
	require.NoError(t, err)
	assert.Equal(t, f.problemIDs[:2], added)

	count, err := f.entries.CountByContest(f.contestID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestAddProblemsUnknownProblem(t *testing.T) {
	f := newContestProblemFixture(t, time.Now().Add(time.Hour))

	_, err := f.svc.AddProblems(7, f.contestID, []uint{999})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrBadRequest))
}

func TestAddProblemsCreatorOnlyBeforeStart(t *testing.T) {
	f := newContestProblemFixture(t, time.Now().Add(time.Hour))

	_, err := f.svc.AddProblems(8, f.contestID, f.problemIDs[:1])
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrForbidden))

	f.contests.contests[f.contestID].StartingTime = time.Now().Add(-time.Minute)
	_, err = f.svc.AddProblems(7, f.contestID, f.problemIDs[:1])
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrForbidden))
}

func TestRemoveProblemLeavesOrderGap(t *testing.T) {
	f := newContestProblemFixture(t, time.Now().Add(time.Hour))

	_, err := f.svc.AddProblems(7, f.contestID, f.problemIDs)
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveProblem(7, f.contestID, f.problemIDs[1]))

	// Orders of the remaining problems are untouched.
	third, err := f.entries.FindByContestAndProblem(f.contestID, f.problemIDs[2])
	require.NoError(t, err)
	assert.Equal(t, 3, third.Order)

	_, err = f.entries.FindByContestAndOrder(f.contestID, 2)
	require.Error(t, err)
}

func TestRemoveProblemNotAttached(t *testing.T) {
	f := newContestProblemFixture(t, time.Now().Add(time.Hour))

	err := f.svc.RemoveProblem(7, f.contestID, f.problemIDs[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestReAddAfterRemovalGetsNewOrder(t *testing.T) {
	f := newContestProblemFixture(t, time.Now().Add(time.Hour))

	_, err := f.svc.AddProblems(7, f.contestID, f.problemIDs)
	require.NoError(t, err)
	require.NoError(t, f.svc.RemoveProblem(7, f.contestID, f.problemIDs[0]))

	_, err = f.svc.AddProblems(7, f.contestID, f.problemIDs[:1])
	require.NoError(t, err)

	readded, err := f.entries.FindByContestAndProblem(f.contestID, f.problemIDs[0])
	require.NoError(t, err)
	assert.Equal(t, 3, readded.Order, "order is count+1 after removal, not the old slot")
	assert.Equal(t, model.DefaultProblemPoints, readded.Points)
}

func TestGetProblemByOrderRequiresRegistrationAndActiveContest(t *testing.T) {
	f := newContestProblemFixture(t, time.Now().Add(time.Hour))

	_, err := f.svc.AddProblems(7, f.contestID, f.problemIDs[:1])
	require.NoError(t, err)

	// Not registered.
	_, err = f.svc.GetProblemByOrder(1, f.contestID, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrForbidden))

	require.NoError(t, f.participations.Create(&model.Participation{UserID: 1, ContestID: f.contestID}))

	// Registered but contest not started yet.
	_, err = f.svc.GetProblemByOrder(1, f.contestID, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrForbidden))

	f.contests.contests[f.contestID].StartingTime = time.Now().Add(-time.Minute)

	resp, err := f.svc.GetProblemByOrder(1, f.contestID, 1)
	require.NoError(t, err)
	assert.Equal(t, f.problemIDs[0], resp.ProblemID)
	assert.Equal(t, 1, resp.Order)

	_, err = f.svc.GetProblemByOrder(1, f.contestID, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
