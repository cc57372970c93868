package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// In-memory repository fakes used by the service tests.

type fakeContestRepo struct {
	contests map[uint]*model.Contest
	nextID   uint
}

func newFakeContestRepo() *fakeContestRepo {
	return &fakeContestRepo{contests: make(map[uint]*model.Contest), nextID: 1}
}

func (r *fakeContestRepo) Create(contest *model.Contest) error {
	contest.ID = r.nextID
	r.nextID++
	r.contests[contest.ID] = contest
	return nil
}

func (r *fakeContestRepo) FindByID(id uint) (*model.Contest, error) {
	contest, ok := r.contests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *contest
	return &copy, nil
}

func (r *fakeContestRepo) Delete(id uint) error {
	delete(r.contests, id)
	return nil
}

func (r *fakeContestRepo) FindFutureByCreator(creatorID uint, now time.Time) ([]model.Contest, error) {
	var out []model.Contest
	for _, c := range r.contests {
		if c.CreatorID == creatorID && c.StartingTime.After(now) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContestRepo) FindStartedBefore(now time.Time) ([]model.Contest, error) {
	var out []model.Contest
	for _, c := range r.contests {
		if !c.StartingTime.After(now) {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeParticipationRepo struct {
	participations map[uint]*model.Participation
	nextID         uint
}

func newFakeParticipationRepo() *fakeParticipationRepo {
	return &fakeParticipationRepo{participations: make(map[uint]*model.Participation), nextID: 1}
}

func (r *fakeParticipationRepo) Create(p *model.Participation) error {
	p.ID = r.nextID
	r.nextID++
	p.RegistrationTime = time.Now()
	r.participations[p.ID] = p
	return nil
}

func (r *fakeParticipationRepo) FindByUserAndContest(userID, contestID uint) (*model.Participation, error) {
	for _, p := range r.participations {
		if p.UserID == userID && p.ContestID == contestID {
			copy := *p
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeParticipationRepo) Delete(id uint) error {
	delete(r.participations, id)
	return nil
}

func (r *fakeParticipationRepo) TopByContest(contestID uint, limit int) ([]model.Participation, error) {
	var out []model.Participation
	for _, p := range r.participations {
		if p.ContestID == contestID {
			out = append(out, *p)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Score > out[i].Score {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeParticipationRepo) RankInContest(contestID, userID uint) (int, *model.Participation, error) {
	target, err := r.FindByUserAndContest(userID, contestID)
	if err != nil {
		return 0, nil, err
	}
	rank := 1
	for _, p := range r.participations {
		if p.ContestID == contestID && p.Score > target.Score {
			rank++
		}
	}
	return rank, target, nil
}

type fakeProblemRepo struct {
	problems map[uint]*model.Problem
	nextID   uint
}

func newFakeProblemRepo() *fakeProblemRepo {
	return &fakeProblemRepo{problems: make(map[uint]*model.Problem), nextID: 1}
}

func (r *fakeProblemRepo) Create(problem *model.Problem) error {
	problem.ID = r.nextID
	r.nextID++
	r.problems[problem.ID] = problem
	return nil
}

func (r *fakeProblemRepo) FindByID(id uint) (*model.Problem, error) {
	problem, ok := r.problems[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *problem
	return &copy, nil
}

func (r *fakeProblemRepo) FindAll(genre string, offset, limit int) ([]model.Problem, int64, error) {
	var out []model.Problem
	for _, p := range r.problems {
		if genre != "" {
			match := false
			for _, g := range p.Genres {
				if g.Name == genre {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *p)
	}
	count := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, count, nil
}

type fakeContestProblemRepo struct {
	entries map[uint]*model.ContestProblem
	nextID  uint
}

func newFakeContestProblemRepo() *fakeContestProblemRepo {
	return &fakeContestProblemRepo{entries: make(map[uint]*model.ContestProblem), nextID: 1}
}

func (r *fakeContestProblemRepo) Create(cp *model.ContestProblem) error {
	cp.ID = r.nextID
	r.nextID++
	r.entries[cp.ID] = cp
	return nil
}

func (r *fakeContestProblemRepo) CountByContest(contestID uint) (int64, error) {
	var count int64
	for _, cp := range r.entries {
		if cp.ContestID == contestID {
			count++
		}
	}
	return count, nil
}

func (r *fakeContestProblemRepo) FindByContestAndProblem(contestID, problemID uint) (*model.ContestProblem, error) {
	for _, cp := range r.entries {
		if cp.ContestID == contestID && cp.ProblemID == problemID {
			copy := *cp
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeContestProblemRepo) FindByContestAndOrder(contestID uint, order int) (*model.ContestProblem, error) {
	for _, cp := range r.entries {
		if cp.ContestID == contestID && cp.Order == order {
			copy := *cp
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeContestProblemRepo) FindByContest(contestID uint, offset, limit int) ([]model.ContestProblem, int64, error) {
	var out []model.ContestProblem
	for _, cp := range r.entries {
		if cp.ContestID == contestID {
			out = append(out, *cp)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Order < out[i].Order {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	count := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, count, nil
}

func (r *fakeContestProblemRepo) DeleteByContestAndProblem(contestID, problemID uint) (int64, error) {
	for id, cp := range r.entries {
		if cp.ContestID == contestID && cp.ProblemID == problemID {
			delete(r.entries, id)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeSubmissionRepo struct {
	submissions    []model.Submission
	participations *fakeParticipationRepo
	nextID         uint
}

func newFakeSubmissionRepo(participations *fakeParticipationRepo) *fakeSubmissionRepo {
	return &fakeSubmissionRepo{participations: participations, nextID: 1}
}

func (r *fakeSubmissionRepo) Create(sub *model.Submission) error {
	sub.ID = r.nextID
	r.nextID++
	sub.CreatedAt = time.Now()
	r.submissions = append(r.submissions, *sub)
	return nil
}

func (r *fakeSubmissionRepo) HasCorrect(userID, problemID uint) (bool, error) {
	for _, s := range r.submissions {
		if s.UserID == userID && s.ProblemID == problemID && s.Status == model.SubmissionCorrect {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSubmissionRepo) FindByUserAndProblem(userID, problemID uint, offset, limit int) ([]model.Submission, int64, error) {
	var out []model.Submission
	for _, s := range r.submissions {
		if s.UserID == userID && s.ProblemID == problemID {
			out = append(out, s)
		}
	}
	count := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, count, nil
}

func (r *fakeSubmissionRepo) RecordContestSubmission(sub *model.Submission, participationID uint, points int) (*model.Participation, error) {
	part, ok := r.participations.participations[participationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	award := 0
	if sub.Status == model.SubmissionCorrect && points > 0 {
		solved, _ := r.HasCorrect(sub.UserID, sub.ProblemID)
		if solved {
			return nil, fmt.Errorf("%w: problem already solved", common.ErrBadRequest)
		}
		award = points
	}

	if err := r.Create(sub); err != nil {
		return nil, err
	}

	now := time.Now()
	part.SubmissionsCount++
	part.LastSubmissionTime = &now
	part.Score += award

	copy := *part
	return &copy, nil
}

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return errDuplicateUser
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

// errDuplicateUser mimics the database unique index on username and email.
var errDuplicateUser = &pgconn.PgError{Code: "23505"}

type fakeGenreRepo struct{}

func (fakeGenreRepo) GetOrCreate(names []string) ([]model.Genre, error) {
	var genres []model.Genre
	for i, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		genres = append(genres, model.Genre{ID: uint(i + 1), Name: name})
	}
	return genres, nil
}

type fakeOracle struct {
	score   int
	remarks string
	err     error
	calls   int
}

func (o *fakeOracle) EvaluateAnswer(ctx context.Context, question, referenceAnswer, submittedAnswer string) (int, string, error) {
	o.calls++
	if o.err != nil {
		return 0, "", o.err
	}
	return o.score, o.remarks, nil
}

type fakeLeaderboard struct {
	recorded map[uint]int // userID -> last recorded total
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{recorded: make(map[uint]int)}
}

func (l *fakeLeaderboard) RecordScore(ctx context.Context, contestID, userID uint, totalScore int) {
	l.recorded[userID] = totalScore
}

func (l *fakeLeaderboard) Top(ctx context.Context, contestID uint, limit int) ([]dto.LeaderboardEntry, error) {
	return nil, nil
}

func (l *fakeLeaderboard) Rank(ctx context.Context, contestID uint, username string) (*dto.UserRankResponse, error) {
	return nil, gorm.ErrRecordNotFound
}
