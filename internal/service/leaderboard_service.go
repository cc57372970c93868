package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/falconakhil/CompeteHub/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LeaderboardService ranks participants within a contest. Scores are kept in
// a redis sorted set per contest, updated whenever a submission awards
// points; reads fall back to the participation table when redis is down.
type LeaderboardService interface {
	RecordScore(ctx context.Context, contestID, userID uint, totalScore int)
	Top(ctx context.Context, contestID uint, limit int) ([]dto.LeaderboardEntry, error)
	Rank(ctx context.Context, contestID uint, username string) (*dto.UserRankResponse, error)
}

type leaderboardService struct {
	rdb               *redis.Client
	userRepo          repository.UserRepository
	participationRepo repository.ParticipationRepository
}

func NewLeaderboardService(rdb *redis.Client, userRepo repository.UserRepository, participationRepo repository.ParticipationRepository) LeaderboardService {
	return &leaderboardService{rdb: rdb, userRepo: userRepo, participationRepo: participationRepo}
}

func leaderboardKey(contestID uint) string {
	return fmt.Sprintf("leaderboard:%d", contestID)
}

// RecordScore replaces the user's total in the contest's sorted set. Redis
// failures are logged and swallowed: the participation row already holds the
// authoritative score.
func (s *leaderboardService) RecordScore(ctx context.Context, contestID, userID uint, totalScore int) {
	member := strconv.FormatUint(uint64(userID), 10)
	err := s.rdb.ZAdd(ctx, leaderboardKey(contestID), redis.Z{
		Score:  float64(totalScore),
		Member: member,
	}).Err()
	if err != nil {
		log.Warn().Err(err).Uint("contest_id", contestID).Msg("Failed to update redis leaderboard")
	}
}

func (s *leaderboardService) Top(ctx context.Context, contestID uint, limit int) ([]dto.LeaderboardEntry, error) {
	entries, err := s.topFromRedis(ctx, contestID, limit)
	if err == nil && len(entries) > 0 {
		return entries, nil
	}
	if err != nil {
		log.Warn().Err(err).Uint("contest_id", contestID).Msg("Redis leaderboard unavailable, using database")
	}
	return s.topFromDatabase(contestID, limit)
}

func (s *leaderboardService) topFromRedis(ctx context.Context, contestID uint, limit int) ([]dto.LeaderboardEntry, error) {
	zs, err := s.rdb.ZRevRangeWithScores(ctx, leaderboardKey(contestID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		id, err := strconv.ParseUint(fmt.Sprint(z.Member), 10, 64)
		if err != nil {
			continue
		}
		user, err := s.userRepo.FindByID(uint(id))
		if err != nil {
			continue
		}
		entries = append(entries, dto.LeaderboardEntry{
			Rank:     i + 1,
			Username: user.Username,
			Score:    int(z.Score),
		})
	}
	return entries, nil
}

func (s *leaderboardService) topFromDatabase(contestID uint, limit int) ([]dto.LeaderboardEntry, error) {
	parts, err := s.participationRepo.TopByContest(contestID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(parts))
	for i, p := range parts {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:     i + 1,
			Username: p.User.Username,
			Score:    p.Score,
		})
	}
	return entries, nil
}

func (s *leaderboardService) Rank(ctx context.Context, contestID uint, username string) (*dto.UserRankResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", common.ErrNotFound)
		}
		return nil, err
	}

	member := strconv.FormatUint(uint64(user.ID), 10)
	key := leaderboardKey(contestID)
	rank, err := s.rdb.ZRevRank(ctx, key, member).Result()
	if err == nil {
		score, scoreErr := s.rdb.ZScore(ctx, key, member).Result()
		if scoreErr == nil {
			return &dto.UserRankResponse{Username: username, Rank: int(rank) + 1, Score: int(score)}, nil
		}
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Uint("contest_id", contestID).Msg("Redis rank lookup failed, using database")
	}

	dbRank, participation, err := s.participationRepo.RankInContest(contestID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user is not participating in this contest", common.ErrNotFound)
		}
		return nil, err
	}
	return &dto.UserRankResponse{Username: username, Rank: dbRank, Score: participation.Score}, nil
}
