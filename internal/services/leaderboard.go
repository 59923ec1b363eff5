package services

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/Blazehunterx/ironmatch-sub000/pkg/logger"
)

const (
	lifterBoardKey = "leaderboard:lifters"
	gymBoardKey    = "leaderboard:gyms"
)

// LeaderboardService keeps lifetime-earned-XP rankings in Redis sorted
// sets, one global board and one gym-vs-gym board. XP spent on cosmetics
// does not reduce board scores: the boards rank what was earned.
type LeaderboardService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewLeaderboardService(rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{rdb: rdb, ctx: context.Background()}
}

// RecordXP adds earned XP to the global board and, when the user belongs
// to a gym, to that gym's aggregate. Best effort: a Redis outage only
// costs board freshness, never the XP grant itself.
func (s *LeaderboardService) RecordXP(userID string, gymID *string, amount int) {
	if s == nil || s.rdb == nil || amount <= 0 {
		return
	}

	if err := s.rdb.ZIncrBy(s.ctx, lifterBoardKey, float64(amount), userID).Err(); err != nil {
		logger.Warn().Err(err).Str("user_id", userID).Msg("leaderboard update failed")
		return
	}

	if gymID != nil && *gymID != "" {
		if err := s.rdb.ZIncrBy(s.ctx, gymBoardKey, float64(amount), *gymID).Err(); err != nil {
			logger.Warn().Err(err).Str("gym_id", *gymID).Msg("gym leaderboard update failed")
		}
	}
}

// BoardEntry is one ranked row off a sorted set.
type BoardEntry struct {
	ID   string `json:"id"`
	Rank int    `json:"rank"`
	XP   int    `json:"xp"`
}

func (s *LeaderboardService) top(key string, n int64) ([]BoardEntry, error) {
	if s == nil || s.rdb == nil {
		return []BoardEntry{}, nil
	}

	zs, err := s.rdb.ZRevRangeWithScores(s.ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]BoardEntry, 0, len(zs))
	for i, z := range zs {
		entries = append(entries, BoardEntry{
			ID:   z.Member.(string),
			Rank: i + 1,
			XP:   int(z.Score),
		})
	}
	return entries, nil
}

// TopLifters returns the top n users by lifetime earned XP.
func (s *LeaderboardService) TopLifters(n int64) ([]BoardEntry, error) {
	return s.top(lifterBoardKey, n)
}

// TopGyms returns the top n gyms by aggregate member XP.
func (s *LeaderboardService) TopGyms(n int64) ([]BoardEntry, error) {
	return s.top(gymBoardKey, n)
}
