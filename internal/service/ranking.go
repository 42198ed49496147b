package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heroboard/heroboard/internal/domain"
)

const leaderboardKey = "leaderboard"
const leaderboardTTL = 5 * time.Minute

// RankingCache keeps one serialized copy of the leaderboard in redis. Writers
// invalidate it synchronously, so the TTL only bounds the lifetime of entries
// orphaned by a crashed writer.
type RankingCache struct {
	rdb *redis.Client
}

func NewRankingCache(redisClient *redis.Client) *RankingCache {
	return &RankingCache{
		rdb: redisClient,
	}
}

func (c *RankingCache) Get(ctx context.Context) ([]domain.HeroRank, bool) {

	payload, err := c.rdb.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.ErrorContext(ctx, "leaderboard cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var ranks []domain.HeroRank
	if err := json.Unmarshal(payload, &ranks); err != nil {
		slog.ErrorContext(ctx, "leaderboard cache decode failed", slog.String("error", err.Error()))
		return nil, false
	}

	return ranks, true
}

func (c *RankingCache) Set(ctx context.Context, ranks []domain.HeroRank) {

	payload, err := json.Marshal(ranks)
	if err != nil {
		slog.ErrorContext(ctx, "leaderboard cache encode failed", slog.String("error", err.Error()))
		return
	}

	if err := c.rdb.Set(ctx, leaderboardKey, payload, leaderboardTTL).Err(); err != nil {
		slog.ErrorContext(ctx, "leaderboard cache write failed", slog.String("error", err.Error()))
	}
}

func (c *RankingCache) Invalidate(ctx context.Context) {

	if err := c.rdb.Del(ctx, leaderboardKey).Err(); err != nil {
		slog.ErrorContext(ctx, "leaderboard cache invalidation failed", slog.String("error", err.Error()))
	}
}
