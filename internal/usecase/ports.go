package usecase

import (
	"context"

	"github.com/heroboard/heroboard/internal/domain"
)

// EngagementRepository applies one engagement action and its activity-ledger
// entry as a single durable unit, returning the identifier of the mutated
// event row.
type EngagementRepository interface {
	Record(ctx context.Context, rec domain.EngagementRecord) (int64, error)
}

// ViewRepository serves the read side. Every count is recomputed from source
// rows; no counters are stored.
type ViewRepository interface {
	UserView(ctx context.Context, userID int64) (domain.UserEngagementView, error)
	PublicView(ctx context.Context, userID int64) (domain.PublicEngagementView, error)
	Leaderboard(ctx context.Context) ([]domain.HeroRank, error)
	RecentActivity(ctx context.Context, userID int64) ([]domain.ActivityEntry, error)
	HeroComments(ctx context.Context, heroID int64) ([]domain.CommentView, error)
	HeroImages(ctx context.Context, heroID int64) ([]domain.ImageView, error)
}

// ConnectionRepository persists peer follow requests.
type ConnectionRepository interface {
	Create(ctx context.Context, requesterID, targetID int64) error
	Approve(ctx context.Context, requesterID, targetID int64) error
	Delete(ctx context.Context, requesterID, targetID int64) error
}

// RankingCache is the one sanctioned cache: a read-through copy of the
// leaderboard, invalidated synchronously on every count-bearing write so
// reads never observe stale counts.
type RankingCache interface {
	Get(ctx context.Context) ([]domain.HeroRank, bool)
	Set(ctx context.Context, ranks []domain.HeroRank)
	Invalidate(ctx context.Context)
}
