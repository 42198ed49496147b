package usecase

import (
	"context"

	"github.com/heroboard/heroboard/internal/domain"
)

type ViewUsecase struct {
	repo  ViewRepository
	cache RankingCache
}

// NewViewUsecase wires the read side. cache may be nil.
func NewViewUsecase(repo ViewRepository, cache RankingCache) *ViewUsecase {
	return &ViewUsecase{repo: repo, cache: cache}
}

// ViewFor composes the caller's own engagement state plus the global
// aggregates.
func (uc *ViewUsecase) ViewFor(ctx context.Context, userID int64) (domain.UserEngagementView, error) {
	return uc.repo.UserView(ctx, userID)
}

// OthersView composes the reduced view of another user.
func (uc *ViewUsecase) OthersView(ctx context.Context, userID int64) (domain.PublicEngagementView, error) {
	return uc.repo.PublicView(ctx, userID)
}

// Leaderboard returns at most domain.LeaderboardLimit heroes ranked by
// active-follow count. The cache is read-through; writers invalidate it
// before any reader could observe a stale count.
func (uc *ViewUsecase) Leaderboard(ctx context.Context) ([]domain.HeroRank, error) {
	if uc.cache != nil {
		if ranks, ok := uc.cache.Get(ctx); ok {
			return ranks, nil
		}
	}

	ranks, err := uc.repo.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, ranks)
	}
	return ranks, nil
}

func (uc *ViewUsecase) RecentActivity(ctx context.Context, userID int64) ([]domain.ActivityEntry, error) {
	return uc.repo.RecentActivity(ctx, userID)
}

func (uc *ViewUsecase) HeroComments(ctx context.Context, heroID int64) ([]domain.CommentView, error) {
	return uc.repo.HeroComments(ctx, heroID)
}

func (uc *ViewUsecase) HeroImages(ctx context.Context, heroID int64) ([]domain.ImageView, error) {
	return uc.repo.HeroImages(ctx, heroID)
}
