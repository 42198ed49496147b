package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heroboard/heroboard"
	"github.com/heroboard/heroboard/internal/domain"
)

// RecordInput is the validated input for one engagement action.
type RecordInput struct {
	Action    heroboard.Action
	ActorID   int64
	ActorName string
	HeroID    int64
	HeroName  string
	Text      string
	CommentID int64
	ImageURL  string
}

type EngagementUsecase struct {
	repo  EngagementRepository
	cache RankingCache
}

// NewEngagementUsecase wires the recorder. cache may be nil when no ranking
// cache is configured.
func NewEngagementUsecase(repo EngagementRepository, cache RankingCache) *EngagementUsecase {
	return &EngagementUsecase{repo: repo, cache: cache}
}

// Record performs the event-store mutation and appends the activity entry,
// returning the identifier of the primary mutated row. A failure of either
// step fails the whole action; the repository rolls the pair back together.
func (uc *EngagementUsecase) Record(ctx context.Context, input RecordInput) (int64, error) {
	description, ok := input.Action.Description()
	if !ok {
		return 0, domain.BadRequestError{Reason: "unknown engagement action"}
	}

	if err := validatePayload(input); err != nil {
		return 0, err
	}

	rec := domain.EngagementRecord{
		Action:      input.Action,
		ActorID:     input.ActorID,
		ActorName:   input.ActorName,
		HeroID:      input.HeroID,
		HeroName:    input.HeroName,
		Description: description,
		Text:        input.Text,
		CommentID:   input.CommentID,
		ImageURL:    input.ImageURL,
	}

	id, err := uc.repo.Record(ctx, rec)
	if err != nil {
		if errors.Is(err, domain.ErrInconsistency) {
			slog.ErrorContext(ctx, "engagement ledger write failed",
				slog.String("action", string(input.Action)),
				slog.Int64("actor", input.ActorID),
				slog.Int64("hero", input.HeroID),
				slog.String("error", err.Error()),
			)
		}
		return 0, err
	}

	if uc.cache != nil && affectsRanking(input.Action) {
		uc.cache.Invalidate(ctx)
	}

	return id, nil
}

func validatePayload(input RecordInput) error {
	switch input.Action {
	case heroboard.ActionComment:
		if input.Text == "" {
			return domain.BadRequestError{Reason: "comment text is required"}
		}
	case heroboard.ActionLikeComment, heroboard.ActionUnlikeComment:
		if input.CommentID == 0 {
			return domain.BadRequestError{Reason: "comment id is required"}
		}
	case heroboard.ActionUploadImage, heroboard.ActionLikeImage, heroboard.ActionUnlikeImage:
		if input.ImageURL == "" {
			return domain.BadRequestError{Reason: "image url is required"}
		}
	}
	return nil
}

// affectsRanking reports whether the action changes a count the leaderboard
// is built from (follows, hero likes, comments).
func affectsRanking(a heroboard.Action) bool {
	switch a {
	case heroboard.ActionFollow, heroboard.ActionUnfollow,
		heroboard.ActionLikeHero, heroboard.ActionUnlikeHero,
		heroboard.ActionComment:
		return true
	}
	return false
}
