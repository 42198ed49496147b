package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/heroboard/heroboard"
	"github.com/heroboard/heroboard/internal/domain"
	"github.com/heroboard/heroboard/internal/infra/database/models"
)

// event is the common surface of the per-action gorm models. deleteEvent
// relies on Returning to fill the model so EventID is readable after the row
// is gone.
type event interface {
	EventID() int64
	EventName() string
}

type EngagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

// Record applies one engagement action and appends its activity row in a
// single transaction. A failed ledger append rolls the event back and
// surfaces as an InconsistencyError.
func (r *EngagementRepository) Record(ctx context.Context, rec domain.EngagementRecord) (int64, error) {

	var eventID int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var m event
		var cond string
		var args []any

		switch rec.Action {
		case heroboard.ActionFollow, heroboard.ActionUnfollow:
			m = &models.Follow{UserID: rec.ActorID, HeroID: rec.HeroID}
			cond, args = "user_id = ? AND hero_id = ?", []any{rec.ActorID, rec.HeroID}
		case heroboard.ActionLikeHero, heroboard.ActionUnlikeHero:
			m = &models.HeroLike{UserID: rec.ActorID, HeroID: rec.HeroID}
			cond, args = "user_id = ? AND hero_id = ?", []any{rec.ActorID, rec.HeroID}
		case heroboard.ActionComment:
			m = &models.Comment{UserID: rec.ActorID, HeroID: rec.HeroID, Body: rec.Text}
		case heroboard.ActionUploadImage:
			m = &models.Image{UserID: rec.ActorID, HeroID: rec.HeroID, ImageURL: rec.ImageURL}
		case heroboard.ActionLikeComment, heroboard.ActionUnlikeComment:
			m = &models.CommentLike{UserID: rec.ActorID, CommentID: rec.CommentID}
			cond, args = "user_id = ? AND comment_id = ?", []any{rec.ActorID, rec.CommentID}
		case heroboard.ActionLikeImage, heroboard.ActionUnlikeImage:
			m = &models.ImageLike{UserID: rec.ActorID, ImageURL: rec.ImageURL}
			cond, args = "user_id = ? AND image_url = ?", []any{rec.ActorID, rec.ImageURL}
		default:
			return domain.BadRequestError{Reason: "unknown action " + string(rec.Action)}
		}

		var err error
		if rec.Action.Removes() {
			eventID, err = deleteEvent(tx, m, cond, args...)
		} else {
			eventID, err = insertEvent(tx, m)
		}
		if err != nil {
			return err
		}

		return appendActivity(tx, rec)
	})
	if err != nil {
		return 0, err
	}

	return eventID, nil
}

func insertEvent(tx *gorm.DB, m event) (int64, error) {
	err := tx.Create(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, domain.NotFoundError{Resource: m.EventName()}
		}
		return 0, err
	}
	return m.EventID(), nil
}

func deleteEvent(tx *gorm.DB, m event, query string, args ...any) (int64, error) {
	result := tx.Clauses(clause.Returning{}).Where(query, args...).Delete(m)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domain.NotFoundError{Resource: m.EventName()}
	}
	return m.EventID(), nil
}

func appendActivity(tx *gorm.DB, rec domain.EngagementRecord) error {
	entry := models.Activity{
		UserID:      rec.ActorID,
		Username:    rec.ActorName,
		HeroID:      rec.HeroID,
		HeroName:    rec.HeroName,
		Description: rec.Description,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return domain.InconsistencyError{
			Action:  string(rec.Action),
			ActorID: rec.ActorID,
			HeroID:  rec.HeroID,
			Step:    "activity append",
			Cause:   err,
		}
	}
	return nil
}
