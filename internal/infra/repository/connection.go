package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/heroboard/heroboard/internal/domain"
	"github.com/heroboard/heroboard/internal/infra/database/models"
)

type ConnectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Create opens a pending connection. The per-pair unique index rejects a
// second request regardless of its current state.
func (r *ConnectionRepository) Create(ctx context.Context, requesterID, targetID int64) error {

	conn := models.Connection{
		RequesterID: requesterID,
		TargetID:    targetID,
		Status:      domain.ConnectionStatusRequested,
		Active:      false,
	}

	err := r.db.WithContext(ctx).Create(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.BadRequestError{Reason: "connection already exists"}
		}
		return err
	}

	return nil
}

func (r *ConnectionRepository) Approve(ctx context.Context, requesterID, targetID int64) error {

	result := r.db.WithContext(ctx).Model(&models.Connection{}).
		Where("requester_id = ? AND target_id = ?", requesterID, targetID).
		Update("active", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "connection"}
	}

	return nil
}

func (r *ConnectionRepository) Delete(ctx context.Context, requesterID, targetID int64) error {

	result := r.db.WithContext(ctx).
		Where("requester_id = ? AND target_id = ?", requesterID, targetID).
		Delete(&models.Connection{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "connection"}
	}

	return nil
}
