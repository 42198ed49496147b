package usecase

import (
	"context"

	"github.com/heroboard/heroboard/internal/domain"
)

// ConnectionUsecase drives the peer-connection lifecycle:
// pending (request) -> approved (approve by target), or deletion via reject
// (target, while pending) or remove (requester, once approved). Connection
// transitions write no activity entries.
type ConnectionUsecase struct {
	repo ConnectionRepository
}

func NewConnectionUsecase(repo ConnectionRepository) *ConnectionUsecase {
	return &ConnectionUsecase{repo: repo}
}

// Request creates a pending connection from requester to target. The actor
// must be the requester. A second request for the same ordered pair fails on
// the store's unique constraint.
func (uc *ConnectionUsecase) Request(ctx context.Context, actorID, requesterID, targetID int64) error {
	if actorID != requesterID {
		return domain.UnauthorizedError{Reason: "only the requester may open a connection"}
	}
	if requesterID == targetID {
		return domain.BadRequestError{Reason: "cannot connect to yourself"}
	}
	return uc.repo.Create(ctx, requesterID, targetID)
}

// Approve activates a pending connection. Only the target may approve.
func (uc *ConnectionUsecase) Approve(ctx context.Context, actorID, requesterID, targetID int64) error {
	if actorID != targetID {
		return domain.UnauthorizedError{Reason: "only the target may approve a connection"}
	}
	return uc.repo.Approve(ctx, requesterID, targetID)
}

// Reject deletes a pending connection. Only the target may reject.
func (uc *ConnectionUsecase) Reject(ctx context.Context, actorID, requesterID, targetID int64) error {
	if actorID != targetID {
		return domain.UnauthorizedError{Reason: "only the target may reject a connection"}
	}
	return uc.repo.Delete(ctx, requesterID, targetID)
}

// Remove tears down a connection the actor opened.
func (uc *ConnectionUsecase) Remove(ctx context.Context, actorID, requesterID, targetID int64) error {
	if actorID != requesterID {
		return domain.UnauthorizedError{Reason: "only the requester may remove a connection"}
	}
	return uc.repo.Delete(ctx, requesterID, targetID)
}
