package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/heroboard/heroboard/internal/domain"
)

type connCall struct {
	op                    string
	requesterID, targetID int64
}

type mockConnectionRepo struct {
	calls []connCall
	err   error
}

func (m *mockConnectionRepo) Create(ctx context.Context, requesterID, targetID int64) error {
	m.calls = append(m.calls, connCall{"create", requesterID, targetID})
	return m.err
}
func (m *mockConnectionRepo) Approve(ctx context.Context, requesterID, targetID int64) error {
	m.calls = append(m.calls, connCall{"approve", requesterID, targetID})
	return m.err
}
func (m *mockConnectionRepo) Delete(ctx context.Context, requesterID, targetID int64) error {
	m.calls = append(m.calls, connCall{"delete", requesterID, targetID})
	return m.err
}

func TestConnectionRequestAndApprove(t *testing.T) {
	repo := &mockConnectionRepo{}
	uc := NewConnectionUsecase(repo)

	if err := uc.Request(context.Background(), 1, 1, 2); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := uc.Approve(context.Background(), 2, 1, 2); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if len(repo.calls) != 2 {
		t.Fatalf("expected two repository calls, got %d", len(repo.calls))
	}
	if repo.calls[0].op != "create" || repo.calls[1].op != "approve" {
		t.Fatalf("unexpected calls: %+v", repo.calls)
	}
	if repo.calls[1].requesterID != 1 || repo.calls[1].targetID != 2 {
		t.Fatalf("approve must keep the ordered pair: %+v", repo.calls[1])
	}
}

func TestConnectionAuthorization(t *testing.T) {
	repo := &mockConnectionRepo{}
	uc := NewConnectionUsecase(repo)

	// Requester cannot approve or reject their own request.
	if err := uc.Approve(context.Background(), 1, 1, 2); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized approve, got %v", err)
	}
	if err := uc.Reject(context.Background(), 1, 1, 2); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized reject, got %v", err)
	}
	// Target cannot open or remove the requester's connection.
	if err := uc.Request(context.Background(), 2, 1, 2); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized request, got %v", err)
	}
	if err := uc.Remove(context.Background(), 2, 1, 2); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized remove, got %v", err)
	}

	if len(repo.calls) != 0 {
		t.Fatalf("unauthorized calls must not reach the repository: %+v", repo.calls)
	}
}

func TestConnectionSelfRequest(t *testing.T) {
	uc := NewConnectionUsecase(&mockConnectionRepo{})

	if err := uc.Request(context.Background(), 1, 1, 1); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestConnectionRejectAndRemoveDelete(t *testing.T) {
	repo := &mockConnectionRepo{}
	uc := NewConnectionUsecase(repo)

	if err := uc.Reject(context.Background(), 2, 1, 2); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if err := uc.Remove(context.Background(), 1, 1, 2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	for _, call := range repo.calls {
		if call.op != "delete" {
			t.Fatalf("reject and remove must delete, got %+v", call)
		}
	}
}

func TestConnectionMissingRow(t *testing.T) {
	repo := &mockConnectionRepo{err: domain.NotFoundError{Resource: "connection"}}
	uc := NewConnectionUsecase(repo)

	if err := uc.Approve(context.Background(), 2, 1, 2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
