package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/heroboard/heroboard/internal/domain"
)

func TestLeaderboardCapAndOrdering(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewViewRepository(db)

	// The query must carry the cap and break follow-count ties by hero id.
	mock.ExpectQuery(`ORDER BY follow_count DESC, f.hero_id ASC`).
		WithArgs(domain.LeaderboardLimit).
		WillReturnRows(sqlmock.NewRows([]string{"hero_id", "follow_count", "like_count", "comment_count"}).
			AddRow(7, 3, 2, 1).
			AddRow(9, 1, 0, 0))

	ranks, err := repo.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(ranks) != 2 {
		t.Fatalf("expected 2 ranks, got %d", len(ranks))
	}
	if ranks[0].HeroID != 7 || ranks[0].FollowCount != 3 || ranks[0].LikeCount != 2 || ranks[0].CommentCount != 1 {
		t.Fatalf("unexpected top rank: %+v", ranks[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("leaderboard query mismatch: %v", err)
	}
}

func TestPublicViewResolvesInactiveUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewViewRepository(db)

	// The anchor lookup carries no active filter; a deactivated user still
	// resolves to a view.
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "active"}).
			AddRow(42, "alice", false))
	mock.ExpectQuery(`SELECT "hero_id" FROM "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"hero_id"}).AddRow(7))
	mock.ExpectQuery(`SELECT "hero_id" FROM "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"hero_id"}))

	view, err := repo.PublicView(context.Background(), 42)
	if err != nil {
		t.Fatalf("public view failed: %v", err)
	}
	if view.UserID != 42 || view.Username != "alice" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if len(view.FollowedHeroes) != 1 || view.FollowedHeroes[0] != 7 {
		t.Fatalf("followed heroes not carried: %+v", view.FollowedHeroes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected anchor query: %v", err)
	}
}
