package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/heroboard/heroboard"
	"github.com/heroboard/heroboard/internal/domain"
	"github.com/heroboard/heroboard/internal/usecase"
)

// --- mocks ---

type mockEngagementRepo struct {
	last domain.EngagementRecord
	err  error
}

func (m *mockEngagementRepo) Record(ctx context.Context, rec domain.EngagementRecord) (int64, error) {
	m.last = rec
	if m.err != nil {
		return 0, m.err
	}
	return 42, nil
}

type mockViewRepo struct{}

func (m *mockViewRepo) UserView(ctx context.Context, userID int64) (domain.UserEngagementView, error) {
	return domain.UserEngagementView{UserID: userID, Username: "alice"}, nil
}
func (m *mockViewRepo) PublicView(ctx context.Context, userID int64) (domain.PublicEngagementView, error) {
	return domain.PublicEngagementView{UserID: userID, Username: "bob"}, nil
}
func (m *mockViewRepo) Leaderboard(ctx context.Context) ([]domain.HeroRank, error) {
	return []domain.HeroRank{{HeroID: 7, FollowCount: 3}}, nil
}
func (m *mockViewRepo) RecentActivity(ctx context.Context, userID int64) ([]domain.ActivityEntry, error) {
	return []domain.ActivityEntry{{ActorID: userID, Description: "followed"}}, nil
}
func (m *mockViewRepo) HeroComments(ctx context.Context, heroID int64) ([]domain.CommentView, error) {
	return []domain.CommentView{{CommentID: 1, Text: "nice"}}, nil
}
func (m *mockViewRepo) HeroImages(ctx context.Context, heroID int64) ([]domain.ImageView, error) {
	return nil, nil
}

type mockConnectionRepo struct {
	created bool
}

func (m *mockConnectionRepo) Create(ctx context.Context, requesterID, targetID int64) error {
	m.created = true
	return nil
}
func (m *mockConnectionRepo) Approve(ctx context.Context, requesterID, targetID int64) error {
	return nil
}
func (m *mockConnectionRepo) Delete(ctx context.Context, requesterID, targetID int64) error {
	return nil
}

type mockCatalog struct{}

func (m *mockCatalog) ResolveName(ctx context.Context, heroID int64) (string, error) {
	return "Spider-Man", nil
}

// actorMiddleware injects an authenticated user the way the auth middleware
// would.
func actorMiddleware(id int64, name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := context.WithValue(c.Request().Context(), domain.ActorIDCtxKey, id)
			ctx = context.WithValue(ctx, domain.ActorNameCtxKey, name)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func newTestServer(engRepo *mockEngagementRepo, connRepo *mockConnectionRepo) *echo.Echo {
	engagementUC := usecase.NewEngagementUsecase(engRepo, nil)
	viewUC := usecase.NewViewUsecase(&mockViewRepo{}, nil)
	connectionUC := usecase.NewConnectionUsecase(connRepo)

	h := NewHandler(engagementUC, viewUC, connectionUC, &mockCatalog{})

	e := echo.New()
	e.Use(actorMiddleware(1, "alice"))
	h.RegisterRoutes(e)
	return e
}

// --- tests ---

func TestHandleFollow(t *testing.T) {
	engRepo := &mockEngagementRepo{}
	e := newTestServer(engRepo, &mockConnectionRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/heroes/7/follow", nil)
	res := httptest.NewRecorder()

	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", res.Code, res.Body.String())
	}

	var resp heroboard.EventResponse
	if err := json.Unmarshal(res.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.EventID != 42 {
		t.Fatalf("expected event id 42, got %d", resp.EventID)
	}

	if engRepo.last.Action != heroboard.ActionFollow {
		t.Fatalf("expected follow action, got %s", engRepo.last.Action)
	}
	if engRepo.last.HeroName != "Spider-Man" {
		t.Fatalf("expected hero name resolved from catalog, got %q", engRepo.last.HeroName)
	}
	if engRepo.last.ActorID != 1 || engRepo.last.ActorName != "alice" {
		t.Fatalf("actor not propagated: %+v", engRepo.last)
	}
}

func TestHandleCommentRequiresText(t *testing.T) {
	engRepo := &mockEngagementRepo{}
	e := newTestServer(engRepo, &mockConnectionRepo{})

	body, _ := json.Marshal(heroboard.EngagementRequest{HeroName: "Hulk"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/heroes/7/comments", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()

	e.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.Code)
	}
}

func TestHandleUnfollowNotFound(t *testing.T) {
	engRepo := &mockEngagementRepo{err: domain.NotFoundError{Resource: "follow"}}
	e := newTestServer(engRepo, &mockConnectionRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/heroes/7/follow", nil)
	res := httptest.NewRecorder()

	e.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.Code)
	}
}

func TestHandleCommentLike(t *testing.T) {
	engRepo := &mockEngagementRepo{}
	e := newTestServer(engRepo, &mockConnectionRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/heroes/7/comments/9/like", nil)
	res := httptest.NewRecorder()

	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", res.Code, res.Body.String())
	}
	if engRepo.last.CommentID != 9 {
		t.Fatalf("expected comment id 9, got %d", engRepo.last.CommentID)
	}
}

func TestHandleMe(t *testing.T) {
	e := newTestServer(&mockEngagementRepo{}, &mockConnectionRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	res := httptest.NewRecorder()

	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	var view domain.UserEngagementView
	if err := json.Unmarshal(res.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if view.UserID != 1 || view.Username != "alice" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestHandleUserOthersView(t *testing.T) {
	e := newTestServer(&mockEngagementRepo{}, &mockConnectionRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/5", nil)
	res := httptest.NewRecorder()

	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	// The reduced projection must not leak aggregates.
	var raw map[string]any
	if err := json.Unmarshal(res.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := raw["heroFollowCounts"]; ok {
		t.Fatalf("public view must not include global counts")
	}
	if raw["username"] != "bob" {
		t.Fatalf("unexpected username: %v", raw["username"])
	}
}

func TestHandleConnectionRequest(t *testing.T) {
	connRepo := &mockConnectionRepo{}
	e := newTestServer(&mockEngagementRepo{}, connRepo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/connections/2", nil)
	res := httptest.NewRecorder()

	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", res.Code, res.Body.String())
	}
	if !connRepo.created {
		t.Fatalf("expected connection to be created")
	}
}

func TestHandleUnauthenticated(t *testing.T) {
	engagementUC := usecase.NewEngagementUsecase(&mockEngagementRepo{}, nil)
	viewUC := usecase.NewViewUsecase(&mockViewRepo{}, nil)
	connectionUC := usecase.NewConnectionUsecase(&mockConnectionRepo{})

	h := NewHandler(engagementUC, viewUC, connectionUC, &mockCatalog{})

	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/heroes/7/follow", nil)
	res := httptest.NewRecorder()

	e.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.Code)
	}
}
