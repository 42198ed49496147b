package rest

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/heroboard/heroboard"
	"github.com/heroboard/heroboard/internal/domain"
	"github.com/heroboard/heroboard/internal/present/rest/presenter"
	"github.com/heroboard/heroboard/internal/usecase"
)

// CatalogResolver resolves a hero ID to its display name when the client did
// not send a snapshot.
type CatalogResolver interface {
	ResolveName(ctx context.Context, heroID int64) (string, error)
}

type Handler struct {
	engagement *usecase.EngagementUsecase
	view       *usecase.ViewUsecase
	connection *usecase.ConnectionUsecase
	catalog    CatalogResolver
}

func NewHandler(
	engagement *usecase.EngagementUsecase,
	view *usecase.ViewUsecase,
	connection *usecase.ConnectionUsecase,
	catalog CatalogResolver,
) *Handler {
	return &Handler{
		engagement: engagement,
		view:       view,
		connection: connection,
		catalog:    catalog,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/heroes/:heroID/follow", h.handleEngage(heroboard.ActionFollow))
	e.DELETE("/api/v1/heroes/:heroID/follow", h.handleEngage(heroboard.ActionUnfollow))
	e.POST("/api/v1/heroes/:heroID/like", h.handleEngage(heroboard.ActionLikeHero))
	e.DELETE("/api/v1/heroes/:heroID/like", h.handleEngage(heroboard.ActionUnlikeHero))
	e.POST("/api/v1/heroes/:heroID/comments", h.handleEngage(heroboard.ActionComment))
	e.POST("/api/v1/heroes/:heroID/images", h.handleEngage(heroboard.ActionUploadImage))
	e.POST("/api/v1/heroes/:heroID/comments/:commentID/like", h.handleEngage(heroboard.ActionLikeComment))
	e.DELETE("/api/v1/heroes/:heroID/comments/:commentID/like", h.handleEngage(heroboard.ActionUnlikeComment))
	e.POST("/api/v1/heroes/:heroID/image-likes", h.handleEngage(heroboard.ActionLikeImage))
	e.DELETE("/api/v1/heroes/:heroID/image-likes", h.handleEngage(heroboard.ActionUnlikeImage))

	e.GET("/api/v1/heroes/:heroID/comments", h.handleHeroComments)
	e.GET("/api/v1/heroes/:heroID/images", h.handleHeroImages)
	e.GET("/api/v1/leaderboard", h.handleLeaderboard)

	e.GET("/api/v1/me", h.handleMe)
	e.GET("/api/v1/me/activity", h.handleMyActivity)
	e.GET("/api/v1/users/:userID", h.handleUser)

	e.POST("/api/v1/connections/:targetID", h.handleConnectionRequest)
	e.PUT("/api/v1/connections/:requesterID/approve", h.handleConnectionApprove)
	e.DELETE("/api/v1/connections/:requesterID/reject", h.handleConnectionReject)
	e.DELETE("/api/v1/connections/:targetID", h.handleConnectionRemove)
}

// actor pulls the authenticated user out of the request context.
func actor(c echo.Context) (int64, string, bool) {
	ctx := c.Request().Context()
	id, ok := ctx.Value(domain.ActorIDCtxKey).(int64)
	if !ok {
		return 0, "", false
	}
	name, _ := ctx.Value(domain.ActorNameCtxKey).(string)
	return id, name, true
}

func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func (h *Handler) handleEngage(action heroboard.Action) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		actorID, actorName, ok := actor(c)
		if !ok {
			return presenter.Unauthorized(c, "authentication required")
		}

		heroID, err := pathID(c, "heroID")
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid hero id")
		}

		var req heroboard.EngagementRequest
		if err := c.Bind(&req); err != nil {
			return presenter.BadRequest(c, err)
		}

		var commentID int64
		if raw := c.Param("commentID"); raw != "" {
			commentID, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return presenter.BadRequestMessage(c, "invalid comment id")
			}
		}

		heroName := req.HeroName
		if heroName == "" {
			heroName, err = h.catalog.ResolveName(ctx, heroID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return presenter.NotFound(c, "hero not found")
				}
				return presenter.InternalError(c, err)
			}
		}

		eventID, err := h.engagement.Record(ctx, usecase.RecordInput{
			Action:    action,
			ActorID:   actorID,
			ActorName: actorName,
			HeroID:    heroID,
			HeroName:  heroName,
			Text:      req.Text,
			CommentID: commentID,
			ImageURL:  req.ImageURL,
		})
		if err != nil {
			return respondError(c, err)
		}

		return presenter.OK(c, heroboard.EventResponse{EventID: eventID})
	}
}

func (h *Handler) handleHeroComments(c echo.Context) error {
	ctx := c.Request().Context()

	heroID, err := pathID(c, "heroID")
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid hero id")
	}

	comments, err := h.view.HeroComments(ctx, heroID)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, comments)
}

func (h *Handler) handleHeroImages(c echo.Context) error {
	ctx := c.Request().Context()

	heroID, err := pathID(c, "heroID")
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid hero id")
	}

	images, err := h.view.HeroImages(ctx, heroID)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, images)
}

func (h *Handler) handleLeaderboard(c echo.Context) error {
	ctx := c.Request().Context()

	ranks, err := h.view.Leaderboard(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, ranks)
}

func (h *Handler) handleMe(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, _, ok := actor(c)
	if !ok {
		return presenter.Unauthorized(c, "authentication required")
	}

	view, err := h.view.ViewFor(ctx, actorID)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, view)
}

func (h *Handler) handleMyActivity(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, _, ok := actor(c)
	if !ok {
		return presenter.Unauthorized(c, "authentication required")
	}

	entries, err := h.view.RecentActivity(ctx, actorID)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, entries)
}

func (h *Handler) handleUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathID(c, "userID")
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid user id")
	}

	actorID, _, ok := actor(c)
	if ok && actorID == userID {
		view, err := h.view.ViewFor(ctx, userID)
		if err != nil {
			return respondError(c, err)
		}
		return presenter.OK(c, view)
	}

	view, err := h.view.OthersView(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, view)
}

func (h *Handler) handleConnectionRequest(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, _, ok := actor(c)
	if !ok {
		return presenter.Unauthorized(c, "authentication required")
	}

	targetID, err := pathID(c, "targetID")
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid target id")
	}

	if err := h.connection.Request(ctx, actorID, actorID, targetID); err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleConnectionApprove(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, _, ok := actor(c)
	if !ok {
		return presenter.Unauthorized(c, "authentication required")
	}

	requesterID, err := pathID(c, "requesterID")
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid requester id")
	}

	if err := h.connection.Approve(ctx, actorID, requesterID, actorID); err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleConnectionReject(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, _, ok := actor(c)
	if !ok {
		return presenter.Unauthorized(c, "authentication required")
	}

	requesterID, err := pathID(c, "requesterID")
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid requester id")
	}

	if err := h.connection.Reject(ctx, actorID, requesterID, actorID); err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleConnectionRemove(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, _, ok := actor(c)
	if !ok {
		return presenter.Unauthorized(c, "authentication required")
	}

	targetID, err := pathID(c, "targetID")
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid target id")
	}

	if err := h.connection.Remove(ctx, actorID, actorID, targetID); err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrBadRequest):
		return presenter.BadRequest(c, err)
	case errors.Is(err, domain.ErrUnauthorized):
		return presenter.Unauthorized(c, err.Error())
	default:
		return presenter.InternalError(c, err)
	}
}
