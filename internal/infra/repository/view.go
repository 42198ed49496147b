package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/heroboard/heroboard/internal/domain"
	"github.com/heroboard/heroboard/internal/infra/database/models"
)

type ViewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

type idCount struct {
	ID    int64
	Count int64
}

type urlCount struct {
	URL   string
	Count int64
}

// UserView recomputes the full dashboard from source rows. Nothing here is
// cached; the leaderboard is the only read with a cache in front of it.
// The anchor lookup ignores the active flag; deactivated users still resolve.
func (r *ViewRepository) UserView(ctx context.Context, userID int64) (domain.UserEngagementView, error) {

	view := domain.UserEngagementView{}

	var user models.User
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view, domain.NotFoundError{Resource: "user"}
		}
		return view, err
	}

	view.UserID = user.ID
	view.Username = user.Username

	err = r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("user_id = ? AND active = TRUE", userID).
		Pluck("hero_id", &view.FollowedHeroes).Error
	if err != nil {
		return view, err
	}

	err = r.db.WithContext(ctx).Model(&models.HeroLike{}).
		Where("user_id = ? AND active = TRUE", userID).
		Pluck("hero_id", &view.LikedHeroes).Error
	if err != nil {
		return view, err
	}

	view.LikedComments, err = r.groupByID(ctx, &models.CommentLike{}, "comment_id", "user_id = ?", userID)
	if err != nil {
		return view, err
	}

	view.LikedImages, err = r.groupByURL(ctx, &models.ImageLike{}, "user_id = ?", userID)
	if err != nil {
		return view, err
	}

	view.HeroFollowCounts, err = r.groupByID(ctx, &models.Follow{}, "hero_id", "active = TRUE")
	if err != nil {
		return view, err
	}

	view.HeroLikeCounts, err = r.groupByID(ctx, &models.HeroLike{}, "hero_id", "active = TRUE")
	if err != nil {
		return view, err
	}

	view.HeroCommentCounts, err = r.groupByID(ctx, &models.Comment{}, "hero_id", "active = TRUE")
	if err != nil {
		return view, err
	}

	view.HeroImageCounts, err = r.groupByID(ctx, &models.Image{}, "hero_id", "active = TRUE")
	if err != nil {
		return view, err
	}

	view.CommentLikeCounts, err = r.groupByID(ctx, &models.CommentLike{}, "comment_id", "")
	if err != nil {
		return view, err
	}

	view.ImageLikeCounts, err = r.groupByURL(ctx, &models.ImageLike{}, "")
	if err != nil {
		return view, err
	}

	view.Connections, err = r.connectionSets(ctx, userID)
	if err != nil {
		return view, err
	}

	return view, nil
}

// PublicView is the reduced projection another user is allowed to see.
func (r *ViewRepository) PublicView(ctx context.Context, userID int64) (domain.PublicEngagementView, error) {

	view := domain.PublicEngagementView{}

	var user models.User
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view, domain.NotFoundError{Resource: "user"}
		}
		return view, err
	}

	view.UserID = user.ID
	view.Username = user.Username

	err = r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("user_id = ? AND active = TRUE", userID).
		Pluck("hero_id", &view.FollowedHeroes).Error
	if err != nil {
		return view, err
	}

	err = r.db.WithContext(ctx).Model(&models.HeroLike{}).
		Where("user_id = ? AND active = TRUE", userID).
		Pluck("hero_id", &view.LikedHeroes).Error
	if err != nil {
		return view, err
	}

	return view, nil
}

// Leaderboard ranks heroes by active follow count, ties broken by hero ID.
// Like and comment counts ride along per hero but do not affect the order.
func (r *ViewRepository) Leaderboard(ctx context.Context) ([]domain.HeroRank, error) {

	var ranks []domain.HeroRank
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			f.hero_id,
			COUNT(f.id) AS follow_count,
			(SELECT COUNT(l.id) FROM likes l WHERE l.active = TRUE AND l.hero_id = f.hero_id) AS like_count,
			(SELECT COUNT(c.id) FROM comments c WHERE c.active = TRUE AND c.hero_id = f.hero_id) AS comment_count
		FROM follows f
		WHERE f.active = TRUE
		GROUP BY f.hero_id
		ORDER BY follow_count DESC, f.hero_id ASC
		LIMIT ?
	`, domain.LeaderboardLimit).Scan(&ranks).Error
	if err != nil {
		return nil, err
	}

	return ranks, nil
}

func (r *ViewRepository) RecentActivity(ctx context.Context, userID int64) ([]domain.ActivityEntry, error) {

	var rows []models.Activity
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.ActivityEntry{
			ActivityID:  row.ID,
			ActorID:     row.UserID,
			ActorName:   row.Username,
			HeroID:      row.HeroID,
			HeroName:    row.HeroName,
			Description: row.Description,
			CreatedDate: domain.FormatDate(row.CreatedAt),
			CreatedTime: domain.FormatClock(row.CreatedAt),
			CreatedAt:   row.CreatedAt,
		})
	}

	return entries, nil
}

func (r *ViewRepository) HeroComments(ctx context.Context, heroID int64) ([]domain.CommentView, error) {

	var rows []struct {
		ID        int64
		Username  string
		Body      string
		CreatedAt time.Time
	}
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Select("comments.id, users.username, comments.body, comments.created_at").
		Joins("JOIN users ON users.id = comments.user_id AND users.active = TRUE").
		Where("comments.hero_id = ? AND comments.active = TRUE", heroID).
		Order("comments.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]domain.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, domain.CommentView{
			CommentID:   row.ID,
			ActorName:   row.Username,
			Text:        row.Body,
			CreatedDate: domain.FormatDate(row.CreatedAt),
			CreatedTime: domain.FormatClock(row.CreatedAt),
			CreatedAt:   row.CreatedAt,
		})
	}

	return views, nil
}

func (r *ViewRepository) HeroImages(ctx context.Context, heroID int64) ([]domain.ImageView, error) {

	var rows []struct {
		ImageURL  string
		Username  string
		CreatedAt time.Time
	}
	err := r.db.WithContext(ctx).Model(&models.Image{}).
		Select("images.image_url, users.username, images.created_at").
		Joins("JOIN users ON users.id = images.user_id AND users.active = TRUE").
		Where("images.hero_id = ? AND images.active = TRUE", heroID).
		Order("images.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]domain.ImageView, 0, len(rows))
	for _, row := range rows {
		views = append(views, domain.ImageView{
			ImageURL:    row.ImageURL,
			ActorName:   row.Username,
			CreatedDate: domain.FormatDate(row.CreatedAt),
			CreatedTime: domain.FormatClock(row.CreatedAt),
			CreatedAt:   row.CreatedAt,
		})
	}

	return views, nil
}

func (r *ViewRepository) groupByID(ctx context.Context, model any, key string, cond string, args ...any) (map[int64]int64, error) {

	query := r.db.WithContext(ctx).Model(model).
		Select(key + " AS id, COUNT(*) AS count").
		Group(key)
	if cond != "" {
		query = query.Where(cond, args...)
	}

	var rows []idCount
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}

func (r *ViewRepository) groupByURL(ctx context.Context, model any, cond string, args ...any) (map[string]int64, error) {

	query := r.db.WithContext(ctx).Model(model).
		Select("image_url AS url, COUNT(*) AS count").
		Group("image_url")
	if cond != "" {
		query = query.Where(cond, args...)
	}

	var rows []urlCount
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.URL] = row.Count
	}
	return counts, nil
}

func (r *ViewRepository) connectionSets(ctx context.Context, userID int64) (domain.ConnectionSets, error) {

	sets := domain.ConnectionSets{}

	err := r.db.WithContext(ctx).Model(&models.Connection{}).
		Where("requester_id = ? AND active = TRUE", userID).
		Pluck("target_id", &sets.Approved).Error
	if err != nil {
		return sets, err
	}

	err = r.db.WithContext(ctx).Model(&models.Connection{}).
		Where("requester_id = ? AND active = FALSE", userID).
		Pluck("target_id", &sets.Pending).Error
	if err != nil {
		return sets, err
	}

	err = r.db.WithContext(ctx).Model(&models.Connection{}).
		Where("target_id = ? AND active = TRUE", userID).
		Pluck("requester_id", &sets.ApprovedIncoming).Error
	if err != nil {
		return sets, err
	}

	err = r.db.WithContext(ctx).Model(&models.Connection{}).
		Where("target_id = ? AND active = FALSE", userID).
		Pluck("requester_id", &sets.PendingIncoming).Error
	if err != nil {
		return sets, err
	}

	return sets, nil
}
