package models

import (
	"time"
)

// Follow is one user following one hero. The per-pair unique index is what
// makes a concurrent duplicate follow fail instead of doubling the count.
type Follow struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userID" gorm:"not null;uniqueIndex:uniq_follow,priority:1"`
	HeroID    int64     `json:"heroID" gorm:"not null;uniqueIndex:uniq_follow,priority:2;index"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"cdate" gorm:"->;<-:create;not null;default:clock_timestamp()"`
}

func (f *Follow) EventID() int64 { return f.ID }
func (f *Follow) EventName() string { return "follow" }

// HeroLike is one user liking one hero. Same shape and lifecycle as Follow,
// independent table.
type HeroLike struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userID" gorm:"not null;uniqueIndex:uniq_hero_like,priority:1"`
	HeroID    int64     `json:"heroID" gorm:"not null;uniqueIndex:uniq_hero_like,priority:2;index"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"cdate" gorm:"->;<-:create;not null;default:clock_timestamp()"`
}

func (HeroLike) TableName() string { return "likes" }

func (l *HeroLike) EventID() int64 { return l.ID }
func (l *HeroLike) EventName() string { return "like" }

// Comment content is immutable once created; rows are soft-deactivated via
// Active, never updated.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userID" gorm:"not null;index"`
	HeroID    int64     `json:"heroID" gorm:"not null;index"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"cdate" gorm:"->;<-:create;not null;default:clock_timestamp()"`
}

func (c *Comment) EventID() int64 { return c.ID }
func (c *Comment) EventName() string { return "comment" }

type CommentLike struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userID" gorm:"not null;uniqueIndex:uniq_comment_like,priority:1"`
	CommentID int64     `json:"commentID" gorm:"not null;uniqueIndex:uniq_comment_like,priority:2;index"`
	CreatedAt time.Time `json:"cdate" gorm:"->;<-:create;not null;default:clock_timestamp()"`
}

func (l *CommentLike) EventID() int64 { return l.ID }
func (l *CommentLike) EventName() string { return "comment like" }

// Image is an uploaded media asset attached to a hero; append-only here.
type Image struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userID" gorm:"not null;index"`
	HeroID    int64     `json:"heroID" gorm:"not null;index"`
	ImageURL  string    `json:"imageUrl" gorm:"type:text;not null"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"cdate" gorm:"->;<-:create;not null;default:clock_timestamp()"`
}

func (i *Image) EventID() int64 { return i.ID }
func (i *Image) EventName() string { return "image" }

// ImageLike is keyed by URL rather than by the image's surrogate key, so two
// uploads sharing a URL share a like count. Kept as-is pending a product
// decision.
type ImageLike struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userID" gorm:"not null;uniqueIndex:uniq_image_like,priority:1"`
	ImageURL  string    `json:"imageUrl" gorm:"type:text;not null;uniqueIndex:uniq_image_like,priority:2;index"`
	CreatedAt time.Time `json:"cdate" gorm:"->;<-:create;not null;default:clock_timestamp()"`
}

func (l *ImageLike) EventID() int64 { return l.ID }
func (l *ImageLike) EventName() string { return "image like" }

// Activity is the append-only feed. Rows are never updated or deleted by the
// application.
type Activity struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int64     `json:"userID" gorm:"not null;index"`
	Username    string    `json:"username" gorm:"type:text;not null"`
	HeroID      int64     `json:"heroID" gorm:"not null"`
	HeroName    string    `json:"heroName" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"cdate" gorm:"->;<-:create;not null;default:clock_timestamp()"`
}

func (Activity) TableName() string { return "recent_activity" }
