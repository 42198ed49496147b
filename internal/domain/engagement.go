package domain

import (
	"time"

	"github.com/heroboard/heroboard"
)

// EngagementRecord is one fully-resolved engagement action ready to be
// applied against the event store and the activity ledger.
type EngagementRecord struct {
	Action      heroboard.Action
	ActorID     int64
	ActorName   string
	HeroID      int64
	HeroName    string
	Description string

	// Payload, depending on the action.
	Text      string
	CommentID int64
	ImageURL  string
}

// ActivityEntry is one row of the append-only activity feed.
type ActivityEntry struct {
	ActivityID  int64     `json:"activityId"`
	ActorID     int64     `json:"actorId"`
	ActorName   string    `json:"actorName"`
	HeroID      int64     `json:"heroId"`
	HeroName    string    `json:"heroName"`
	Description string    `json:"description"`
	CreatedDate string    `json:"createdDate"`
	CreatedTime string    `json:"createdTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommentView is one comment on a hero, joined with the commenting user.
type CommentView struct {
	CommentID   int64     `json:"commentId"`
	ActorName   string    `json:"actorName"`
	Text        string    `json:"text"`
	CreatedDate string    `json:"createdDate"`
	CreatedTime string    `json:"createdTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ImageView is one uploaded image for a hero, joined with the uploading user.
type ImageView struct {
	ImageURL    string    `json:"imageUrl"`
	ActorName   string    `json:"actorName"`
	CreatedDate string    `json:"createdDate"`
	CreatedTime string    `json:"createdTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HeroRank is one leaderboard entry. Heroes with no active follows never
// appear.
type HeroRank struct {
	HeroID       int64 `json:"heroId"`
	FollowCount  int64 `json:"followCount"`
	LikeCount    int64 `json:"likeCount"`
	CommentCount int64 `json:"commentCount"`
}

// ConnectionSets groups a user's peer connections by direction and state.
type ConnectionSets struct {
	Approved         []int64 `json:"approved"`
	Pending          []int64 `json:"pending"`
	ApprovedIncoming []int64 `json:"approvedIncoming"`
	PendingIncoming  []int64 `json:"pendingIncoming"`
}

// UserEngagementView is the full dashboard view of a user's own engagement
// state plus the global aggregates, recomputed from source rows on every
// read.
type UserEngagementView struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`

	FollowedHeroes []int64 `json:"followedHeroes"`
	LikedHeroes    []int64 `json:"likedHeroes"`

	// Own likes keyed by target, each carrying the actor's own like count
	// for that key (always 1 while the pair is unique; the count rides
	// along because the query groups by the key it filters on).
	LikedComments map[int64]int64  `json:"likedComments"`
	LikedImages   map[string]int64 `json:"likedImages"`

	HeroFollowCounts  map[int64]int64 `json:"heroFollowCounts"`
	HeroLikeCounts    map[int64]int64 `json:"heroLikeCounts"`
	HeroCommentCounts map[int64]int64 `json:"heroCommentCounts"`
	HeroImageCounts   map[int64]int64 `json:"heroImageCounts"`

	CommentLikeCounts map[int64]int64  `json:"commentLikeCounts"`
	ImageLikeCounts   map[string]int64 `json:"imageLikeCounts"`

	Connections ConnectionSets `json:"connections"`
}

// PublicEngagementView is the reduced view exposed when one user looks at
// another: hero sets only, no aggregates, no connections.
type PublicEngagementView struct {
	UserID         int64   `json:"userId"`
	Username       string  `json:"username"`
	FollowedHeroes []int64 `json:"followedHeroes"`
	LikedHeroes    []int64 `json:"likedHeroes"`
}

// LeaderboardLimit caps the number of leaderboard entries returned.
const LeaderboardLimit = 15

// FormatDate renders a timestamp the way the activity feed displays dates,
// without zero padding.
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// FormatClock renders a timestamp as a 12-hour wall-clock string.
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}
