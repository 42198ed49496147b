package heroboard

// Action identifies one engagement verb a user can perform against a hero
// or against content attached to a hero.
type Action string

const (
	ActionFollow        Action = "follow"
	ActionUnfollow      Action = "unfollow"
	ActionLikeHero      Action = "likeHero"
	ActionUnlikeHero    Action = "unlikeHero"
	ActionComment       Action = "comment"
	ActionUploadImage   Action = "uploadImage"
	ActionLikeComment   Action = "likeComment"
	ActionUnlikeComment Action = "unlikeComment"
	ActionLikeImage     Action = "likeImage"
	ActionUnlikeImage   Action = "unlikeImage"
)

// descriptions holds the fixed phrase written to the activity feed for each
// action. These strings are part of the stored data and must not change.
var descriptions = map[Action]string{
	ActionFollow:        "followed",
	ActionUnfollow:      "unfollowed",
	ActionLikeHero:      "liked",
	ActionUnlikeHero:    "unliked",
	ActionComment:       "commented on",
	ActionUploadImage:   "uploaded an image for",
	ActionLikeComment:   "liked a comment on",
	ActionUnlikeComment: "unliked a comment on",
	ActionLikeImage:     "liked an image for",
	ActionUnlikeImage:   "unliked an image for",
}

// Description returns the activity-feed phrase for the action. The second
// return is false for an unknown action.
func (a Action) Description() (string, bool) {
	d, ok := descriptions[a]
	return d, ok
}

// Removes reports whether the action deletes its event row rather than
// inserting one.
func (a Action) Removes() bool {
	switch a {
	case ActionUnfollow, ActionUnlikeHero, ActionUnlikeComment, ActionUnlikeImage:
		return true
	}
	return false
}

// EngagementRequest is the wire payload for engagement mutations. HeroName is
// a display-name snapshot; when empty the server resolves it from the hero
// catalog.
type EngagementRequest struct {
	HeroName string `json:"heroName,omitempty"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// EventResponse carries the identifier of the row the engagement mutation
// inserted or removed.
type EventResponse struct {
	EventID int64 `json:"eventId"`
}
