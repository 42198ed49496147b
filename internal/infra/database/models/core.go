package models

import (
	"time"
)

// User is owned by the identity subsystem; this side only reads it to join
// display names and the active flag.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:text;not null;uniqueIndex"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"cdate" gorm:"->;<-:create;not null;default:clock_timestamp()"`
}

// Connection is a peer follow request from requester to target. The reverse
// ordered pair is an independent row. Active=false is pending; approval by
// the target flips it to true; reject and unfollow delete the row.
type Connection struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RequesterID int64     `json:"requesterID" gorm:"not null;uniqueIndex:uniq_connection,priority:1"`
	TargetID    int64     `json:"targetID" gorm:"not null;uniqueIndex:uniq_connection,priority:2;index"`
	Status      int       `json:"status" gorm:"not null;default:0"`
	Active      bool      `json:"active" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"cdate" gorm:"->;<-:create;not null;default:clock_timestamp()"`
}

func (Connection) TableName() string { return "user_connections" }
