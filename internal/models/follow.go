package models

import "time"

// Follow is a directed edge: the follower sees the followed user's posts.
// The ordered pair is the identity, so a duplicate insert hits the
// composite primary key instead of creating a second edge.
type Follow struct {
	FollowedID uint      `json:"followed_id" gorm:"primaryKey;autoIncrement:false"`
	FollowerID uint      `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `json:"created_at"`
}
