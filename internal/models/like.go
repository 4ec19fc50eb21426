package models

import "time"

// Like marks a message as liked by a user; at most one per (user, message).
type Like struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	MessageID uint      `json:"message_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
}
