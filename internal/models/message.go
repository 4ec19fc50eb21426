package models

import "time"

// MaxMessageLength bounds the text of a single message.
const MaxMessageLength = 140

// Message is an individual post ("warble")
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"size:140;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index;autoCreateTime"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// CreateMessageRequest defines the request body for posting a message
type CreateMessageRequest struct {
	Text string `json:"text" validate:"required,max=140"`
}
