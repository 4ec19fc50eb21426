package models

import "time"

// DirectMessage is one record in the append-only DM log. There is no
// conversation entity; a conversation between A and B is derived from all
// records where {from,to} = {A,B} in either direction.
type DirectMessage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserFromID uint      `json:"user_from_id" gorm:"index;not null"`
	UserToID   uint      `json:"user_to_id" gorm:"index;not null"`
	Msg        string    `json:"msg" gorm:"type:text;not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"index;autoCreateTime"`
}

// SendDirectMessageRequest defines the request body for sending a DM
type SendDirectMessageRequest struct {
	Msg string `json:"msg" validate:"required,min=1"`
}
