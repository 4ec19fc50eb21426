package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Placeholder images used when signup omits them.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User is an account in the system.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"` // bcrypt hash, never plaintext
	ImageURL       string    `json:"image_url"`
	HeaderImageURL string    `json:"header_image_url"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	Admin          bool      `json:"admin" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"created_at"`
}

// CanModerate reports whether the user may edit or delete content they do
// not own. Every moderation path checks this single predicate.
func (u *User) CanModerate() bool {
	return u.Admin
}

// UserCompact is the trimmed view embedded in listings (followers, likers).
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
	}
}

// SignupRequest defines the request body for registering a new account
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty"`
}

// LoginRequest defines the request body for authenticating
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for editing the own profile.
// Password is the current password, re-entered to authorize the change.
type UpdateProfileRequest struct {
	Password       string `json:"password" validate:"required"`
	Username       string `json:"username,omitempty" validate:"omitempty,min=1,max=50"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	ImageURL       string `json:"image_url,omitempty"`
	HeaderImageURL string `json:"header_image_url,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
}

// AdminUpdateUserRequest defines the request body for the admin edit page;
// unlike self-edit it needs no password re-entry and may grant admin.
type AdminUpdateUserRequest struct {
	Username       string `json:"username,omitempty" validate:"omitempty,min=1,max=50"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	ImageURL       string `json:"image_url,omitempty"`
	HeaderImageURL string `json:"header_image_url,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	Admin          *bool  `json:"admin,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
