package repositories

import (
	"errors"

	"github.com/warblehq/warbler/backend/internal/auth"
	"github.com/warblehq/warbler/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the identity operations: registration,
// authentication, profile mutation and account deletion.
type UserRepository interface {
	Signup(username, email, password, imageURL string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error)
	AdminUpdate(userID uint, req models.AdminUpdateUserRequest) (*models.User, error)
	DeleteAccount(userID uint) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUsers() ([]models.User, error)
	SearchUsers(query string) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository on GORM
type PostgresUserRepository struct {
	db     *gorm.DB
	hasher *auth.PasswordHasher
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB, hasher *auth.PasswordHasher) *PostgresUserRepository {
	return &PostgresUserRepository{db: db, hasher: hasher}
}

// Signup creates a user with a hashed password. Username and email
// uniqueness is enforced by the unique indexes; a violation surfaces as
// ErrDuplicateIdentity and no partial row persists.
func (r *PostgresUserRepository) Signup(username, email, password, imageURL string) (*models.User, error) {
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	hashed, err := r.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		Password:       hashed,
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return user, nil
}

// Authenticate looks up a user by username and verifies the password.
// Any mismatch returns (nil, nil): the caller cannot tell an unknown
// username from a wrong password, and a failed login is not a fault.
func (r *PostgresUserRepository) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !r.hasher.Verify(password, user.Password) {
		return nil, nil
	}
	return &user, nil
}

// UpdateProfile applies a profile edit after re-verifying the current
// password. A failed verification returns ErrInvalidCredential and leaves
// the row untouched.
func (r *PostgresUserRepository) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := r.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if !r.hasher.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ImageURL != "" {
		user.ImageURL = req.ImageURL
	}
	if req.HeaderImageURL != "" {
		user.HeaderImageURL = req.HeaderImageURL
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Location != "" {
		user.Location = req.Location
	}

	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return user, nil
}

// AdminUpdate applies a moderation edit to any profile, including the
// admin flag. Callers must have checked CanModerate on the actor.
func (r *PostgresUserRepository) AdminUpdate(userID uint, req models.AdminUpdateUserRequest) (*models.User, error) {
	user, err := r.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ImageURL != "" {
		user.ImageURL = req.ImageURL
	}
	if req.HeaderImageURL != "" {
		user.HeaderImageURL = req.HeaderImageURL
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Admin != nil {
		user.Admin = *req.Admin
	}

	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and every dependent row in one
// transaction: likes on the user's messages, the user's own likes, follow
// edges in both directions, messages, direct messages, then the user row.
// Either all of it commits or none does.
func (r *PostgresUserRepository) DeleteAccount(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		ownMessages := tx.Model(&models.Message{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("message_id IN (?)", ownMessages).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", userID, userID).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_from_id = ? OR user_to_id = ?", userID, userID).Delete(&models.DirectMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUsers retrieves all users
func (r *PostgresUserRepository) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SearchUsers searches for users by username (case-insensitive)
func (r *PostgresUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("LOWER(username) LIKE LOWER(?)", "%"+query+"%").Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
