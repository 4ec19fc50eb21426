package repositories

import (
	"errors"

	"github.com/warblehq/warbler/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the like-edge operations between users and messages
type LikeRepository interface {
	Like(userID, messageID uint) error
	Unlike(userID, messageID uint) error
	LikedMessages(userID uint) ([]models.Message, error)
	LikedBy(messageID uint) ([]models.User, error)
	HasLiked(userID, messageID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository on GORM
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// Like inserts the edge user -> message. Liking one's own message is
// rejected; liking twice is a no-op via the composite primary key.
func (r *PostgresLikeRepository) Like(userID, messageID uint) error {
	var msg models.Message
	if err := r.db.First(&msg, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if msg.UserID == userID {
		return ErrInvalidOperation
	}

	like := &models.Like{UserID: userID, MessageID: messageID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// Unlike removes the edge if present; removing an absent edge is a no-op.
func (r *PostgresLikeRepository) Unlike(userID, messageID uint) error {
	return r.db.Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
}

// LikedMessages returns the messages userID has liked, newest first
func (r *PostgresLikeRepository) LikedMessages(userID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.Like{}).Select("message_id").Where("user_id = ?", userID),
	).Order("timestamp DESC, id DESC").Find(&msgs).Error
	return msgs, err
}

// LikedBy returns the users who liked messageID
func (r *PostgresLikeRepository) LikedBy(messageID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.Like{}).Select("user_id").Where("message_id = ?", messageID),
	).Order("id").Find(&users).Error
	return users, err
}

// HasLiked reports whether userID has liked messageID
func (r *PostgresLikeRepository) HasLiked(userID, messageID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
