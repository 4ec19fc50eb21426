package repositories

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/warblehq/warbler/backend/internal/models"
	"gorm.io/gorm"
)

// DefaultTimelineLimit is the number of messages the home timeline returns
// when the caller does not ask for fewer.
const DefaultTimelineLimit = 100

// MessageRepository defines the message store plus timeline composition
type MessageRepository interface {
	Post(authorID uint, text string) (*models.Message, error)
	Delete(messageID uint, actor *models.User) error
	Get(messageID uint) (*models.Message, error)
	ListByUser(userID uint) ([]models.Message, error)
	HomeTimeline(userID uint, limit int) ([]models.Message, error)
}

// PostgresMessageRepository implements MessageRepository on GORM
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// Post creates a message for authorID. Text must be non-empty and at most
// MaxMessageLength characters; the bound is re-checked here regardless of
// what the web layer validated.
func (r *PostgresMessageRepository) Post(authorID uint, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" || utf8.RuneCountInString(text) > models.MaxMessageLength {
		return nil, ErrValidation
	}

	msg := &models.Message{Text: text, UserID: authorID}
	if err := r.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// Delete removes a message and its like edges. Only the owner or a
// moderator may delete; the check runs before any mutation.
func (r *PostgresMessageRepository) Delete(messageID uint, actor *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var msg models.Message
		if err := tx.First(&msg, messageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if msg.UserID != actor.ID && !actor.CanModerate() {
			return ErrUnauthorized
		}

		if err := tx.Where("message_id = ?", messageID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&msg).Error
	})
}

// Get retrieves a single message by ID
func (r *PostgresMessageRepository) Get(messageID uint) (*models.Message, error) {
	var msg models.Message
	if err := r.db.First(&msg, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// ListByUser returns all of a user's messages, newest first
func (r *PostgresMessageRepository) ListByUser(userID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&msgs).Error
	return msgs, err
}

// HomeTimeline returns the most recent messages authored by userID or by
// anyone userID follows, newest first, truncated to limit. The follow set
// is resolved in the same query rather than loaded into application code.
func (r *PostgresMessageRepository) HomeTimeline(userID uint, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultTimelineLimit
	}

	following := r.db.Model(&models.Follow{}).Select("followed_id").Where("follower_id = ?", userID)

	var msgs []models.Message
	err := r.db.Where("user_id = ? OR user_id IN (?)", userID, following).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
