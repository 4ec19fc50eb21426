package repositories

import (
	"strings"

	"github.com/warblehq/warbler/backend/internal/models"
	"gorm.io/gorm"
)

// DirectMessageRepository defines the DM thread store. Conversations are
// derived from the append-only record log, never stored.
type DirectMessageRepository interface {
	Send(fromID, toID uint, msg string) (*models.DirectMessage, error)
	Conversation(userAID, userBID uint) ([]models.DirectMessage, error)
	ConversationPartners(userID uint) ([]models.User, error)
}

// PostgresDirectMessageRepository implements DirectMessageRepository on GORM
type PostgresDirectMessageRepository struct {
	db *gorm.DB
}

// NewPostgresDirectMessageRepository creates a new PostgresDirectMessageRepository
func NewPostgresDirectMessageRepository(db *gorm.DB) *PostgresDirectMessageRepository {
	return &PostgresDirectMessageRepository{db: db}
}

// Send appends a record from fromID to toID. The only validation is
// non-empty text and an existing recipient.
func (r *PostgresDirectMessageRepository) Send(fromID, toID uint, msg string) (*models.DirectMessage, error) {
	if strings.TrimSpace(msg) == "" {
		return nil, ErrValidation
	}

	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", toID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	dm := &models.DirectMessage{UserFromID: fromID, UserToID: toID, Msg: msg}
	if err := r.db.Create(dm).Error; err != nil {
		return nil, err
	}
	return dm, nil
}

// Conversation returns every record exchanged between the two users in
// either direction, newest first.
func (r *PostgresDirectMessageRepository) Conversation(userAID, userBID uint) ([]models.DirectMessage, error) {
	var msgs []models.DirectMessage
	err := r.db.
		Where("(user_from_id = ? AND user_to_id = ?) OR (user_from_id = ? AND user_to_id = ?)",
			userAID, userBID, userBID, userAID).
		Order("timestamp DESC, id DESC").
		Find(&msgs).Error
	return msgs, err
}

// ConversationPartners returns the distinct set of users who appear as the
// other party across all records involving userID.
func (r *PostgresDirectMessageRepository) ConversationPartners(userID uint) ([]models.User, error) {
	var records []models.DirectMessage
	if err := r.db.
		Where("user_from_id = ? OR user_to_id = ?", userID, userID).
		Find(&records).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	var partnerIDs []uint
	for _, rec := range records {
		other := rec.UserFromID
		if other == userID {
			other = rec.UserToID
		}
		if !seen[other] {
			seen[other] = true
			partnerIDs = append(partnerIDs, other)
		}
	}

	if len(partnerIDs) == 0 {
		return []models.User{}, nil
	}

	var users []models.User
	err := r.db.Where("id IN (?)", partnerIDs).Order("id").Find(&users).Error
	return users, err
}
