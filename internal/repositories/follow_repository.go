package repositories

import (
	"github.com/warblehq/warbler/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the social-graph operations over follow edges
type FollowRepository interface {
	Follow(followerID, followedID uint) error
	Unfollow(followerID, followedID uint) error
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowingIDs(userID uint) ([]uint, error)
	IsFollowing(followerID, followedID uint) (bool, error)
	IsFollowedBy(userID, otherID uint) (bool, error)
}

// PostgresFollowRepository implements FollowRepository on GORM
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// Follow inserts the edge follower -> followed. Self-follows are rejected;
// inserting an edge that already exists is a no-op, the composite primary
// key guarantees at most one row per ordered pair even under concurrent
// inserts.
func (r *PostgresFollowRepository) Follow(followerID, followedID uint) error {
	if followerID == followedID {
		return ErrInvalidOperation
	}

	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", followedID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}

	follow := &models.Follow{FollowerID: followerID, FollowedID: followedID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}

// Unfollow removes the edge if present; removing an absent edge is a no-op.
func (r *PostgresFollowRepository) Unfollow(followerID, followedID uint) error {
	return r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

// GetFollowers returns the users following userID
func (r *PostgresFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.Follow{}).Select("follower_id").Where("followed_id = ?", userID),
	).Order("id").Find(&users).Error
	return users, err
}

// GetFollowing returns the users userID follows
func (r *PostgresFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.Follow{}).Select("followed_id").Where("follower_id = ?", userID),
	).Order("id").Find(&users).Error
	return users, err
}

// GetFollowingIDs returns just the followed user IDs, for feed composition
func (r *PostgresFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("followed_id", &ids).Error
	return ids, err
}

// IsFollowing reports whether followerID follows followedID
func (r *PostgresFollowRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsFollowedBy reports whether otherID follows userID
func (r *PostgresFollowRepository) IsFollowedBy(userID, otherID uint) (bool, error) {
	return r.IsFollowing(otherID, userID)
}
