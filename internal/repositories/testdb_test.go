package repositories

import (
	"testing"
	"time"

	"github.com/warblehq/warbler/backend/internal/auth"
	"github.com/warblehq/warbler/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. The pool is capped at one
// connection so the memory database is not silently duplicated per
// connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
		&models.DirectMessage{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// testHasher uses bcrypt's minimum cost to keep the suite fast.
func testHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasher(4)
}

func createTestUser(t *testing.T, repo *PostgresUserRepository, username string) *models.User {
	t.Helper()
	user, err := repo.Signup(username, username+"@example.com", "password123", "")
	if err != nil {
		t.Fatalf("failed to create test user %q: %v", username, err)
	}
	return user
}

// setMessageTimestamp backdates a message so ordering tests are
// deterministic.
func setMessageTimestamp(t *testing.T, db *gorm.DB, messageID uint, ts time.Time) {
	t.Helper()
	if err := db.Model(&models.Message{}).Where("id = ?", messageID).Update("timestamp", ts).Error; err != nil {
		t.Fatalf("failed to set message timestamp: %v", err)
	}
}

func setDirectMessageTimestamp(t *testing.T, db *gorm.DB, dmID uint, ts time.Time) {
	t.Helper()
	if err := db.Model(&models.DirectMessage{}).Where("id = ?", dmID).Update("timestamp", ts).Error; err != nil {
		t.Fatalf("failed to set direct message timestamp: %v", err)
	}
}
