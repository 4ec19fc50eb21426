package repositories

import (
	"errors"
	"testing"

	"github.com/warblehq/warbler/backend/internal/models"
)

func TestLikeOwnMessageRejected(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	messageRepo := NewPostgresMessageRepository(db)
	repo := NewPostgresLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	msg, err := messageRepo.Post(alice.ID, "my own warble")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}

	if err := repo.Like(alice.ID, msg.ID); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestLikeUnlikeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	messageRepo := NewPostgresMessageRepository(db)
	repo := NewPostgresLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")
	msg, err := messageRepo.Post(alice.ID, "hello")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}

	if err := repo.Like(bob.ID, msg.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	// Liking twice leaves exactly one edge.
	if err := repo.Like(bob.ID, msg.ID); err != nil {
		t.Fatalf("second like should be a no-op, got %v", err)
	}

	var count int64
	db.Model(&models.Like{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 like edge, got %d", count)
	}

	likers, err := repo.LikedBy(msg.ID)
	if err != nil {
		t.Fatalf("LikedBy failed: %v", err)
	}
	if len(likers) != 1 || likers[0].ID != bob.ID {
		t.Errorf("expected bob as the only liker, got %+v", likers)
	}

	if err := repo.Unlike(bob.ID, msg.ID); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	likers, err = repo.LikedBy(msg.ID)
	if err != nil {
		t.Fatalf("LikedBy failed: %v", err)
	}
	if len(likers) != 0 {
		t.Errorf("expected no likers after unlike, got %d", len(likers))
	}

	// Unliking an absent edge is a no-op.
	if err := repo.Unlike(bob.ID, msg.ID); err != nil {
		t.Errorf("unlike of a non-edge should be a no-op, got %v", err)
	}
}

func TestLikeUnknownMessage(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	repo := NewPostgresLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")

	if err := repo.Like(alice.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLikedMessagesAndHasLiked(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	messageRepo := NewPostgresMessageRepository(db)
	repo := NewPostgresLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")

	first, err := messageRepo.Post(alice.ID, "first")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	second, err := messageRepo.Post(alice.ID, "second")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}

	if err := repo.Like(bob.ID, first.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	liked, err := repo.LikedMessages(bob.ID)
	if err != nil {
		t.Fatalf("LikedMessages failed: %v", err)
	}
	if len(liked) != 1 || liked[0].ID != first.ID {
		t.Errorf("expected only the first message to be liked, got %+v", liked)
	}

	has, err := repo.HasLiked(bob.ID, first.ID)
	if err != nil {
		t.Fatalf("HasLiked failed: %v", err)
	}
	if !has {
		t.Error("expected HasLiked true for liked message")
	}
	has, err = repo.HasLiked(bob.ID, second.ID)
	if err != nil {
		t.Fatalf("HasLiked failed: %v", err)
	}
	if has {
		t.Error("expected HasLiked false for unliked message")
	}
}
