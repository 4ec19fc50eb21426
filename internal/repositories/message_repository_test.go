package repositories

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPostLengthBounds(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	repo := NewPostgresMessageRepository(db)

	alice := createTestUser(t, userRepo, "alice")

	if _, err := repo.Post(alice.ID, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty text, got %v", err)
	}
	if _, err := repo.Post(alice.ID, "   "); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for blank text, got %v", err)
	}
	if _, err := repo.Post(alice.ID, strings.Repeat("a", 141)); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for 141 characters, got %v", err)
	}

	msg, err := repo.Post(alice.ID, strings.Repeat("a", 140))
	if err != nil {
		t.Fatalf("140-character message should post, got %v", err)
	}
	if msg.UserID != alice.ID {
		t.Errorf("expected owner %d, got %d", alice.ID, msg.UserID)
	}
}

func TestDeleteRequiresOwnerOrModerator(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	repo := NewPostgresMessageRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")
	admin := createTestUser(t, userRepo, "admin")
	db.Model(admin).Update("admin", true)
	admin, _ = userRepo.GetUserByID(admin.ID)

	msg, err := repo.Post(alice.ID, "hello")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}

	if err := repo.Delete(msg.ID, bob); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-owner, got %v", err)
	}
	if _, err := repo.Get(msg.ID); err != nil {
		t.Fatalf("message should still exist after rejected delete: %v", err)
	}

	if err := repo.Delete(msg.ID, admin); err != nil {
		t.Fatalf("moderator delete failed: %v", err)
	}
	if _, err := repo.Get(msg.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected message to be gone, got %v", err)
	}

	msg2, err := repo.Post(alice.ID, "again")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if err := repo.Delete(msg2.ID, alice); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestDeleteUnknownMessage(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	repo := NewPostgresMessageRepository(db)

	alice := createTestUser(t, userRepo, "alice")

	if err := repo.Delete(999, alice); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	repo := NewPostgresMessageRepository(db)

	alice := createTestUser(t, userRepo, "alice")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	texts := []string{"first", "second", "third"}
	for i, text := range texts {
		msg, err := repo.Post(alice.ID, text)
		if err != nil {
			t.Fatalf("post failed: %v", err)
		}
		setMessageTimestamp(t, db, msg.ID, base.Add(time.Duration(i)*time.Minute))
	}

	msgs, err := repo.ListByUser(alice.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "third" || msgs[2].Text != "first" {
		t.Errorf("expected newest-first order, got %q ... %q", msgs[0].Text, msgs[2].Text)
	}
}

func TestHomeTimeline(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	followRepo := NewPostgresFollowRepository(db)
	repo := NewPostgresMessageRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")
	carol := createTestUser(t, userRepo, "carol")

	if err := followRepo.Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	post := func(authorID uint, text string, offset time.Duration) {
		msg, err := repo.Post(authorID, text)
		if err != nil {
			t.Fatalf("post failed: %v", err)
		}
		setMessageTimestamp(t, db, msg.ID, base.Add(offset))
	}

	post(alice.ID, "alice 1", 1*time.Minute)
	post(bob.ID, "bob 1", 2*time.Minute)
	post(carol.ID, "carol 1", 3*time.Minute)
	post(bob.ID, "bob 2", 4*time.Minute)

	msgs, err := repo.HomeTimeline(alice.ID, 0)
	if err != nil {
		t.Fatalf("timeline failed: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 eligible messages, got %d", len(msgs))
	}
	for _, m := range msgs {
		if m.UserID == carol.ID {
			t.Errorf("carol is not followed; her message %q must not appear", m.Text)
		}
	}
	if msgs[0].Text != "bob 2" || msgs[1].Text != "bob 1" || msgs[2].Text != "alice 1" {
		t.Errorf("expected newest-first order [bob 2, bob 1, alice 1], got [%q, %q, %q]",
			msgs[0].Text, msgs[1].Text, msgs[2].Text)
	}
}

func TestHomeTimelineTruncation(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	repo := NewPostgresMessageRepository(db)

	alice := createTestUser(t, userRepo, "alice")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		msg, err := repo.Post(alice.ID, "msg")
		if err != nil {
			t.Fatalf("post failed: %v", err)
		}
		setMessageTimestamp(t, db, msg.ID, base.Add(time.Duration(i)*time.Minute))
	}

	msgs, err := repo.HomeTimeline(alice.ID, 3)
	if err != nil {
		t.Fatalf("timeline failed: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(msgs))
	}
	if !msgs[0].Timestamp.After(msgs[2].Timestamp) {
		t.Error("expected the most recent messages to survive truncation")
	}
}
