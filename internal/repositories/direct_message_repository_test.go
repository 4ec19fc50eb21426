package repositories

import (
	"errors"
	"testing"
	"time"
)

func TestConversationBothDirections(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	repo := NewPostgresDirectMessageRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")
	carol := createTestUser(t, userRepo, "carol")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	hi, err := repo.Send(alice.ID, bob.ID, "hi")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	setDirectMessageTimestamp(t, db, hi.ID, base)

	hey, err := repo.Send(bob.ID, alice.ID, "hey")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	setDirectMessageTimestamp(t, db, hey.ID, base.Add(time.Minute))

	// Noise from an unrelated pair must not leak in.
	if _, err := repo.Send(carol.ID, bob.ID, "yo"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	conv, err := repo.Conversation(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("conversation failed: %v", err)
	}
	if len(conv) != 2 {
		t.Fatalf("expected 2 records, got %d", len(conv))
	}
	if conv[0].Msg != "hey" || conv[1].Msg != "hi" {
		t.Errorf("expected newest-first order [hey, hi], got [%q, %q]", conv[0].Msg, conv[1].Msg)
	}

	// Symmetric: the same conversation regardless of argument order.
	convReversed, err := repo.Conversation(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("conversation failed: %v", err)
	}
	if len(convReversed) != 2 {
		t.Errorf("expected the same 2 records for reversed arguments, got %d", len(convReversed))
	}
}

func TestConversationPartnersDistinct(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	repo := NewPostgresDirectMessageRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")
	carol := createTestUser(t, userRepo, "carol")

	if _, err := repo.Send(alice.ID, bob.ID, "hi"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := repo.Send(bob.ID, alice.ID, "hey"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := repo.Send(alice.ID, bob.ID, "how are you"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := repo.Send(carol.ID, alice.ID, "hello"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	partners, err := repo.ConversationPartners(alice.ID)
	if err != nil {
		t.Fatalf("partners failed: %v", err)
	}
	if len(partners) != 2 {
		t.Fatalf("expected 2 distinct partners, got %d", len(partners))
	}
	seen := map[uint]int{}
	for _, p := range partners {
		seen[p.ID]++
	}
	if seen[bob.ID] != 1 || seen[carol.ID] != 1 {
		t.Errorf("expected bob and carol exactly once each, got %v", seen)
	}

	none, err := repo.ConversationPartners(bob.ID + carol.ID + 100)
	if err != nil {
		t.Fatalf("partners failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no partners for a user without DMs, got %d", len(none))
	}
}

func TestSendValidation(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db, testHasher())
	repo := NewPostgresDirectMessageRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")

	if _, err := repo.Send(alice.ID, bob.ID, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty text, got %v", err)
	}
	if _, err := repo.Send(alice.ID, 999, "hi"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown recipient, got %v", err)
	}
}
