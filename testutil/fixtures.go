package testutil

import (
	"context"
	"io"
	"sync"
	"testing"

	"quizhub/models"

	"github.com/rs/zerolog"
)

// NopLogger discards everything.
func NopLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// SeedUser inserts a user whose stored hash is not valid bcrypt, so no
// password ever verifies against it.
func SeedUser(t *testing.T, store *MemoryStore, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, PasswordHash: "not-a-bcrypt-hash"}
	if err := store.CreateUser(context.Background(), &user); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

// SeedGame inserts a game with the given code and returns it.
func SeedGame(t *testing.T, store *MemoryStore, game models.Game) models.Game {
	t.Helper()
	if err := store.CreateGame(context.Background(), &game); err != nil {
		t.Fatalf("Failed to seed game: %v", err)
	}
	return game
}

// FakeReserver is an in-memory CodeReserver.
type FakeReserver struct {
	mu   sync.Mutex
	held map[string]bool

	Err error
	// RejectNext makes the next N reservations fail as if held elsewhere.
	RejectNext int
	Reserved   []string
	Released   []string
}

func NewFakeReserver() *FakeReserver {
	return &FakeReserver{held: map[string]bool{}}
}

func (r *FakeReserver) Reserve(_ context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	if r.RejectNext > 0 {
		r.RejectNext--
		return false, nil
	}
	if r.held[code] {
		return false, nil
	}
	r.held[code] = true
	r.Reserved = append(r.Reserved, code)
	return true, nil
}

func (r *FakeReserver) Release(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.held, code)
	r.Released = append(r.Released, code)
	return nil
}
