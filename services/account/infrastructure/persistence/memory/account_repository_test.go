package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/wardrobecapital/wardrobe/services/account/domain"
	"github.com/wardrobecapital/wardrobe/services/account/domain/models"
)

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	alice, _ := models.NewAccount("Alice", "hash")
	if err := repo.Save(ctx, alice); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dup, _ := models.NewAccount("alice", "other")
	if err := repo.Save(ctx, dup); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("duplicate Save err = %v, want ErrUsernameTaken", err)
	}

	got, err := repo.GetByUsername(ctx, "ALICE")
	if err != nil || got.ID != alice.ID {
		t.Fatalf("GetByUsername = %v, %v", got, err)
	}
	got.Username = "mutated"
	again, _ := repo.GetByID(ctx, alice.ID)
	if again.Username != "Alice" {
		t.Errorf("stored account was mutated through a returned copy")
	}

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("GetByID unknown err = %v", err)
	}
	if _, err := repo.GetByUsername(ctx, "bob"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("GetByUsername unknown err = %v", err)
	}
}
