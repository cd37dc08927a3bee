package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/services/account/domain"
	"github.com/wardrobecapital/wardrobe/services/account/infrastructure/persistence/memory"
)

func newService() *AccountService {
	log := logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard)
	return NewAccountService(memory.NewAccountRepository(), bcrypt.MinCost, log)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	account, err := svc.Register(ctx, "alice", "correct horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if account.PasswordHash == "correct horse" {
		t.Fatal("password stored in plain text")
	}

	got, err := svc.Login(ctx, "Alice", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != account.ID {
		t.Errorf("Login id = %v, want %v", got.ID, account.ID)
	}

	me, err := svc.Get(ctx, account.ID)
	if err != nil || me.Username != "alice" {
		t.Errorf("Get = %v, %v", me, err)
	}
}

func TestRegister_Errors(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, "alice", "correct horse"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"taken", "ALICE", "another secret", domain.ErrUsernameTaken},
		{"short password", "bob", "short", domain.ErrInvalidAccount},
		{"bad username", "b", "long enough", domain.ErrInvalidAccount},
		{"empty", "", "", domain.ErrInvalidAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.username, tt.password); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, "alice", "correct horse"); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct{ username, password string }{
		{"alice", "wrong password"},
		{"nobody", "correct horse"},
	} {
		if _, err := svc.Login(ctx, tc.username, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login(%q) err = %v, want ErrInvalidCredentials", tc.username, err)
		}
	}
}
