package services

import (
	"github.com/wardrobecapital/wardrobe/pkg/app"
	"github.com/wardrobecapital/wardrobe/services/account/domain/repositories"
	"github.com/wardrobecapital/wardrobe/services/account/infrastructure/persistence/memory"
	"github.com/wardrobecapital/wardrobe/services/account/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Account *AccountService
}

// New wires the account services with infrastructure from the Application
// container. Without a database accounts are kept in memory.
func New(a *app.Application) *Services {
	var repo repositories.AccountRepository
	if a.Db != nil {
		repo = postgres.NewAccountRepository(a.Db)
	} else {
		repo = memory.NewAccountRepository()
	}
	return &Services{Account: NewAccountService(repo, 0, a.Logger)}
}
