package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/wardrobecapital/wardrobe/pkg/app"
	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/pkg/database"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/pkg/markdown"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/infrastructure/advisor"
)

// env is what every subcommand runs against.
type env struct {
	cfg   *config.Config
	money *currency.Formatter
	svcs  *appsvcs.Services
	close func()
}

// output holds the rendering flags shared by all subcommands.
type output struct {
	style string
	width int
}

func (o *output) setFlags(f *flag.FlagSet) {
	f.StringVar(&o.style, "style", "", "glamour style (dark, light, notty, ...); detected from the terminal when empty")
	f.IntVar(&o.width, "width", 100, "word wrap width, 0 disables wrapping")
}

func (o *output) print(md string) error {
	out, err := markdown.ToTerminal(md, o.style, o.width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, out)
	return err
}

// owner holds the -owner flag.
type owner struct {
	raw string
}

func (o *owner) setFlags(f *flag.FlagSet) {
	f.StringVar(&o.raw, "owner", "", "owner id (defaults to DEFAULT_OWNER_ID)")
}

func (o *owner) resolve(cfg *config.Config) (uuid.UUID, error) {
	if o.raw == "" {
		return cfg.OwnerID(), nil
	}
	id, err := uuid.Parse(o.raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid -owner: %w", err)
	}
	return id, nil
}

// openEnv loads configuration and connects to the database. withDB false
// skips the database for commands that only need the advisor.
func openEnv(ctx context.Context, withDB bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.NewWithWriter(cfg, os.Stderr)

	money, err := currency.NewFormatter(cfg.Currency)
	if err != nil {
		return nil, err
	}
	adv, analyzer, err := advisor.New(ctx, cfg, money, log)
	if err != nil {
		return nil, err
	}

	a := &app.Application{
		Config:        cfg,
		Logger:        log,
		Money:         money,
		Advisor:       adv,
		ImageAnalyzer: analyzer,
	}
	closeFn := func() {}
	if withDB {
		pool, err := database.NewPool(ctx, cfg.DefinitionDatabaseURL, log)
		if err != nil {
			return nil, err
		}
		a.Db = pool
		closeFn = pool.Close
	}

	return &env{cfg: cfg, money: money, svcs: appsvcs.New(a), close: closeFn}, nil
}
