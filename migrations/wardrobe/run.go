package main

import (
	"github.com/wardrobecapital/wardrobe/migrations/wardrobe/schema"
	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.RunMigrations(cfg.DefinitionDatabaseURL, schema.VersionTable, schema.FS); err != nil {
		panic(err)
	}
}
