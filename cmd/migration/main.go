package main

import (
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service"
	"github.com/sandoapp/finance_service/configs"
	"github.com/sandoapp/finance_service/db_connect"
)

func NewDatabase(cfg *configs.AppConfig) (*gorm.DB, error) {
	return db_connect.NewProductionDatabase("finance_migration", &cfg.Database)
}

type Migration struct {
	Run func() error
}

func NewMigration(
	migrate finance_service.MigrationHandler,
	seed finance_service.SeedHandler,
) *Migration {
	return &Migration{
		Run: func() error {
			if err := migrate(); err != nil {
				return err
			}
			return seed()
		},
	}
}

func main() {
	mig, err := InitializeMigration()
	if err != nil {
		panic(err)
	}

	err = mig.Run()
	if err != nil {
		panic(err)
	}
}
