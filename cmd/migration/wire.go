//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/sandoapp/finance_service"
	"github.com/sandoapp/finance_service/configs"
)

func InitializeMigration() (*Migration, error) {
	wire.Build(
		configs.NewProductionConfig,
		NewDatabase,
		finance_service.NewMigrationHandler,
		finance_service.NewSeedHandler,
		NewMigration,
	)

	return &Migration{}, nil
}
