//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/sandoapp/finance_service"
	"github.com/sandoapp/finance_service/configs"
	"github.com/sandoapp/finance_service/ws"
)

func InitializeApp() (*App, error) {
	wire.Build(
		configs.NewProductionConfig,
		NewRouter,
		NewDatabase,
		NewAuthorization,
		NewFileStore,
		NewMailer,
		ws.NewConnManager,
		finance_service.NewRegister,
		finance_service.NewMigrationHandler,
		finance_service.NewSeedHandler,
		NewApp,
	)

	return &App{}, nil
}
