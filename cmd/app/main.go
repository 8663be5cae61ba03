package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service"
	"github.com/sandoapp/finance_service/auth"
	"github.com/sandoapp/finance_service/configs"
	"github.com/sandoapp/finance_service/db_connect"
	"github.com/sandoapp/finance_service/filestore"
	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/mailer"
)

func NewDatabase(cfg *configs.AppConfig) (*gorm.DB, error) {
	return db_connect.NewProductionDatabase("finance_service", &cfg.Database)
}

func NewAuthorization(cfg *configs.AppConfig, db *gorm.DB) finance_core.Authorization {
	return auth.NewDBAuthorization(db, cfg.TokenLifetime)
}

func NewFileStore(cfg *configs.AppConfig) (filestore.FileStore, error) {
	return filestore.NewS3Store(context.Background(), &cfg.Storage)
}

func NewMailer(cfg *configs.AppConfig) mailer.Mailer {
	if cfg.Mail.BrevoAPIKey == "" {
		return mailer.NewLogMailer()
	}
	return mailer.NewBrevoMailer(&cfg.Mail)
}

func withCors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Referer, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "HEAD,PATCH,OPTIONS,GET,POST,PUT,DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func NewRouter() *gin.Engine {
	router := gin.Default()
	router.Use(withCors())
	return router
}

type App struct {
	Run func() error
}

func NewApp(
	cfg *configs.AppConfig,
	router *gin.Engine,
	register finance_service.RegisterHandler,
	migrate finance_service.MigrationHandler,
	seed finance_service.SeedHandler,
) *App {
	return &App{
		Run: func() error {
			if err := migrate(); err != nil {
				return err
			}
			if err := seed(); err != nil {
				return err
			}

			register()

			listen := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
			log.Println("listening on", listen)

			return router.Run(listen)
		},
	}
}

func main() {
	app, err := InitializeApp()
	if err != nil {
		panic(err)
	}

	err = app.Run()
	if err != nil {
		panic(err)
	}
}
