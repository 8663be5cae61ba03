package finance_service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sandoapp/finance_service/auth"
	"github.com/sandoapp/finance_service/configs"
	"github.com/sandoapp/finance_service/finance_model"
)

type MigrationHandler func() error

func NewMigrationHandler(db *gorm.DB) MigrationHandler {
	return func() error {
		log.Println("migrating finance service")
		return db.AutoMigrate(
			&finance_model.User{},
			&finance_model.OAuthAccount{},
			&finance_model.AccessToken{},

			&finance_model.Expense{},
			&finance_model.ExpenseLog{},
			&finance_model.Invoice{},
			&finance_model.InvoiceLog{},
			&finance_model.Note{},
		)
	}
}

type SeedHandler func() error

// NewSeedHandler creates the configured superuser if it does not
// exist yet.
func NewSeedHandler(db *gorm.DB, cfg *configs.AppConfig) SeedHandler {
	return func() error {
		if cfg.SuperuserEmail == "" {
			return nil
		}
		log.Println("seeding finance service superuser")

		hash, err := auth.NewPasswordHelper().Hash(cfg.SuperuserPassword)
		if err != nil {
			return err
		}

		superuser := &finance_model.User{
			ID:             uuid.New(),
			Email:          cfg.SuperuserEmail,
			HashedPassword: hash,
			IsActive:       true,
			IsVerified:     true,
			IsSuperuser:    true,
		}
		return db.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).
			Create(superuser).Error
	}
}
