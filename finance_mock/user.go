package finance_mock

import (
	"testing"

	"github.com/google/uuid"
	"github.com/zeebo/assert"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_model"
)

// PopulateUser inserts user as an active account, assigning an id
// when none is set.
func PopulateUser(db *gorm.DB, user *finance_model.User) SetupFunc {
	return func(t *testing.T) func() error {
		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		user.IsActive = true

		err := db.Create(user).Error
		assert.Nil(t, err)

		return nil
	}
}
