package finance_mock

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/zeebo/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockSqliteDatabase opens a fresh shared in-memory database into db.
func MockSqliteDatabase(db *gorm.DB) SetupFunc {
	return func(t *testing.T) func() error {
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		opened, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		assert.Nil(t, err)

		*db = *opened

		return func() error {
			sqlDB, err := opened.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
	}
}
