package note_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_mock"
	"github.com/sandoapp/finance_service/finance_model"
	"github.com/sandoapp/finance_service/note"
)

func TestNoteService(t *testing.T) {
	var db gorm.DB

	var migrate finance_mock.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(&finance_model.Note{})
		assert.Nil(t, err)

		return nil
	}

	finance_mock.Suite(t, "testing note service",
		finance_mock.SetupListFunc{
			finance_mock.MockSqliteDatabase(&db),
			migrate,
		},
		func(t *testing.T) {
			authMock := &finance_mock.AuthorizationMock{
				Identity: &finance_mock.IdentityMock{ID: uuid.New()},
			}

			router := gin.New()
			srv := note.NewNoteService(&db, authMock)
			srv.Register(router.Group("/notes"))

			var created finance_model.Note

			t.Run("create and list", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodPost, "/notes", gin.H{
					"title":   "shared shopping list",
					"content": "milk, bread",
				})
				assert.Equal(t, http.StatusOK, rec.Code)

				err := json.Unmarshal(rec.Body.Bytes(), &created)
				assert.Nil(t, err)
				assert.NotZero(t, created.ID)

				rec = finance_mock.DoJSON(router, http.MethodGet, "/notes?size=10", nil)
				assert.Equal(t, http.StatusOK, rec.Code)
			})

			t.Run("notes are visible to any authenticated user", func(t *testing.T) {
				authMock.Identity.ID = uuid.New()

				rec := finance_mock.DoJSON(router, http.MethodGet,
					fmt.Sprintf("/notes/%d", created.ID), nil)
				assert.Equal(t, http.StatusOK, rec.Code)
			})

			t.Run("update and delete", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodPut,
					fmt.Sprintf("/notes/%d", created.ID), gin.H{
						"title":   "shared shopping list",
						"content": "milk, bread, eggs",
					})
				assert.Equal(t, http.StatusOK, rec.Code)

				var row finance_model.Note
				err := db.First(&row, created.ID).Error
				assert.Nil(t, err)
				assert.Equal(t, "milk, bread, eggs", row.Content)

				rec = finance_mock.DoJSON(router, http.MethodDelete,
					fmt.Sprintf("/notes/%d", created.ID), nil)
				assert.Equal(t, http.StatusOK, rec.Code)

				rec = finance_mock.DoJSON(router, http.MethodGet,
					fmt.Sprintf("/notes/%d", created.ID), nil)
				assert.Equal(t, http.StatusNotFound, rec.Code)
			})

			t.Run("unauthenticated caller is rejected", func(t *testing.T) {
				authMock.Identity.ErrValue = finance_core.Unauthorized("missing bearer token")
				defer func() { authMock.Identity.ErrValue = nil }()

				rec := finance_mock.DoJSON(router, http.MethodGet, "/notes", nil)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			})
		},
	)
}
