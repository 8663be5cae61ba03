package expense_test

import (
	"fmt"
	"net/http"
	"testing"

	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/expense"
	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_mock"
	"github.com/sandoapp/finance_service/finance_model"
)

type listResponse struct {
	Items    []*finance_model.Expense `json:"items"`
	PageInfo *finance_core.PageInfo   `json:"page_info"`
}

func TestExpenseList(t *testing.T) {
	var db gorm.DB

	owner := finance_model.User{Email: "owner@example.com"}
	other := finance_model.User{Email: "other@example.com"}

	var migrate finance_mock.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&finance_model.User{},
			&finance_model.Expense{},
			&finance_model.ExpenseLog{},
		)
		assert.Nil(t, err)

		return nil
	}

	var seed finance_mock.SetupFunc = func(t *testing.T) func() error {
		for i := 1; i <= 5; i++ {
			err := db.Create(&finance_model.Expense{
				Title:        fmt.Sprintf("groceries %d", i),
				Amount:       float64(i) * 10,
				CurrencyCode: "EUR",
				UserID:       owner.ID,
			}).Error
			assert.Nil(t, err)
		}

		err := db.Create(&finance_model.Expense{
			Title:        "someone elses rent",
			Amount:       500,
			CurrencyCode: "EUR",
			UserID:       other.ID,
		}).Error
		assert.Nil(t, err)

		return nil
	}

	finance_mock.Suite(t, "testing expense list",
		finance_mock.SetupListFunc{
			finance_mock.MockSqliteDatabase(&db),
			migrate,
			finance_mock.PopulateUser(&db, &owner),
			finance_mock.PopulateUser(&db, &other),
			seed,
		},
		func(t *testing.T) {
			authMock := &finance_mock.AuthorizationMock{
				Identity: &finance_mock.IdentityMock{ID: owner.ID},
			}

			router := gin.New()
			srv := expense.NewExpenseService(&db, authMock, finance_mock.NewMemoryFileStore())
			srv.Register(router.Group("/expenses"))

			decode := func(t *testing.T, raw []byte) *listResponse {
				var body listResponse
				err := json.Unmarshal(raw, &body)
				assert.Nil(t, err)
				return &body
			}

			t.Run("only the callers rows, newest first", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodGet, "/expenses?size=10", nil)
				assert.Equal(t, http.StatusOK, rec.Code)

				body := decode(t, rec.Body.Bytes())
				assert.Len(t, body.Items, 5)
				assert.Equal(t, int64(5), body.PageInfo.TotalItems)

				for idx := 1; idx < len(body.Items); idx++ {
					assert.Greater(t, body.Items[idx-1].ID, body.Items[idx].ID)
				}
				for _, item := range body.Items {
					assert.Equal(t, owner.ID, item.UserID)
				}
			})

			t.Run("new row leads the next listing", func(t *testing.T) {
				err := db.Create(&finance_model.Expense{
					Title:        "latest purchase",
					Amount:       7,
					CurrencyCode: "EUR",
					UserID:       owner.ID,
				}).Error
				assert.Nil(t, err)

				rec := finance_mock.DoJSON(router, http.MethodGet, "/expenses?size=10", nil)
				body := decode(t, rec.Body.Bytes())
				assert.Equal(t, "latest purchase", body.Items[0].Title)

				err = db.Delete(&finance_model.Expense{}, body.Items[0].ID).Error
				assert.Nil(t, err)
			})

			t.Run("pagination over five rows with page size two", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodGet, "/expenses?page=1&size=2", nil)
				body := decode(t, rec.Body.Bytes())
				assert.Len(t, body.Items, 2)
				assert.Equal(t, int64(3), body.PageInfo.TotalPage)
				assert.True(t, body.PageInfo.HasNext)

				rec = finance_mock.DoJSON(router, http.MethodGet, "/expenses?page=3&size=2", nil)
				body = decode(t, rec.Body.Bytes())
				assert.Len(t, body.Items, 1)
				assert.False(t, body.PageInfo.HasNext)

				rec = finance_mock.DoJSON(router, http.MethodGet, "/expenses?page=4&size=2", nil)
				body = decode(t, rec.Body.Bytes())
				assert.Len(t, body.Items, 0)
				assert.False(t, body.PageInfo.HasNext)
			})

			t.Run("case-insensitive title filter", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodGet, "/expenses?q=GROCERIES&size=10", nil)
				body := decode(t, rec.Body.Bytes())
				assert.Len(t, body.Items, 5)

				rec = finance_mock.DoJSON(router, http.MethodGet, "/expenses?q=rent&size=10", nil)
				body = decode(t, rec.Body.Bytes())
				assert.Len(t, body.Items, 0)
			})

			t.Run("other owner sees only their row", func(t *testing.T) {
				authMock.Identity.ID = other.ID
				defer func() { authMock.Identity.ID = owner.ID }()

				rec := finance_mock.DoJSON(router, http.MethodGet, "/expenses?size=10", nil)
				body := decode(t, rec.Body.Bytes())
				assert.Len(t, body.Items, 1)
				assert.Equal(t, "someone elses rent", body.Items[0].Title)
			})
		},
	)
}
