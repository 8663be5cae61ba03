package invoice_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_mock"
	"github.com/sandoapp/finance_service/finance_model"
	"github.com/sandoapp/finance_service/invoice"
)

func TestInvoiceService(t *testing.T) {
	var db gorm.DB

	owner := finance_model.User{Email: "inv-owner@example.com"}
	other := finance_model.User{Email: "inv-other@example.com"}

	var migrate finance_mock.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&finance_model.User{},
			&finance_model.Invoice{},
			&finance_model.InvoiceLog{},
		)
		assert.Nil(t, err)

		return nil
	}

	finance_mock.Suite(t, "testing invoice service",
		finance_mock.SetupListFunc{
			finance_mock.MockSqliteDatabase(&db),
			migrate,
			finance_mock.PopulateUser(&db, &owner),
			finance_mock.PopulateUser(&db, &other),
		},
		func(t *testing.T) {
			authMock := &finance_mock.AuthorizationMock{
				Identity: &finance_mock.IdentityMock{ID: owner.ID},
			}
			store := finance_mock.NewMemoryFileStore()

			router := gin.New()
			srv := invoice.NewInvoiceService(&db, authMock, store)
			srv.Register(router.Group("/invoices"))

			var created finance_model.Invoice

			t.Run("create and fetch", func(t *testing.T) {
				rec := finance_mock.DoMultipart(router, http.MethodPost, "/invoices",
					map[string]string{
						"title":         "consulting march",
						"amount":        "1500",
						"currency_code": "EUR",
					}, nil)
				assert.Equal(t, http.StatusOK, rec.Code)

				err := json.Unmarshal(rec.Body.Bytes(), &created)
				assert.Nil(t, err)
				assert.Equal(t, owner.ID, created.UserID)

				rec = finance_mock.DoJSON(router, http.MethodGet,
					fmt.Sprintf("/invoices/%d", created.ID), nil)
				assert.Equal(t, http.StatusOK, rec.Code)

				rec = finance_mock.DoJSON(router, http.MethodGet, "/invoices/first", nil)
				assert.Equal(t, http.StatusOK, rec.Code)
			})

			t.Run("cross owner access is not found", func(t *testing.T) {
				authMock.Identity.ID = other.ID
				defer func() { authMock.Identity.ID = owner.ID }()

				rec := finance_mock.DoJSON(router, http.MethodGet,
					fmt.Sprintf("/invoices/%d", created.ID), nil)
				assert.Equal(t, http.StatusNotFound, rec.Code)

				rec = finance_mock.DoJSON(router, http.MethodDelete,
					fmt.Sprintf("/invoices/%d", created.ID), nil)
				assert.Equal(t, http.StatusNotFound, rec.Code)
			})

			t.Run("update re-stamps owner", func(t *testing.T) {
				rec := finance_mock.DoMultipart(router, http.MethodPut,
					fmt.Sprintf("/invoices/%d", created.ID),
					map[string]string{
						"title":         "consulting march, revised",
						"amount":        "1600",
						"currency_code": "EUR",
						"user_id":       other.ID.String(),
					}, nil)
				assert.Equal(t, http.StatusOK, rec.Code)

				var row finance_model.Invoice
				err := db.First(&row, created.ID).Error
				assert.Nil(t, err)
				assert.Equal(t, owner.ID, row.UserID)
				assert.Equal(t, 1600.0, row.Amount)
			})

			t.Run("delete removes logs with the invoice", func(t *testing.T) {
				err := db.Create(&finance_model.InvoiceLog{
					Title:     "sent to client",
					UserID:    owner.ID,
					InvoiceID: created.ID,
				}).Error
				assert.Nil(t, err)

				rec := finance_mock.DoJSON(router, http.MethodDelete,
					fmt.Sprintf("/invoices/%d", created.ID), nil)
				assert.Equal(t, http.StatusOK, rec.Code)

				var rows int64
				err = db.Model(&finance_model.InvoiceLog{}).
					Where("invoice_id = ?", created.ID).
					Count(&rows).Error
				assert.Nil(t, err)
				assert.Equal(t, int64(0), rows)
			})
		},
	)
}
