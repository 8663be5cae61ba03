package report_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_mock"
	"github.com/sandoapp/finance_service/finance_model"
	"github.com/sandoapp/finance_service/report"
)

func TestSummary(t *testing.T) {
	var db gorm.DB

	owner := finance_model.User{Email: "report-owner@example.com"}
	other := finance_model.User{Email: "report-other@example.com"}

	var migrate finance_mock.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&finance_model.User{},
			&finance_model.Expense{},
			&finance_model.Invoice{},
		)
		assert.Nil(t, err)

		return nil
	}

	var seed finance_mock.SetupFunc = func(t *testing.T) func() error {
		rows := []*finance_model.Expense{
			{Title: "rent", Amount: 0.1, CurrencyCode: "EUR", UserID: owner.ID},
			{Title: "food", Amount: 0.2, CurrencyCode: "EUR", UserID: owner.ID},
			{Title: "vpn", Amount: 5, CurrencyCode: "USD", UserID: owner.ID},
			{Title: "not mine", Amount: 999, CurrencyCode: "EUR", UserID: other.ID},
		}
		for _, row := range rows {
			err := db.Create(row).Error
			assert.Nil(t, err)
		}

		err := db.Create(&finance_model.Invoice{
			Title:        "client work",
			Amount:       100.3,
			CurrencyCode: "EUR",
			UserID:       owner.ID,
		}).Error
		assert.Nil(t, err)

		return nil
	}

	finance_mock.Suite(t, "testing report summary",
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
			srv := report.NewReportService(&db, authMock)
			srv.Register(router.Group("/reports"))

			rec := finance_mock.DoJSON(router, http.MethodGet, "/reports/summary", nil)
			assert.Equal(t, http.StatusOK, rec.Code)

			var body report.SummaryResponse
			err := json.Unmarshal(rec.Body.Bytes(), &body)
			assert.Nil(t, err)

			// 0.1 + 0.2 must come out exact, not 0.30000000000000004
			assert.Equal(t, "0.3", body.ExpenseTotals["EUR"])
			assert.Equal(t, "5", body.ExpenseTotals["USD"])
			assert.Equal(t, "100.3", body.InvoiceTotals["EUR"])
			assert.Equal(t, "100", body.Net["EUR"])
			assert.Equal(t, "-5", body.Net["USD"])
		},
	)
}
