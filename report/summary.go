package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

type amountRow struct {
	CurrencyCode string
	Amount       float64
}

type SummaryResponse struct {
	ExpenseTotals map[string]string `json:"expense_totals"`
	InvoiceTotals map[string]string `json:"invoice_totals"`
	Net           map[string]string `json:"net"`
}

// Summary totals the caller's expenses and invoices per currency.
// Sums run on decimals so repeated float amounts do not drift.
func (r *reportServiceImpl) Summary(c *gin.Context) {
	identity := r.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	db := r.db.WithContext(c.Request.Context())

	expenses, err := sumByCurrency(db, &finance_model.Expense{}, identity.UserID().String())
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	invoices, err := sumByCurrency(db, &finance_model.Invoice{}, identity.UserID().String())
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	result := &SummaryResponse{
		ExpenseTotals: map[string]string{},
		InvoiceTotals: map[string]string{},
		Net:           map[string]string{},
	}

	net := map[string]decimal.Decimal{}
	for code, total := range expenses {
		result.ExpenseTotals[code] = total.String()
		net[code] = net[code].Sub(total)
	}
	for code, total := range invoices {
		result.InvoiceTotals[code] = total.String()
		net[code] = net[code].Add(total)
	}
	for code, total := range net {
		result.Net[code] = total.String()
	}

	c.JSON(http.StatusOK, result)
}

func sumByCurrency(db *gorm.DB, model any, userID string) (map[string]decimal.Decimal, error) {
	rows := []*amountRow{}
	err := db.
		Model(model).
		Select("currency_code", "amount").
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := map[string]decimal.Decimal{}
	for _, row := range rows {
		totals[row.CurrencyCode] = totals[row.CurrencyCode].Add(decimal.NewFromFloat(row.Amount))
	}
	return totals, nil
}
