package expense

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

func (e *expenseServiceImpl) ExpenseGet(c *gin.Context) {
	identity := e.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("expense_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("expense_id must be an integer"))
		return
	}

	var exp finance_model.Expense
	err = e.db.
		WithContext(c.Request.Context()).
		Where("id = ?", id).
		Where("user_id = ?", identity.UserID()).
		First(&exp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"expense_id": id}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &exp)
}

// ExpenseFirst returns some expense of the caller, order unspecified.
func (e *expenseServiceImpl) ExpenseFirst(c *gin.Context) {
	identity := e.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	var exp finance_model.Expense
	err := e.db.
		WithContext(c.Request.Context()).
		Where("user_id = ?", identity.UserID()).
		First(&exp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"user_id": "no expenses found"}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &exp)
}
