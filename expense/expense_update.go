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

// ExpenseUpdate overwrites the whitelisted fields only. The owner is
// re-stamped to the caller, so an injected user_id in the form can
// never reassign the row.
func (e *expenseServiceImpl) ExpenseUpdate(c *gin.Context) {
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

	var pay expensePayload
	if err := c.ShouldBind(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	db := e.db.WithContext(c.Request.Context())

	var exp finance_model.Expense
	err = db.
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

	exp.Title = pay.Title
	exp.Description = pay.Description
	exp.Amount = pay.Amount
	exp.CurrencyCode = pay.CurrencyCode
	exp.UserID = identity.UserID()

	if exp.Attachment == "" {
		if header, ferr := c.FormFile("attachment"); ferr == nil {
			location, uerr := uploadAttachment(c, e.files, identity.UserID(), header)
			if uerr != nil {
				finance_core.AbortWithError(c, uerr)
				return
			}
			exp.Attachment = location
		}
	}

	if err := db.Save(&exp).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &exp)
}
