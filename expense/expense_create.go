package expense

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

// ExpenseCreate accepts a multipart form so the attachment can ride
// along with the fields. The blob is uploaded before the row is
// committed.
func (e *expenseServiceImpl) ExpenseCreate(c *gin.Context) {
	identity := e.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	var pay expensePayload
	if err := c.ShouldBind(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	exp := finance_model.Expense{
		Title:        pay.Title,
		Description:  pay.Description,
		Amount:       pay.Amount,
		CurrencyCode: pay.CurrencyCode,
		UserID:       identity.UserID(),
	}

	if header, err := c.FormFile("attachment"); err == nil {
		location, uerr := uploadAttachment(c, e.files, identity.UserID(), header)
		if uerr != nil {
			finance_core.AbortWithError(c, uerr)
			return
		}
		exp.Attachment = location
	}

	err := e.db.
		WithContext(c.Request.Context()).
		Create(&exp).Error
	if err != nil {
		finance_core.AbortWithError(c, finance_core.CreateFailed(map[string]any{"title": pay.Title}))
		return
	}

	c.JSON(http.StatusOK, &exp)
}
