package invoice

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

func (i *invoiceServiceImpl) InvoiceCreate(c *gin.Context) {
	identity := i.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	var pay invoicePayload
	if err := c.ShouldBind(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	inv := finance_model.Invoice{
		Title:        pay.Title,
		Description:  pay.Description,
		Amount:       pay.Amount,
		CurrencyCode: pay.CurrencyCode,
		UserID:       identity.UserID(),
	}

	if header, err := c.FormFile("attachment"); err == nil {
		location, uerr := uploadAttachment(c, i.files, identity.UserID(), header)
		if uerr != nil {
			finance_core.AbortWithError(c, uerr)
			return
		}
		inv.Attachment = location
	}

	err := i.db.
		WithContext(c.Request.Context()).
		Create(&inv).Error
	if err != nil {
		finance_core.AbortWithError(c, finance_core.CreateFailed(map[string]any{"title": pay.Title}))
		return
	}

	c.JSON(http.StatusOK, &inv)
}
