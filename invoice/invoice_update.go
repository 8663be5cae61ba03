package invoice

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

func (i *invoiceServiceImpl) InvoiceUpdate(c *gin.Context) {
	identity := i.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("invoice_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("invoice_id must be an integer"))
		return
	}

	var pay invoicePayload
	if err := c.ShouldBind(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	db := i.db.WithContext(c.Request.Context())

	var inv finance_model.Invoice
	err = db.
		Where("id = ?", id).
		Where("user_id = ?", identity.UserID()).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"invoice_id": id}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	inv.Title = pay.Title
	inv.Description = pay.Description
	inv.Amount = pay.Amount
	inv.CurrencyCode = pay.CurrencyCode
	inv.UserID = identity.UserID()

	if inv.Attachment == "" {
		if header, ferr := c.FormFile("attachment"); ferr == nil {
			location, uerr := uploadAttachment(c, i.files, identity.UserID(), header)
			if uerr != nil {
				finance_core.AbortWithError(c, uerr)
				return
			}
			inv.Attachment = location
		}
	}

	if err := db.Save(&inv).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &inv)
}
