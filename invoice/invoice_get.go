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

func (i *invoiceServiceImpl) InvoiceGet(c *gin.Context) {
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

	var inv finance_model.Invoice
	err = i.db.
		WithContext(c.Request.Context()).
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

	c.JSON(http.StatusOK, &inv)
}

func (i *invoiceServiceImpl) InvoiceFirst(c *gin.Context) {
	identity := i.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	var inv finance_model.Invoice
	err := i.db.
		WithContext(c.Request.Context()).
		Where("user_id = ?", identity.UserID()).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"user_id": "no invoices found"}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &inv)
}
