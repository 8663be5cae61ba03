package invoice

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/filestore"
	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

func (i *invoiceServiceImpl) InvoiceDelete(c *gin.Context) {
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

	if inv.Attachment != "" {
		key := filestore.KeyFromLocation(inv.Attachment)
		if err := i.files.Delete(c.Request.Context(), key); err != nil {
			slog.Error("deleting invoice attachment blob", "key", key, "err", err)
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("invoice_id = ?", inv.ID).
			Delete(&finance_model.InvoiceLog{}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&inv).Error
	})
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (i *invoiceServiceImpl) InvoiceDeleteAttachment(c *gin.Context) {
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

	if inv.Attachment == "" {
		c.JSON(http.StatusOK, gin.H{"deleted": true})
		return
	}

	key := filestore.KeyFromLocation(inv.Attachment)
	if err := i.files.Delete(c.Request.Context(), key); err != nil {
		slog.Error("deleting invoice attachment blob", "key", key, "err", err)
	}

	inv.Attachment = ""
	if err := db.Save(&inv).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
