package invoice_log

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

type invoiceLogServiceImpl struct {
	db   *gorm.DB
	auth finance_core.Authorization
}

func NewInvoiceLogService(db *gorm.DB, auth finance_core.Authorization) *invoiceLogServiceImpl {
	return &invoiceLogServiceImpl{
		db:   db,
		auth: auth,
	}
}

func (i *invoiceLogServiceImpl) Register(rg *gin.RouterGroup) {
	rg.GET("", i.InvoiceLogList)
	rg.GET("/:invoice_log_id", i.InvoiceLogGet)
	rg.POST("", i.InvoiceLogCreate)
	rg.DELETE("/:invoice_log_id", i.InvoiceLogDelete)
}

type invoiceLogPayload struct {
	Title        string  `json:"title" binding:"required,max=64"`
	Description  string  `json:"description" binding:"max=200"`
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currency_code" binding:"max=10"`
	InvoiceID    uint    `json:"invoice_id" binding:"required"`
}

func (i *invoiceLogServiceImpl) InvoiceLogCreate(c *gin.Context) {
	identity := i.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	var pay invoiceLogPayload
	if err := c.ShouldBindJSON(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	db := i.db.WithContext(c.Request.Context())

	var parent finance_model.Invoice
	err := db.
		Where("id = ?", pay.InvoiceID).
		Where("user_id = ?", identity.UserID()).
		First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"invoice_id": pay.InvoiceID}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	logRow := finance_model.InvoiceLog{
		Title:        pay.Title,
		Description:  pay.Description,
		Amount:       pay.Amount,
		CurrencyCode: pay.CurrencyCode,
		UserID:       identity.UserID(),
		InvoiceID:    parent.ID,
	}
	if err := db.Create(&logRow).Error; err != nil {
		finance_core.AbortWithError(c, finance_core.CreateFailed(map[string]any{"title": pay.Title}))
		return
	}

	c.JSON(http.StatusOK, &logRow)
}

func (i *invoiceLogServiceImpl) InvoiceLogList(c *gin.Context) {
	identity := i.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	invoiceID, err := strconv.Atoi(c.Query("invoice_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("invoice_id query param must be an integer"))
		return
	}

	items := []*finance_model.InvoiceLog{}
	err = i.db.
		WithContext(c.Request.Context()).
		Where("user_id = ?", identity.UserID()).
		Where("invoice_id = ?", invoiceID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (i *invoiceLogServiceImpl) InvoiceLogGet(c *gin.Context) {
	identity := i.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("invoice_log_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("invoice_log_id must be an integer"))
		return
	}

	var logRow finance_model.InvoiceLog
	err = i.db.
		WithContext(c.Request.Context()).
		Where("id = ?", id).
		Where("user_id = ?", identity.UserID()).
		First(&logRow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"invoice_log_id": id}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &logRow)
}

func (i *invoiceLogServiceImpl) InvoiceLogDelete(c *gin.Context) {
	identity := i.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("invoice_log_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("invoice_log_id must be an integer"))
		return
	}

	db := i.db.WithContext(c.Request.Context())

	var logRow finance_model.InvoiceLog
	err = db.
		Where("id = ?", id).
		Where("user_id = ?", identity.UserID()).
		First(&logRow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"invoice_log_id": id}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	if err := db.Delete(&logRow).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
