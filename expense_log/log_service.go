package expense_log

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

type expenseLogServiceImpl struct {
	db   *gorm.DB
	auth finance_core.Authorization
}

func NewExpenseLogService(db *gorm.DB, auth finance_core.Authorization) *expenseLogServiceImpl {
	return &expenseLogServiceImpl{
		db:   db,
		auth: auth,
	}
}

func (e *expenseLogServiceImpl) Register(rg *gin.RouterGroup) {
	rg.GET("", e.ExpenseLogList)
	rg.GET("/:expense_log_id", e.ExpenseLogGet)
	rg.POST("", e.ExpenseLogCreate)
	rg.DELETE("/:expense_log_id", e.ExpenseLogDelete)
}

type expenseLogPayload struct {
	Title        string  `json:"title" binding:"required,max=64"`
	Description  string  `json:"description" binding:"max=200"`
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currency_code" binding:"max=10"`
	ExpenseID    uint    `json:"expense_id" binding:"required"`
}

// ExpenseLogCreate refuses parents the caller does not own, with the
// same NotFound a missing parent would produce.
func (e *expenseLogServiceImpl) ExpenseLogCreate(c *gin.Context) {
	identity := e.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	var pay expenseLogPayload
	if err := c.ShouldBindJSON(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	db := e.db.WithContext(c.Request.Context())

	var parent finance_model.Expense
	err := db.
		Where("id = ?", pay.ExpenseID).
		Where("user_id = ?", identity.UserID()).
		First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"expense_id": pay.ExpenseID}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	logRow := finance_model.ExpenseLog{
		Title:        pay.Title,
		Description:  pay.Description,
		Amount:       pay.Amount,
		CurrencyCode: pay.CurrencyCode,
		UserID:       identity.UserID(),
		ExpenseID:    parent.ID,
	}
	if err := db.Create(&logRow).Error; err != nil {
		finance_core.AbortWithError(c, finance_core.CreateFailed(map[string]any{"title": pay.Title}))
		return
	}

	c.JSON(http.StatusOK, &logRow)
}

func (e *expenseLogServiceImpl) ExpenseLogList(c *gin.Context) {
	identity := e.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	expenseID, err := strconv.Atoi(c.Query("expense_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("expense_id query param must be an integer"))
		return
	}

	items := []*finance_model.ExpenseLog{}
	err = e.db.
		WithContext(c.Request.Context()).
		Where("user_id = ?", identity.UserID()).
		Where("expense_id = ?", expenseID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (e *expenseLogServiceImpl) ExpenseLogGet(c *gin.Context) {
	identity := e.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("expense_log_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("expense_log_id must be an integer"))
		return
	}

	var logRow finance_model.ExpenseLog
	err = e.db.
		WithContext(c.Request.Context()).
		Where("id = ?", id).
		Where("user_id = ?", identity.UserID()).
		First(&logRow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"expense_log_id": id}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &logRow)
}

func (e *expenseLogServiceImpl) ExpenseLogDelete(c *gin.Context) {
	identity := e.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("expense_log_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("expense_log_id must be an integer"))
		return
	}

	db := e.db.WithContext(c.Request.Context())

	var logRow finance_model.ExpenseLog
	err = db.
		Where("id = ?", id).
		Where("user_id = ?", identity.UserID()).
		First(&logRow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"expense_log_id": id}))
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
