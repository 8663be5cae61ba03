package expense

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/filestore"
	"github.com/sandoapp/finance_service/finance_core"
)

type expenseServiceImpl struct {
	db    *gorm.DB
	auth  finance_core.Authorization
	files filestore.FileStore
}

func NewExpenseService(
	db *gorm.DB,
	auth finance_core.Authorization,
	files filestore.FileStore,
) *expenseServiceImpl {
	return &expenseServiceImpl{
		db:    db,
		auth:  auth,
		files: files,
	}
}

func (e *expenseServiceImpl) Register(rg *gin.RouterGroup) {
	rg.GET("", e.ExpenseList)
	rg.GET("/first", e.ExpenseFirst)
	rg.GET("/:expense_id", e.ExpenseGet)
	rg.POST("", e.ExpenseCreate)
	rg.PUT("/:expense_id", e.ExpenseUpdate)
	rg.DELETE("/:expense_id", e.ExpenseDelete)
	rg.POST("/:expense_id/delete-attachment", e.ExpenseDeleteAttachment)
}

// expensePayload is the whitelisted mutable field set. The owner is
// never part of it.
type expensePayload struct {
	Title        string  `form:"title" binding:"required,max=64"`
	Description  string  `form:"description" binding:"max=200"`
	Amount       float64 `form:"amount"`
	CurrencyCode string  `form:"currency_code" binding:"max=10"`
}

func uploadAttachment(
	c *gin.Context,
	files filestore.FileStore,
	userID uuid.UUID,
	header *multipart.FileHeader,
) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := filestore.ObjectKey(userID, header.Filename)
	return files.Upload(c.Request.Context(), key, src, header.Header.Get("Content-Type"))
}
