package invoice

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/filestore"
	"github.com/sandoapp/finance_service/finance_core"
)

type invoiceServiceImpl struct {
	db    *gorm.DB
	auth  finance_core.Authorization
	files filestore.FileStore
}

func NewInvoiceService(
	db *gorm.DB,
	auth finance_core.Authorization,
	files filestore.FileStore,
) *invoiceServiceImpl {
	return &invoiceServiceImpl{
		db:    db,
		auth:  auth,
		files: files,
	}
}

func (i *invoiceServiceImpl) Register(rg *gin.RouterGroup) {
	rg.GET("", i.InvoiceList)
	rg.GET("/first", i.InvoiceFirst)
	rg.GET("/:invoice_id", i.InvoiceGet)
	rg.POST("", i.InvoiceCreate)
	rg.PUT("/:invoice_id", i.InvoiceUpdate)
	rg.DELETE("/:invoice_id", i.InvoiceDelete)
	rg.POST("/:invoice_id/delete-attachment", i.InvoiceDeleteAttachment)
}

type invoicePayload struct {
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
