package finance_service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/auth"
	"github.com/sandoapp/finance_service/configs"
	"github.com/sandoapp/finance_service/expense"
	"github.com/sandoapp/finance_service/expense_log"
	"github.com/sandoapp/finance_service/filestore"
	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/invoice"
	"github.com/sandoapp/finance_service/invoice_log"
	"github.com/sandoapp/finance_service/mailer"
	"github.com/sandoapp/finance_service/note"
	"github.com/sandoapp/finance_service/report"
	"github.com/sandoapp/finance_service/ws"
)

type RegisterHandler func()

func NewRegister(
	db *gorm.DB,
	cfg *configs.AppConfig,
	authz finance_core.Authorization,
	router *gin.Engine,
	files filestore.FileStore,
	mail mailer.Mailer,
	manager *ws.ConnManager,
) RegisterHandler {
	return func() {
		router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Healthcheck"})
		})

		authService := auth.NewAuthService(db, cfg, mail, authz)
		authService.Register(router.Group("/auth"))
		authService.RegisterUsers(router.Group("/users"))

		expense.NewExpenseService(db, authz, files).Register(router.Group("/expenses"))
		invoice.NewInvoiceService(db, authz, files).Register(router.Group("/invoices"))
		expense_log.NewExpenseLogService(db, authz).Register(router.Group("/expense_logs"))
		invoice_log.NewInvoiceLogService(db, authz).Register(router.Group("/invoice_logs"))
		note.NewNoteService(db, authz).Register(router.Group("/notes"))
		report.NewReportService(db, authz).Register(router.Group("/reports"))

		ws.NewWsService(manager).Register(router)
	}
}
