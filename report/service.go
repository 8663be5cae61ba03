package report

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
)

type reportServiceImpl struct {
	db   *gorm.DB
	auth finance_core.Authorization
}

func NewReportService(db *gorm.DB, auth finance_core.Authorization) *reportServiceImpl {
	return &reportServiceImpl{
		db:   db,
		auth: auth,
	}
}

func (r *reportServiceImpl) Register(rg *gin.RouterGroup) {
	rg.GET("/summary", r.Summary)
}
