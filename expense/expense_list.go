package expense

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

func (e *expenseServiceImpl) ExpenseList(c *gin.Context) {
	identity := e.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	filter := finance_core.PageFilterFromQuery(c)
	db := e.db.WithContext(c.Request.Context())

	createQuery := func() *gorm.DB {
		query := db.
			Model(&finance_model.Expense{}).
			Where("user_id = ?", identity.UserID())

		if q := c.Query("q"); q != "" {
			query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q)+"%")
		}

		return query
	}

	items := []*finance_model.Expense{}
	info, err := finance_core.Paginate(createQuery, "id desc", filter, &items)
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"page_info": info,
	})
}
