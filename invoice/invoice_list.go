package invoice

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

func (i *invoiceServiceImpl) InvoiceList(c *gin.Context) {
	identity := i.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	filter := finance_core.PageFilterFromQuery(c)
	db := i.db.WithContext(c.Request.Context())

	createQuery := func() *gorm.DB {
		query := db.
			Model(&finance_model.Invoice{}).
			Where("user_id = ?", identity.UserID())

		if q := c.Query("q"); q != "" {
			query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q)+"%")
		}

		return query
	}

	items := []*finance_model.Invoice{}
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
