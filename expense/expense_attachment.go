package expense

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

// ExpenseDeleteAttachment checks the row exists before touching the
// blob. Calling it on a row without an attachment succeeds with no
// blob call, so a second call is a no-op.
func (e *expenseServiceImpl) ExpenseDeleteAttachment(c *gin.Context) {
	identity := e.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("expense_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("expense_id must be an integer"))
		return
	}

	db := e.db.WithContext(c.Request.Context())

	var exp finance_model.Expense
	err = db.
		Where("id = ?", id).
		Where("user_id = ?", identity.UserID()).
		First(&exp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"expense_id": id}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	if exp.Attachment == "" {
		c.JSON(http.StatusOK, gin.H{"deleted": true})
		return
	}

	key := filestore.KeyFromLocation(exp.Attachment)
	if err := e.files.Delete(c.Request.Context(), key); err != nil {
		slog.Error("deleting expense attachment blob", "key", key, "err", err)
	}

	exp.Attachment = ""
	if err := db.Save(&exp).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
