package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

// loginPayload follows the oauth2 password grant form: the username
// field carries the email address.
type loginPayload struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (a *authServiceImpl) Login(c *gin.Context) {
	var pay loginPayload
	if err := c.ShouldBind(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	db := a.db.WithContext(c.Request.Context())

	var user finance_model.User
	err := db.
		Where("email = ?", strings.ToLower(pay.Username)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.BadRequest("LOGIN_BAD_CREDENTIALS"))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	if !a.pw.Verify(user.HashedPassword, pay.Password) || !user.IsActive {
		finance_core.AbortWithError(c, finance_core.BadRequest("LOGIN_BAD_CREDENTIALS"))
		return
	}

	token, err := a.issueAccessToken(db, user.ID)
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token.Token,
		"token_type":   "bearer",
	})
}

func (a *authServiceImpl) Logout(c *gin.Context) {
	identity := a.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	raw := bearerToken(c.Request.Header)
	err := a.db.
		WithContext(c.Request.Context()).
		Where("token = ?", raw).
		Delete(&finance_model.AccessToken{}).Error
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
