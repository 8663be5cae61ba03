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

func (a *authServiceImpl) Me(c *gin.Context) {
	identity := a.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	var user finance_model.User
	err := a.db.
		WithContext(c.Request.Context()).
		Where("id = ?", identity.UserID()).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"user_id": identity.UserID()}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &user)
}

type updateMePayload struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Username *string `json:"username" binding:"omitempty,max=64"`
}

func (a *authServiceImpl) UpdateMe(c *gin.Context) {
	identity := a.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	var pay updateMePayload
	if err := c.ShouldBindJSON(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	db := a.db.WithContext(c.Request.Context())

	var user finance_model.User
	err := db.
		Where("id = ?", identity.UserID()).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"user_id": identity.UserID()}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	if pay.Email != nil {
		user.Email = strings.ToLower(*pay.Email)
		user.IsVerified = false
	}
	if pay.Username != nil {
		user.Username = *pay.Username
	}
	if pay.Password != nil {
		hash, err := a.pw.Hash(*pay.Password)
		if err != nil {
			finance_core.AbortWithError(c, err)
			return
		}
		user.HashedPassword = hash
	}

	if err := db.Save(&user).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &user)
}
