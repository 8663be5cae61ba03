package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

type signUpPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"max=64"`
}

func (a *authServiceImpl) SignUp(c *gin.Context) {
	var pay signUpPayload
	if err := c.ShouldBindJSON(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	email := strings.ToLower(pay.Email)
	db := a.db.WithContext(c.Request.Context())

	var count int64
	err := db.
		Model(&finance_model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}
	if count > 0 {
		finance_core.AbortWithError(c, finance_core.BadRequest("REGISTER_USER_ALREADY_EXISTS"))
		return
	}

	hash, err := a.pw.Hash(pay.Password)
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	user := finance_model.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hash,
		Username:       pay.Username,
		IsActive:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		finance_core.AbortWithError(c, finance_core.CreateFailed(map[string]any{"email": email}))
		return
	}

	c.JSON(http.StatusCreated, &user)
}
