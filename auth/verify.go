package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
	"github.com/sandoapp/finance_service/mailer"
)

type emailPayload struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestVerifyToken always answers 202 so callers cannot probe which
// emails are registered.
func (a *authServiceImpl) RequestVerifyToken(c *gin.Context) {
	var pay emailPayload
	if err := c.ShouldBindJSON(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	db := a.db.WithContext(c.Request.Context())

	var user finance_model.User
	err := db.
		Where("email = ?", strings.ToLower(pay.Email)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && user.IsVerified) {
		c.Status(http.StatusAccepted)
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	token, err := newActionToken(user.ID.String(), user.Email, verifyAudience, a.cfg.VerificationSecret, actionTokenTTL)
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	err = a.mail.Send(c.Request.Context(), &mailer.Message{
		To:         user.Email,
		Subject:    "Verify your email",
		TemplateID: 1,
		Params:     map[string]string{"token": token},
	})
	if err != nil {
		slog.Error("sending verification email", "user_id", user.ID, "err", err)
	}

	c.Status(http.StatusAccepted)
}

type tokenPayload struct {
	Token string `json:"token" binding:"required"`
}

func (a *authServiceImpl) Verify(c *gin.Context) {
	var pay tokenPayload
	if err := c.ShouldBindJSON(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	claims, err := parseActionToken(pay.Token, verifyAudience, a.cfg.VerificationSecret)
	if err != nil {
		finance_core.AbortWithError(c, finance_core.BadRequest("VERIFY_USER_BAD_TOKEN"))
		return
	}

	db := a.db.WithContext(c.Request.Context())

	var user finance_model.User
	err = db.
		Where("id = ?", claims.Subject).
		First(&user).Error
	if err != nil {
		finance_core.AbortWithError(c, finance_core.BadRequest("VERIFY_USER_BAD_TOKEN"))
		return
	}

	user.IsVerified = true
	if err := db.Save(&user).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &user)
}
