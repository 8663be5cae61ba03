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

// ForgotPassword always answers 202, same reasoning as
// RequestVerifyToken.
func (a *authServiceImpl) ForgotPassword(c *gin.Context) {
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
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Status(http.StatusAccepted)
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	token, err := newActionToken(user.ID.String(), user.Email, resetAudience, a.cfg.VerificationSecret, actionTokenTTL)
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	err = a.mail.Send(c.Request.Context(), &mailer.Message{
		To:         user.Email,
		Subject:    "Reset your password",
		TemplateID: 2,
		Params:     map[string]string{"token": token},
	})
	if err != nil {
		slog.Error("sending reset email", "user_id", user.ID, "err", err)
	}

	c.Status(http.StatusAccepted)
}

type resetPayload struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (a *authServiceImpl) ResetPassword(c *gin.Context) {
	var pay resetPayload
	if err := c.ShouldBindJSON(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	claims, err := parseActionToken(pay.Token, resetAudience, a.cfg.VerificationSecret)
	if err != nil {
		finance_core.AbortWithError(c, finance_core.BadRequest("RESET_PASSWORD_BAD_TOKEN"))
		return
	}

	db := a.db.WithContext(c.Request.Context())

	var user finance_model.User
	err = db.
		Where("id = ?", claims.Subject).
		First(&user).Error
	if err != nil {
		finance_core.AbortWithError(c, finance_core.BadRequest("RESET_PASSWORD_BAD_TOKEN"))
		return
	}

	hash, err := a.pw.Hash(pay.Password)
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	user.HashedPassword = hash
	if err := db.Save(&user).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
