package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/configs"
	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/mailer"
)

type authServiceImpl struct {
	db   *gorm.DB
	cfg  *configs.AppConfig
	mail mailer.Mailer
	auth finance_core.Authorization
	pw   *PasswordHelper
}

func NewAuthService(
	db *gorm.DB,
	cfg *configs.AppConfig,
	mail mailer.Mailer,
	auth finance_core.Authorization,
) *authServiceImpl {
	return &authServiceImpl{
		db:   db,
		cfg:  cfg,
		mail: mail,
		auth: auth,
		pw:   NewPasswordHelper(),
	}
}

func (a *authServiceImpl) Register(rg *gin.RouterGroup) {
	rg.POST("/register", a.SignUp)
	rg.POST("/request-verify-token", a.RequestVerifyToken)
	rg.POST("/verify", a.Verify)
	rg.POST("/forgot-password", a.ForgotPassword)
	rg.POST("/reset-password", a.ResetPassword)

	rg.POST("/bearer/login", a.Login)
	rg.POST("/bearer/logout", a.Logout)

	rg.GET("/bearer/google/authorize", a.GoogleAuthorize)
	rg.GET("/bearer/google/callback", a.GoogleCallback)
}

func (a *authServiceImpl) RegisterUsers(rg *gin.RouterGroup) {
	rg.GET("/me", a.Me)
	rg.PATCH("/me", a.UpdateMe)
}
