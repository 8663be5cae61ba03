package auth_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/auth"
	"github.com/sandoapp/finance_service/configs"
	"github.com/sandoapp/finance_service/finance_mock"
	"github.com/sandoapp/finance_service/finance_model"
)

func TestPasswordAuthFlow(t *testing.T) {
	var db gorm.DB

	cfg := &configs.AppConfig{
		VerificationSecret: "test-secret",
		TokenLifetime:      time.Hour,
	}

	var migrate finance_mock.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&finance_model.User{},
			&finance_model.OAuthAccount{},
			&finance_model.AccessToken{},
		)
		assert.Nil(t, err)

		return nil
	}

	finance_mock.Suite(t, "testing password auth flow",
		finance_mock.SetupListFunc{
			finance_mock.MockSqliteDatabase(&db),
			migrate,
		},
		func(t *testing.T) {
			mail := &finance_mock.RecorderMailer{}
			authz := auth.NewDBAuthorization(&db, cfg.TokenLifetime)

			router := gin.New()
			srv := auth.NewAuthService(&db, cfg, mail, authz)
			srv.Register(router.Group("/auth"))
			srv.RegisterUsers(router.Group("/users"))

			var accessToken string

			t.Run("register", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodPost, "/auth/register", gin.H{
					"email":    "Alice@Example.com",
					"password": "hunter2hunter2",
					"username": "alice",
				})
				assert.Equal(t, http.StatusCreated, rec.Code)

				var user finance_model.User
				err := json.Unmarshal(rec.Body.Bytes(), &user)
				assert.Nil(t, err)
				assert.Equal(t, "alice@example.com", user.Email)
				assert.False(t, user.IsVerified)

				// the password hash never leaves the server
				assert.NotContains(t, rec.Body.String(), "hashed_password")
			})

			t.Run("duplicate register is rejected", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodPost, "/auth/register", gin.H{
					"email":    "alice@example.com",
					"password": "hunter2hunter2",
				})
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "REGISTER_USER_ALREADY_EXISTS")
			})

			t.Run("login with wrong password fails", func(t *testing.T) {
				form := url.Values{
					"username": {"alice@example.com"},
					"password": {"wrong-password"},
				}
				rec := finance_mock.DoForm(router, http.MethodPost, "/auth/bearer/login", form.Encode())
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "LOGIN_BAD_CREDENTIALS")
			})

			t.Run("login issues a bearer token", func(t *testing.T) {
				form := url.Values{
					"username": {"alice@example.com"},
					"password": {"hunter2hunter2"},
				}
				rec := finance_mock.DoForm(router, http.MethodPost, "/auth/bearer/login", form.Encode())
				assert.Equal(t, http.StatusOK, rec.Code)

				var body struct {
					AccessToken string `json:"access_token"`
					TokenType   string `json:"token_type"`
				}
				err := json.Unmarshal(rec.Body.Bytes(), &body)
				assert.Nil(t, err)
				assert.Equal(t, "bearer", body.TokenType)
				assert.NotEmpty(t, body.AccessToken)

				accessToken = body.AccessToken
			})

			t.Run("me returns the authenticated user", func(t *testing.T) {
				rec := finance_mock.DoJSONAuth(router, http.MethodGet, "/users/me", accessToken, nil)
				assert.Equal(t, http.StatusOK, rec.Code)

				var user finance_model.User
				err := json.Unmarshal(rec.Body.Bytes(), &user)
				assert.Nil(t, err)
				assert.Equal(t, "alice@example.com", user.Email)
			})

			t.Run("me without a token is unauthorized", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodGet, "/users/me", nil)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			})

			t.Run("verify flow via emailed token", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodPost, "/auth/request-verify-token", gin.H{
					"email": "alice@example.com",
				})
				assert.Equal(t, http.StatusAccepted, rec.Code)

				msg := mail.Last()
				assert.NotNil(t, msg)
				assert.Equal(t, "alice@example.com", msg.To)
				assert.Equal(t, 1, msg.TemplateID)

				rec = finance_mock.DoJSON(router, http.MethodPost, "/auth/verify", gin.H{
					"token": msg.Params["token"],
				})
				assert.Equal(t, http.StatusOK, rec.Code)

				var user finance_model.User
				err := db.Where("email = ?", "alice@example.com").First(&user).Error
				assert.Nil(t, err)
				assert.True(t, user.IsVerified)
			})

			t.Run("verify with a garbage token fails", func(t *testing.T) {
				rec := finance_mock.DoJSON(router, http.MethodPost, "/auth/verify", gin.H{
					"token": "not-a-jwt",
				})
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "VERIFY_USER_BAD_TOKEN")
			})

			t.Run("request-verify-token for unknown email still accepts", func(t *testing.T) {
				before := len(mail.Messages)
				rec := finance_mock.DoJSON(router, http.MethodPost, "/auth/request-verify-token", gin.H{
					"email": "noone@example.com",
				})
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Len(t, mail.Messages, before)
			})

			t.Run("changing email drops verified status", func(t *testing.T) {
				rec := finance_mock.DoJSONAuth(router, http.MethodPatch, "/users/me", accessToken, gin.H{
					"email": "Alice2@Example.com",
				})
				assert.Equal(t, http.StatusOK, rec.Code)

				var user finance_model.User
				err := db.Where("email = ?", "alice2@example.com").First(&user).Error
				assert.Nil(t, err)
				assert.False(t, user.IsVerified)
			})

			t.Run("logout invalidates the token", func(t *testing.T) {
				rec := finance_mock.DoJSONAuth(router, http.MethodPost, "/auth/bearer/logout", accessToken, nil)
				assert.Equal(t, http.StatusNoContent, rec.Code)

				rec = finance_mock.DoJSONAuth(router, http.MethodGet, "/users/me", accessToken, nil)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			})
		},
	)
}

func TestMeMissingUserRow(t *testing.T) {
	var db gorm.DB

	cfg := &configs.AppConfig{
		VerificationSecret: "test-secret",
		TokenLifetime:      time.Hour,
	}

	var migrate finance_mock.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&finance_model.User{},
			&finance_model.OAuthAccount{},
			&finance_model.AccessToken{},
		)
		assert.Nil(t, err)

		return nil
	}

	finance_mock.Suite(t, "testing me with a vanished user row",
		finance_mock.SetupListFunc{
			finance_mock.MockSqliteDatabase(&db),
			migrate,
		},
		func(t *testing.T) {
			// identity resolves but the row behind it is gone
			authMock := &finance_mock.AuthorizationMock{
				Identity: &finance_mock.IdentityMock{ID: uuid.New()},
			}

			router := gin.New()
			srv := auth.NewAuthService(&db, cfg, &finance_mock.RecorderMailer{}, authMock)
			srv.RegisterUsers(router.Group("/users"))

			rec := finance_mock.DoJSON(router, http.MethodGet, "/users/me", nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)

			rec = finance_mock.DoJSON(router, http.MethodPatch, "/users/me", gin.H{
				"username": "ghost",
			})
			assert.Equal(t, http.StatusNotFound, rec.Code)
		},
	)
}

func TestForgotPasswordFlow(t *testing.T) {
	var db gorm.DB

	cfg := &configs.AppConfig{
		VerificationSecret: "test-secret",
		TokenLifetime:      time.Hour,
	}

	var migrate finance_mock.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&finance_model.User{},
			&finance_model.OAuthAccount{},
			&finance_model.AccessToken{},
		)
		assert.Nil(t, err)

		return nil
	}

	finance_mock.Suite(t, "testing forgot password flow",
		finance_mock.SetupListFunc{
			finance_mock.MockSqliteDatabase(&db),
			migrate,
		},
		func(t *testing.T) {
			mail := &finance_mock.RecorderMailer{}
			authz := auth.NewDBAuthorization(&db, cfg.TokenLifetime)

			router := gin.New()
			srv := auth.NewAuthService(&db, cfg, mail, authz)
			srv.Register(router.Group("/auth"))

			rec := finance_mock.DoJSON(router, http.MethodPost, "/auth/register", gin.H{
				"email":    "bob@example.com",
				"password": "old-password-1",
			})
			assert.Equal(t, http.StatusCreated, rec.Code)

			rec = finance_mock.DoJSON(router, http.MethodPost, "/auth/forgot-password", gin.H{
				"email": "bob@example.com",
			})
			assert.Equal(t, http.StatusAccepted, rec.Code)

			msg := mail.Last()
			assert.NotNil(t, msg)
			assert.Equal(t, 2, msg.TemplateID)

			rec = finance_mock.DoJSON(router, http.MethodPost, "/auth/reset-password", gin.H{
				"token":    msg.Params["token"],
				"password": "new-password-1",
			})
			assert.Equal(t, http.StatusOK, rec.Code)

			form := url.Values{
				"username": {"bob@example.com"},
				"password": {"old-password-1"},
			}
			rec = finance_mock.DoForm(router, http.MethodPost, "/auth/bearer/login", form.Encode())
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			form.Set("password", "new-password-1")
			rec = finance_mock.DoForm(router, http.MethodPost, "/auth/bearer/login", form.Encode())
			assert.Equal(t, http.StatusOK, rec.Code)
		},
	)
}
