package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

const googleProvider = "google"
const googleUserinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

func (a *authServiceImpl) googleConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     a.cfg.GoogleOAuth.ClientID,
		ClientSecret: a.cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  a.cfg.GoogleOAuth.RedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func (a *authServiceImpl) GoogleAuthorize(c *gin.Context) {
	state, err := newActionToken(uuid.NewString(), "", stateAudience, a.cfg.VerificationSecret, stateTokenTTL)
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authorization_url": a.googleConfig().AuthCodeURL(state),
	})
}

type googleUserinfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

func fetchGoogleUserinfo(ctx context.Context, client *http.Client) (*googleUserinfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserinfoEndpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("userinfo request failed")
	}

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (a *authServiceImpl) GoogleCallback(c *gin.Context) {
	if _, err := parseActionToken(c.Query("state"), stateAudience, a.cfg.VerificationSecret); err != nil {
		finance_core.AbortWithError(c, finance_core.BadRequest("OAUTH_BAD_STATE"))
		return
	}

	ctx := c.Request.Context()
	conf := a.googleConfig()

	token, err := conf.Exchange(ctx, c.Query("code"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.Unauthorized("OAUTH_EXCHANGE_FAILED"))
		return
	}

	info, err := fetchGoogleUserinfo(ctx, conf.Client(ctx, token))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.Unauthorized("OAUTH_USERINFO_FAILED"))
		return
	}

	db := a.db.WithContext(ctx)

	var user finance_model.User
	err = db.Transaction(func(tx *gorm.DB) error {
		var account finance_model.OAuthAccount
		err := tx.
			Where("oauth_name = ?", googleProvider).
			Where("account_id = ?", info.ID).
			First(&account).Error

		switch {
		case err == nil:
			if err := tx.Where("id = ?", account.UserID).First(&user).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// associate by email, otherwise create a fresh user
			err = tx.Where("email = ?", info.Email).First(&user).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				password, perr := generateOpaqueToken()
				if perr != nil {
					return perr
				}
				hash, perr := a.pw.Hash(password)
				if perr != nil {
					return perr
				}
				user = finance_model.User{
					ID:             uuid.New(),
					Email:          info.Email,
					HashedPassword: hash,
					Username:       info.Name,
					IsActive:       true,
					IsVerified:     info.VerifiedEmail,
				}
				if err := tx.Create(&user).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			account = finance_model.OAuthAccount{
				ID:           uuid.New(),
				UserID:       user.ID,
				OAuthName:    googleProvider,
				AccountID:    info.ID,
				AccountEmail: info.Email,
			}
			if err := tx.Create(&account).Error; err != nil {
				return err
			}
		default:
			return err
		}

		account.AccessToken = token.AccessToken
		account.RefreshToken = token.RefreshToken
		if !token.Expiry.IsZero() {
			account.ExpiresAt = token.Expiry.Unix()
		}
		return tx.Save(&account).Error
	})
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	accessToken, err := a.issueAccessToken(db, user.ID)
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken.Token,
		"token_type":   "bearer",
	})
}
