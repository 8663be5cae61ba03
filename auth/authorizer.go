package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

type identityImpl struct {
	err  error
	user *finance_model.User
}

func (i *identityImpl) Err() error {
	return i.err
}

func (i *identityImpl) UserID() uuid.UUID {
	if i.user == nil {
		return uuid.Nil
	}
	return i.user.ID
}

func (i *identityImpl) IsSuperuser() bool {
	return i.user != nil && i.user.IsSuperuser
}

type dbAuthorization struct {
	db       *gorm.DB
	lifetime time.Duration
}

// NewDBAuthorization resolves bearer headers against stored access
// token rows, the database login strategy.
func NewDBAuthorization(db *gorm.DB, lifetime time.Duration) finance_core.Authorization {
	return &dbAuthorization{
		db:       db,
		lifetime: lifetime,
	}
}

func bearerToken(h http.Header) string {
	raw := h.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(raw, prefix) {
		return ""
	}
	return strings.TrimPrefix(raw, prefix)
}

func (a *dbAuthorization) AuthIdentityFromHeader(h http.Header) finance_core.Identity {
	raw := bearerToken(h)
	if raw == "" {
		return &identityImpl{err: finance_core.Unauthorized("missing bearer token")}
	}

	var token finance_model.AccessToken
	err := a.db.
		Where("token = ?", raw).
		First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &identityImpl{err: finance_core.Unauthorized("invalid token")}
	}
	if err != nil {
		return &identityImpl{err: err}
	}

	if a.lifetime > 0 && time.Since(token.CreatedAt) > a.lifetime {
		return &identityImpl{err: finance_core.Unauthorized("token expired")}
	}

	var user finance_model.User
	err = a.db.
		Where("id = ?", token.UserID).
		First(&user).Error
	if err != nil {
		return &identityImpl{err: finance_core.Unauthorized("invalid token")}
	}

	if !user.IsActive {
		return &identityImpl{err: finance_core.Unauthorized("inactive user")}
	}

	return &identityImpl{user: &user}
}
