package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_model"
)

const (
	verifyAudience = "finance:verify"
	resetAudience  = "finance:reset"
	stateAudience  = "finance:oauth-state"

	actionTokenTTL = time.Hour
	stateTokenTTL  = 10 * time.Minute
)

func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (a *authServiceImpl) issueAccessToken(db *gorm.DB, userID uuid.UUID) (*finance_model.AccessToken, error) {
	raw, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}

	token := &finance_model.AccessToken{
		Token:  raw,
		UserID: userID,
	}
	if err := db.Create(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}

type actionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// newActionToken signs a short-lived single-purpose token, used for
// email verification, password reset and oauth state.
func newActionToken(subject, email, audience, secret string, ttl time.Duration) (string, error) {
	claims := &actionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseActionToken(raw, audience, secret string) (*actionClaims, error) {
	token, err := jwt.ParseWithClaims(
		raw,
		&actionClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithAudience(audience),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*actionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
