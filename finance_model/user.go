package finance_model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email          string    `json:"email" gorm:"size:320;uniqueIndex;not null"`
	HashedPassword string    `json:"-" gorm:"size:1024;not null"`
	Username       string    `json:"username" gorm:"size:64"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	IsVerified     bool      `json:"is_verified"`
	IsSuperuser    bool      `json:"is_superuser"`
	Created        time.Time `json:"created" gorm:"autoCreateTime"`
	Updated        time.Time `json:"updated" gorm:"autoUpdateTime"`
}

type OAuthAccount struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	OAuthName    string    `json:"oauth_name" gorm:"column:oauth_name;size:100;index"`
	AccountID    string    `json:"account_id" gorm:"size:320;index"`
	AccountEmail string    `json:"account_email" gorm:"size:320"`
	AccessToken  string    `json:"-" gorm:"size:1024"`
	RefreshToken string    `json:"-" gorm:"size:1024"`
	ExpiresAt    int64     `json:"-"`

	User *User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// AccessToken is an opaque bearer token row. The token value itself is
// the primary key, matching the database login strategy.
type AccessToken struct {
	Token     string    `json:"-" gorm:"size:64;primaryKey"`
	UserID    uuid.UUID `json:"-" gorm:"type:uuid;index;not null"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}
