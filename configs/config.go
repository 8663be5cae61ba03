package configs

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	URI string
}

type StorageConfig struct {
	Bucket    string
	Region    string
	AccessKey string
	Secret    string
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type MailConfig struct {
	BrevoAPIKey string
	SenderName  string
	SenderEmail string
}

type AppConfig struct {
	Host string
	Port string

	Database           DatabaseConfig
	Storage            StorageConfig
	GoogleOAuth        OAuthConfig
	Mail               MailConfig
	VerificationSecret string
	TokenLifetime      time.Duration

	SuperuserEmail    string
	SuperuserPassword string
}

func NewProductionConfig() (*AppConfig, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	secret := os.Getenv("AUTH_VERIFICATION_SECRET")
	if secret == "" {
		return nil, errors.New("AUTH_VERIFICATION_SECRET is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// opaque bearer tokens expire after this many seconds
	lifetime := 24 * time.Hour
	if raw := os.Getenv("TOKEN_LIFETIME"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("TOKEN_LIFETIME must be an integer number of seconds")
		}
		lifetime = time.Duration(seconds) * time.Second
	}

	return &AppConfig{
		Host: os.Getenv("HOST"),
		Port: port,
		Database: DatabaseConfig{
			URI: dsn,
		},
		Storage: StorageConfig{
			Bucket:    os.Getenv("STORAGE_BUCKET"),
			Region:    os.Getenv("STORAGE_REGION"),
			AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
			Secret:    os.Getenv("STORAGE_SECRET"),
		},
		GoogleOAuth: OAuthConfig{
			ClientID:     os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_OAUTH_REDIRECT_URL"),
		},
		Mail: MailConfig{
			BrevoAPIKey: os.Getenv("BREVO_API_KEY"),
			SenderName:  os.Getenv("MAIL_SENDER_NAME"),
			SenderEmail: os.Getenv("MAIL_SENDER_EMAIL"),
		},
		VerificationSecret: secret,
		TokenLifetime:      lifetime,
		SuperuserEmail:     os.Getenv("SUPERUSER_EMAIL"),
		SuperuserPassword:  os.Getenv("SUPERUSER_PASSWORD"),
	}, nil
}
