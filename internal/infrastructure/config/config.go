package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL          string
	InteractionCooldown time.Duration
	AccessTokenExpiry   time.Duration
	RefreshTokenExpiry  time.Duration
	UploadBucket        string
	MediaUploadURL      string
	MediaUploadPreset   string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:          getEnv("APP_BASE_URL", "http://localhost:8080"),
		InteractionCooldown: time.Millisecond * time.Duration(getEnvAsInt("INTERACTION_COOLDOWN_MS", 3000)),
		AccessTokenExpiry:   time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 15)),
		RefreshTokenExpiry:  time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		UploadBucket:        getEnv("UPLOAD_BUCKET", "pulse-videos"),
		MediaUploadURL:      getEnv("MEDIA_UPLOAD_URL", ""),
		MediaUploadPreset:   getEnv("MEDIA_UPLOAD_PRESET", ""),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetInteractionCooldown returns the snapshot suppression window.
func (c *Config) GetInteractionCooldown() time.Duration {
	return c.InteractionCooldown
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

// GetUploadBucket returns the object storage bucket for video uploads.
func (c *Config) GetUploadBucket() string {
	return c.UploadBucket
}

// GetMediaUploadURL returns the third-party media endpoint URL.
func (c *Config) GetMediaUploadURL() string {
	return c.MediaUploadURL
}

// GetMediaUploadPreset returns the fixed preset identifier for the media endpoint.
func (c *Config) GetMediaUploadPreset() string {
	return c.MediaUploadPreset
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
