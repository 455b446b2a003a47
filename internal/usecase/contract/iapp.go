package contract

import (
	"time"
)

// IAppLogger is the logging facade injected into usecases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes application configuration values.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetInteractionCooldown() time.Duration
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetUploadBucket() string
	GetMediaUploadURL() string
	GetMediaUploadPreset() string
}

// IValidator validates user-supplied values beyond struct binding tags.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
