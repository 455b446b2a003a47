package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	PhotoURL     string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Followers    []string  `bson:"followers" json:"followers"`
	Following    []string  `bson:"following" json:"following"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// Viewer is the identity of the authenticated session performing an action.
// It doubles as the denormalized profile snapshot written into notifications
// and comments, sourced from the session claims at request time.
type Viewer struct {
	ID       string
	Name     string
	Email    string
	PhotoURL string
	// Device identifies the client device. It keys the local engagement
	// mirror for unauthenticated viewers, who have no uid.
	Device string
}

// SessionKey identifies the viewer's engagement session: the uid when signed
// in, otherwise the device id.
func (v Viewer) SessionKey() string {
	if v.ID != "" {
		return v.ID
	}
	return v.Device
}

// IsSignedIn reports whether the viewer carries an authenticated identity.
func (v Viewer) IsSignedIn() bool {
	return v.ID != ""
}

// DisplayName returns the viewer's name, falling back to the local part of
// the email address.
func (v Viewer) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	for i := 0; i < len(v.Email); i++ {
		if v.Email[i] == '@' {
			return v.Email[:i]
		}
	}
	return v.Email
}
