package domain

import "time"

// UserRole defines the roles a user can hold within their church.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleTreasurer UserRole = "treasurer"
)

// User represents an authenticated user of the application.
// ChurchID is the tenant link; a user with a nil ChurchID cannot access any
// tenant data and must be attached to a church by an administrator.
type User struct {
	UserID                 string     `json:"userID"` // Primary Key (UUID)
	Email                  string     `json:"email"`
	Role                   UserRole   `json:"role"`
	ChurchID               *string    `json:"churchID"` // FK -> churches.church_id, nullable
	PasswordHash           string     `json:"-"`        // Empty for OAuth-only users
	AuthProvider           *string    `json:"-"`        // e.g. "google"
	ProviderUserID         *string    `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// GoogleUserInfo holds the subset of the Google userinfo response the
// application consumes during OAuth sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
