package model

import "time"

const (
	RoleClient     = "client"
	RoleMaster     = "master"
	RoleSalonAdmin = "salon_admin"
)

// ValidRole reports whether role is one of the enumerated user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleMaster, RoleSalonAdmin:
		return true
	}
	return false
}

// User represents an account in the system
type User struct {
	ID           string    `json:"id"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	PhotoURL     *string   `json:"photo_url,omitempty"` // Pointers for optional role-specific fields
	City         *string   `json:"city,omitempty"`
	SalonName    *string   `json:"salon_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is the client-visible shape returned from login and /auth/me.
// It never carries the password hash.
type UserSummary struct {
	ID       string  `json:"id"`
	Phone    string  `json:"phone"`
	FullName string  `json:"full_name"`
	Role     string  `json:"role"`
	City     *string `json:"city,omitempty"`
}

// Summary strips the user down to its client-visible fields.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Phone:    u.Phone,
		FullName: u.FullName,
		Role:     u.Role,
		City:     u.City,
	}
}

// RegisterRequest is used for creating a new account
type RegisterRequest struct {
	Phone     string  `json:"phone" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	FullName  string  `json:"full_name" binding:"required"`
	Role      string  `json:"role" binding:"required"`
	PhotoURL  *string `json:"photo_url"`
	City      *string `json:"city"`
	SalonName *string `json:"salon_name"`
}

// LoginRequest is the login payload. The web client sends the phone under the
// "username" key, so that wire name is part of the contract.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
