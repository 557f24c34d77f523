package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

type User struct {
	ID         int        `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	Phone      string     `json:"phone,omitempty"`
	AvatarPath string     `json:"avatar,omitempty"`
	Rating     float64    `json:"rating"`
	Role       string     `json:"role,omitempty"`
	IsActive   bool       `json:"is_active"`
	Password   string     `json:"password,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// Session is the refresh-token record kept in redis for the lifetime of the
// refresh token.
type Session struct {
	UserID    int       `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RegisterRequest struct {
	Email                string `json:"email"`
	Username             string `json:"username"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Phone                string `json:"phone"`
	Avatar               string `json:"avatar"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User    User   `json:"user"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
