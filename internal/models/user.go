package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserData is the admin-managed account record stored at users/{uid}.
// Access gates the admin surface and is independent of whether the
// identity provider authenticated the principal.
type UserData struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Access    bool      `json:"access"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Access   bool   `json:"access"`
}

type UpdateAccessRequest struct {
	Access bool `json:"access"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
}

type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
