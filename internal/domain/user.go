package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleMember  = 3
)

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	RoleID         int        `json:"role_id"`
	Active         bool       `json:"active"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"-"`
}

func (u User) FullName() string {
	return joinName(u.FirstName, u.LastName)
}

// RegisterRequest cria a organização e o usuário administrador.
// Name é aceito como alternativa a first_name/last_name.
type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email,max=255"`
	Password         string `json:"password" validate:"required"`
	Name             string `json:"name" validate:"omitempty,max=200"`
	FirstName        string `json:"first_name" validate:"omitempty,max=100"`
	LastName         string `json:"last_name" validate:"omitempty,max=100"`
	OrganizationName string `json:"organization_name" validate:"omitempty,min=2,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token        string        `json:"token"`
	ExpiresAt    time.Time     `json:"expires_at"`
	User         *User         `json:"user"`
	Organization *Organization `json:"organization,omitempty"`
}

type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	RoleID    int    `json:"role_id" validate:"omitempty,oneof=1 2 3"`
}

type UpdateUserRequest struct {
	ID        string  `json:"-"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Active    *bool   `json:"active"`
	RoleID    *int    `json:"role_id" validate:"omitempty,oneof=1 2 3"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// Claims do token JWT. RegisteredClaims.ID é o jti usado na revogação.
type Claims struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	UserEmail      string `json:"email"`
	UserName       string `json:"name"`
	UserRoleID     int    `json:"role_id"`
	jwt.RegisteredClaims
}
