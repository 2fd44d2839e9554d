package dto

import "time"

// RegisterRequest body para POST /api/auth/register: crea el tenant y su
// primer usuario administrador.
type RegisterRequest struct {
	TenantName string `json:"tenant_name"`
	Industry   string `json:"industry,omitempty"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// LoginRequest body para POST /api/auth/login. El tenant_slug scopea el login
// a una organización (el mismo email puede existir en varios tenants).
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	TenantSlug string `json:"tenant_slug"`
}

// LoginResponse respuesta de login/registro.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      UserResponse   `json:"user"`
	Tenant    TenantResponse `json:"tenant"`
}

// ChangePasswordRequest body para POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	DepartmentID string    `json:"department_id,omitempty"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// TenantResponse representación pública de un tenant.
type TenantResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Industry string `json:"industry,omitempty"`
	Plan     string `json:"plan"`
}
