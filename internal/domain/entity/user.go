package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"  // administrador del tenant
	RoleMember = "member" // usuario regular (opera stock de su departamento)
)

// User representa un usuario del sistema (pertenece a un Tenant y,
// opcionalmente, a un Department para el flujo de transferencias).
type User struct {
	ID           string
	TenantID     string
	DepartmentID string // vacío = sin departamento asignado
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         string // admin, member
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
