package domain

// Actor identifica quién ejecuta una operación y bajo qué tenant.
// Se pasa explícitamente a los casos de uso; nada de estado global de sesión.
type Actor struct {
	TenantID     string
	UserID       string
	DepartmentID string
	Role         string
}
