package entity

import "time"

// Tenant representa una organización cliente del sistema (multi-tenant).
// El slug identifica al tenant en el login (login por empresa).
type Tenant struct {
	ID        string
	Name      string
	Slug      string
	Industry  string
	Plan      string // free, pro, enterprise
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
