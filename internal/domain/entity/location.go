package entity

import "time"

// Location representa una ubicación física de almacenamiento (bodega, estante,
// sede) donde vive el stock de un tenant.
type Location struct {
	ID        string
	TenantID  string
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
