package entity

import "time"

// Stock es la proyección materializada del ledger: cantidad disponible de un
// ítem en una ubicación. Nunca negativa; toda operación que la dejaría bajo
// cero se rechaza antes de escribir el asiento.
type Stock struct {
	TenantID   string
	ItemID     string
	LocationID string
	Qty        int64
	UpdatedAt  time.Time
}
