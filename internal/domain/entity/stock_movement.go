package entity

import "time"

// Tipos de movimiento del ledger.
const (
	MovementTypeIn       = "in"       // entrada: requiere solo ToLocationID
	MovementTypeOut      = "out"      // salida: requiere solo FromLocationID
	MovementTypeTransfer = "transfer" // traslado: requiere ambos y from ≠ to
)

// StockMovement es un asiento del ledger de stock: registro inmutable de cada
// cambio de cantidad. No existe update ni delete; las correcciones se hacen
// con asientos compensatorios (así funciona el reembolso de un rechazo).
type StockMovement struct {
	ID             string
	TenantID       string
	ItemID         string
	Type           string // in, out, transfer
	Qty            int64  // siempre > 0; el signo lo da el tipo y la ubicación
	FromLocationID string // vacío si no aplica al tipo
	ToLocationID   string // vacío si no aplica al tipo
	Reference      string // ID de solicitud de transferencia, orden, etc.
	Note           string
	UserID         string
	CreatedAt      time.Time
}
