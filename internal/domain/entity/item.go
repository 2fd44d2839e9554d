package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo de inventario del tenant.
// StockOnHand es el agregado por ítem: debe ser siempre igual a la suma del
// stock por ubicación; se mantiene en la misma transacción que cada asiento.
type Item struct {
	ID           string
	TenantID     string
	SKU          string
	Name         string
	Category     string
	UOM          string // unidad de medida (unit, box, kg, ...)
	ReorderLevel int64  // punto de reorden para alertas de stock bajo
	UnitValue    decimal.Decimal
	StockOnHand  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
