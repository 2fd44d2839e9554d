package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department agrupa usuarios y stock dentro de un tenant; es la unidad de
// enrutamiento de las solicitudes de transferencia (origen → destino).
type Department struct {
	ID          string
	TenantID    string
	Name        string
	BudgetLimit *decimal.Decimal // nil = sin límite presupuestal
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
