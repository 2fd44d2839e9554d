package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item.
// AddToStockOnHand se usa dentro de transacciones para mantener el agregado
// por ítem en sincronía con los asientos del ledger.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Item, error)
	AddToStockOnHand(id string, delta int64) error
	CountBelowReorder(tenantID string) (int, error)
	TotalStockValue(tenantID string) (decimal.Decimal, error)
}
