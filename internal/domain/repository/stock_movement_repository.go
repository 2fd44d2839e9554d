package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del ledger.
// Solo append y lectura: los asientos nunca se modifican ni se borran.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByItem(tenantID, itemID string, limit, offset int) ([]*entity.StockMovement, error)
	CountByItem(tenantID, itemID string) (int, error)
}
