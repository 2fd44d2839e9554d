package stock

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que asiento del ledger, proyección
// de stock y agregado del ítem se escriban todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

// MovementReportGenerator genera el kárdex (reporte de movimientos) de un ítem.
type MovementReportGenerator interface {
	GenerateMovementReport(ctx context.Context, item *entity.Item, movements []*entity.StockMovement) ([]byte, error)
}
