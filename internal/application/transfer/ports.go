package transfer

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita el flujo de aprobación. Crear, aprobar o rechazar
// una solicitud toca la fila de la solicitud, la proyección de stock, el
// agregado del ítem y el ledger: o se escriben todos o ninguno.
type TxRunner interface {
	RunTransfer(ctx context.Context, fn func(
		requestRepo repository.TransferRequestRepository,
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
