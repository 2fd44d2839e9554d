package repository

import (
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// TransferRequestRepository define el puerto de persistencia para solicitudes
// de transferencia entre departamentos.
type TransferRequestRepository interface {
	Create(request *entity.TransferRequest) error
	GetByID(id string) (*entity.TransferRequest, error)
	ListByStatus(tenantID, status string, limit, offset int) ([]*entity.TransferRequest, error)
	CountByStatus(tenantID, status string) (int, error)
	// ResolveIfPending aplica la transición pending → status de forma
	// condicional (UPDATE ... WHERE status = 'pending'). Devuelve false si la
	// solicitud ya estaba resuelta: ante dos resoluciones concurrentes gana
	// exactamente una.
	ResolveIfPending(id, status, toLocationID, resolverID string, resolvedAt time.Time) (bool, error)
}
