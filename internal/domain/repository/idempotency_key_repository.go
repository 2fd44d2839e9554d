package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// IdempotencyKeyRepository define el puerto para la deduplicación de
// mutaciones reintentadas. El ciclo es reclamar → ejecutar → guardar respuesta
// (o liberar si la ejecución falló).
type IdempotencyKeyRepository interface {
	// Create reclama la clave; devuelve domain.ErrDuplicate si ya existe
	// para el tenant.
	Create(k *entity.IdempotencyKey) error
	// Get devuelve (nil, nil) si la clave no existe.
	Get(tenantID, key string) (*entity.IdempotencyKey, error)
	// SaveResponse persiste el status y el cuerpo de la respuesta exitosa.
	SaveResponse(tenantID, key string, statusCode int, body []byte) error
	// Delete libera la clave para que un reintento real pueda ejecutarse.
	Delete(tenantID, key string) error
}
