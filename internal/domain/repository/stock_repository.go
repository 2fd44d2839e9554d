package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar la proyección de
// stock por (ítem, ubicación). Usado dentro de transacciones para garantizar
// consistencia con el ledger.
type StockRepository interface {
	Get(tenantID, itemID, locationID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE): serializa el chequeo
	// de disponibilidad + débito por par (ítem, ubicación).
	GetForUpdate(tenantID, itemID, locationID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// Add incrementa la cantidad del par de forma aditiva en el motor de
	// base de datos: dos créditos concurrentes al mismo par no se pisan.
	Add(tenantID, itemID, locationID string, qty int64) error
	ListByItem(tenantID, itemID string) ([]*entity.Stock, error)
}
