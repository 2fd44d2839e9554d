package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Si el par (ítem, ubicación) no tiene fila, Get/GetForUpdate devuelven una
// entidad con Qty = 0: ausencia de fila equivale a stock cero.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un ítem en una ubicación.
func (r *StockRepo) Get(tenantID, itemID, locationID string) (*entity.Stock, error) {
	query := `
		SELECT tenant_id, item_id, location_id, qty, updated_at
		FROM location_stock WHERE tenant_id = $1 AND item_id = $2 AND location_id = $3`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, tenantID, itemID, locationID).Scan(
		&s.TenantID, &s.ItemID, &s.LocationID, &s.Qty, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{TenantID: tenantID, ItemID: itemID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE):
// serializa chequeo + débito por par (ítem, ubicación) frente a concurrencia.
func (r *StockRepo) GetForUpdate(tenantID, itemID, locationID string) (*entity.Stock, error) {
	query := `
		SELECT tenant_id, item_id, location_id, qty, updated_at
		FROM location_stock WHERE tenant_id = $1 AND item_id = $2 AND location_id = $3
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, tenantID, itemID, locationID).Scan(
		&s.TenantID, &s.ItemID, &s.LocationID, &s.Qty, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{TenantID: tenantID, ItemID: itemID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por tenant, ítem y ubicación).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO location_stock (tenant_id, item_id, location_id, qty, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (tenant_id, item_id, location_id)
		DO UPDATE SET qty = EXCLUDED.qty, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.TenantID, stock.ItemID, stock.LocationID, stock.Qty,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// Add suma qty a la fila del par (ítem, ubicación), creándola si no existe.
// El incremento se resuelve en el UPDATE, no en Go: una lectura previa no
// participa y dos créditos concurrentes quedan ambos aplicados.
func (r *StockRepo) Add(tenantID, itemID, locationID string, qty int64) error {
	query := `
		INSERT INTO location_stock (tenant_id, item_id, location_id, qty, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (tenant_id, item_id, location_id)
		DO UPDATE SET qty = location_stock.qty + EXCLUDED.qty, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, tenantID, itemID, locationID, qty)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// ListByItem lista las filas de stock de un ítem (todas las ubicaciones con fila).
func (r *StockRepo) ListByItem(tenantID, itemID string) ([]*entity.Stock, error) {
	query := `
		SELECT tenant_id, item_id, location_id, qty, updated_at
		FROM location_stock WHERE tenant_id = $1 AND item_id = $2
		ORDER BY location_id`
	rows, err := r.q.Query(context.Background(), query, tenantID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock by item: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.TenantID, &s.ItemID, &s.LocationID, &s.Qty, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
