package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un ítem nuevo. SKU único por tenant.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, tenant_id, sku, name, category, uom, reorder_level, unit_value, stock_on_hand, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TenantID, item.SKU, item.Name, item.Category, item.UOM,
		item.ReorderLevel, item.UnitValue, item.StockOnHand, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, tenant_id, sku, name, category, uom, reorder_level, unit_value, stock_on_hand, created_at, updated_at
		FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.TenantID, &it.SKU, &it.Name, &it.Category, &it.UOM,
		&it.ReorderLevel, &it.UnitValue, &it.StockOnHand, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListByTenant lista ítems del tenant con paginación.
func (r *ItemRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT id, tenant_id, sku, name, category, uom, reorder_level, unit_value, stock_on_hand, created_at, updated_at
		FROM items WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.TenantID, &it.SKU, &it.Name, &it.Category, &it.UOM,
			&it.ReorderLevel, &it.UnitValue, &it.StockOnHand, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// AddToStockOnHand suma delta (puede ser negativo) al agregado del ítem.
// Se invoca dentro de la misma transacción que el asiento del ledger para que
// stock_on_hand == Σ location_stock siempre.
func (r *ItemRepo) AddToStockOnHand(id string, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE items SET stock_on_hand = stock_on_hand + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("update stock_on_hand: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountBelowReorder cuenta ítems con stock bajo el punto de reorden.
func (r *ItemRepo) CountBelowReorder(tenantID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM items WHERE tenant_id = $1 AND reorder_level > 0 AND stock_on_hand < reorder_level`,
		tenantID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count below reorder: %w", err)
	}
	return total, nil
}

// TotalStockValue valor total del inventario: Σ stock_on_hand * unit_value.
func (r *ItemRepo) TotalStockValue(tenantID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(sum(stock_on_hand * unit_value), 0) FROM items WHERE tenant_id = $1`,
		tenantID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total stock value: %w", err)
	}
	return total, nil
}
