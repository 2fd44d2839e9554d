package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con
// pool o tx). La tabla no tiene UPDATE ni DELETE: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un asiento del ledger.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, tenant_id, item_id, type, qty, from_location_id, to_location_id, reference, note, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.TenantID, movement.ItemID, movement.Type, movement.Qty,
		nullable(movement.FromLocationID), nullable(movement.ToLocationID),
		movement.Reference, movement.Note, nullable(movement.UserID), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, tenant_id, item_id, type, qty, from_location_id, to_location_id, reference, note, user_id, created_at
		FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByItem lista los asientos de un ítem, más reciente primero.
func (r *StockMovementRepo) ListByItem(tenantID, itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, tenant_id, item_id, type, qty, from_location_id, to_location_id, reference, note, user_id, created_at
		FROM stock_movements WHERE tenant_id = $1 AND item_id = $2
		ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// CountByItem cuenta los asientos de un ítem (para paginación).
func (r *StockMovementRepo) CountByItem(tenantID, itemID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_movements WHERE tenant_id = $1 AND item_id = $2`,
		tenantID, itemID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var fromLoc, toLoc, userID *string
	if err := row.Scan(&m.ID, &m.TenantID, &m.ItemID, &m.Type, &m.Qty,
		&fromLoc, &toLoc, &m.Reference, &m.Note, &userID, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.FromLocationID = orEmpty(fromLoc)
	m.ToLocationID = orEmpty(toLoc)
	m.UserID = orEmpty(userID)
	return &m, nil
}
