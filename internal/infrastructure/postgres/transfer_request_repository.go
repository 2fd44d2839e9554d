package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.TransferRequestRepository = (*TransferRequestRepo)(nil)

// TransferRequestRepo implementación sobre PostgreSQL (usable con pool o tx).
type TransferRequestRepo struct {
	q Querier
}

// NewTransferRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRequestRepository(q Querier) *TransferRequestRepo {
	return &TransferRequestRepo{q: q}
}

// Create persiste una solicitud nueva (status pending).
func (r *TransferRequestRepo) Create(request *entity.TransferRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transfer_requests (id, tenant_id, item_id, from_location_id, from_department_id, to_department_id, to_location_id, qty, status, notes, creator_id, resolver_id, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.TenantID, request.ItemID, request.FromLocationID,
		request.FromDepartmentID, request.ToDepartmentID, nullable(request.ToLocationID),
		request.Qty, request.Status, request.Notes, request.CreatorID,
		nullable(request.ResolverID), request.CreatedAt, request.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("create transfer request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *TransferRequestRepo) GetByID(id string) (*entity.TransferRequest, error) {
	query := selectTransferRequest + ` WHERE id = $1`
	req, err := scanTransferRequest(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer request: %w", err)
	}
	return req, nil
}

// ListByStatus lista solicitudes de un tenant por estado, más reciente primero.
func (r *TransferRequestRepo) ListByStatus(tenantID, status string, limit, offset int) ([]*entity.TransferRequest, error) {
	query := selectTransferRequest + `
		WHERE tenant_id = $1 AND status = $2
		ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfer requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransferRequest
	for rows.Next() {
		req, err := scanTransferRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// CountByStatus cuenta solicitudes por estado (para paginación).
func (r *TransferRequestRepo) CountByStatus(tenantID, status string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM transfer_requests WHERE tenant_id = $1 AND status = $2`,
		tenantID, status,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count transfer requests: %w", err)
	}
	return total, nil
}

// ResolveIfPending aplica la transición pending → status con un update
// condicional. RowsAffected == 0 significa que otro actor resolvió primero
// (o que la solicitud no existe): el caller lo traduce a ErrInvalidState.
func (r *TransferRequestRepo) ResolveIfPending(id, status, toLocationID, resolverID string, resolvedAt time.Time) (bool, error) {
	query := `
		UPDATE transfer_requests
		SET status = $2,
		    to_location_id = COALESCE($3, to_location_id),
		    resolver_id = $4,
		    resolved_at = $5
		WHERE id = $1 AND status = 'pending'`
	cmd, err := r.q.Exec(context.Background(), query,
		id, status, nullable(toLocationID), resolverID, resolvedAt,
	)
	if err != nil {
		return false, fmt.Errorf("resolve transfer request: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

const selectTransferRequest = `
	SELECT id, tenant_id, item_id, from_location_id, from_department_id, to_department_id, to_location_id, qty, status, notes, creator_id, resolver_id, created_at, resolved_at
	FROM transfer_requests`

func scanTransferRequest(row pgx.Row) (*entity.TransferRequest, error) {
	var req entity.TransferRequest
	var toLoc, resolver *string
	if err := row.Scan(&req.ID, &req.TenantID, &req.ItemID, &req.FromLocationID,
		&req.FromDepartmentID, &req.ToDepartmentID, &toLoc, &req.Qty, &req.Status,
		&req.Notes, &req.CreatorID, &resolver, &req.CreatedAt, &req.ResolvedAt); err != nil {
		return nil, err
	}
	req.ToLocationID = orEmpty(toLoc)
	req.ResolverID = orEmpty(resolver)
	return &req, nil
}
