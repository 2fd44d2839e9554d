package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.IdempotencyKeyRepository = (*IdempotencyKeyRepo)(nil)

// IdempotencyKeyRepo implementación de IdempotencyKeyRepository sobre
// PostgreSQL. El constraint único (tenant_id, key) es el que arbitra entre
// dos reintentos simultáneos: solo uno logra reclamar la clave.
type IdempotencyKeyRepo struct {
	q Querier
}

// NewIdempotencyKeyRepository construye el adaptador de claves de idempotencia.
func NewIdempotencyKeyRepository(q Querier) *IdempotencyKeyRepo {
	return &IdempotencyKeyRepo{q: q}
}

// Create reclama la clave con status 0 (en curso).
func (r *IdempotencyKeyRepo) Create(k *entity.IdempotencyKey) error {
	query := `
		INSERT INTO idempotency_keys (tenant_id, key, method, path, status_code, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		k.TenantID, k.Key, k.Method, k.Path, k.StatusCode, k.Body, k.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create idempotency key: %w", err)
	}
	return nil
}

// Get obtiene la clave del tenant; (nil, nil) si no existe.
func (r *IdempotencyKeyRepo) Get(tenantID, key string) (*entity.IdempotencyKey, error) {
	query := `
		SELECT tenant_id, key, method, path, status_code, body, created_at
		FROM idempotency_keys WHERE tenant_id = $1 AND key = $2`
	var k entity.IdempotencyKey
	err := r.q.QueryRow(context.Background(), query, tenantID, key).Scan(
		&k.TenantID, &k.Key, &k.Method, &k.Path, &k.StatusCode, &k.Body, &k.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency key: %w", err)
	}
	return &k, nil
}

// SaveResponse guarda la respuesta final de la mutación.
func (r *IdempotencyKeyRepo) SaveResponse(tenantID, key string, statusCode int, body []byte) error {
	query := `
		UPDATE idempotency_keys SET status_code = $3, body = $4
		WHERE tenant_id = $1 AND key = $2`
	_, err := r.q.Exec(context.Background(), query, tenantID, key, statusCode, body)
	if err != nil {
		return fmt.Errorf("save idempotency response: %w", err)
	}
	return nil
}

// Delete libera la clave.
func (r *IdempotencyKeyRepo) Delete(tenantID, key string) error {
	query := `DELETE FROM idempotency_keys WHERE tenant_id = $1 AND key = $2`
	_, err := r.q.Exec(context.Background(), query, tenantID, key)
	if err != nil {
		return fmt.Errorf("delete idempotency key: %w", err)
	}
	return nil
}
