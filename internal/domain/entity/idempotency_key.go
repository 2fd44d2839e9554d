package entity

import "time"

// IdempotencyKey registra una mutación en curso o ya procesada para que el
// reintento del cliente (header Idempotency-Key) reciba la misma respuesta en
// lugar de ejecutar la operación dos veces. Única por (tenant_id, key).
// StatusCode 0 significa que la primera ejecución todavía no terminó.
type IdempotencyKey struct {
	TenantID   string
	Key        string
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	CreatedAt  time.Time
}

// InProgress indica que la clave fue reclamada pero aún no tiene respuesta.
func (k *IdempotencyKey) InProgress() bool {
	return k.StatusCode == 0
}
