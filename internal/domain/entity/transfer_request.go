package entity

import "time"

// Estados de una solicitud de transferencia. pending es el inicial; approved
// y rejected son terminales: no hay transiciones desde un estado terminal.
const (
	TransferStatusPending  = "pending"
	TransferStatusApproved = "approved"
	TransferStatusRejected = "rejected"
)

// TransferRequest es una solicitud de traslado de stock entre departamentos
// que requiere aprobación del receptor.
//
// Al crearse se debita Qty de (ItemID, FromLocationID): el stock sale del
// origen antes de conocerse el destino. Aprobar acredita la ubicación elegida
// por el receptor; rechazar reembolsa el origen. Ambos cierres son atómicos
// con el asiento del ledger correspondiente.
type TransferRequest struct {
	ID               string
	TenantID         string
	ItemID           string
	FromLocationID   string
	FromDepartmentID string
	ToDepartmentID   string
	ToLocationID     string // se fija al aprobar; vacío en pending/rejected
	Qty              int64
	Status           string // pending, approved, rejected
	Notes            string
	CreatorID        string
	ResolverID       string // quién aprobó o rechazó
	CreatedAt        time.Time
	ResolvedAt       *time.Time // nil mientras está pending
}

// IsTerminal indica si la solicitud ya no admite transiciones.
func (r *TransferRequest) IsTerminal() bool {
	return r.Status == TransferStatusApproved || r.Status == TransferStatusRejected
}
