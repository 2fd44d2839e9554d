package dto

import "time"

// CreateTransferRequest body para POST /api/inventory/stock-transfers.
// El departamento origen es el del usuario autenticado.
type CreateTransferRequest struct {
	InventoryItemID string `json:"inventory_item_id"`
	FromLocationID  string `json:"from_location_id"`
	ToDepartmentID  string `json:"to_department_id"`
	Qty             int64  `json:"qty"`
	Notes           string `json:"notes,omitempty"`
}

// ApproveTransferRequest body para POST /api/inventory/stock-transfers/{id}/approve.
type ApproveTransferRequest struct {
	ToLocationID string `json:"to_location_id"`
}

// ItemSummary resumen de ítem embebido en listados de transferencias.
type ItemSummary struct {
	ID   string `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// DepartmentSummary resumen de departamento embebido en listados.
type DepartmentSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserSummary resumen de usuario embebido en listados.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TransferRequestResponse solicitud de transferencia como la consume el SPA
// (con ítem, departamentos y creador embebidos).
type TransferRequestResponse struct {
	ID               string             `json:"id"`
	InventoryItemID  string             `json:"inventory_item_id"`
	FromLocationID   string             `json:"from_location_id"`
	FromDepartmentID string             `json:"from_department_id"`
	ToDepartmentID   string             `json:"to_department_id"`
	ToLocationID     string             `json:"to_location_id,omitempty"`
	Qty              int64              `json:"qty"`
	Status           string             `json:"status"`
	Notes            string             `json:"notes,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	ResolvedAt       *time.Time         `json:"resolved_at,omitempty"`
	Item             *ItemSummary       `json:"item,omitempty"`
	FromDepartment   *DepartmentSummary `json:"from_department,omitempty"`
	ToDepartment     *DepartmentSummary `json:"to_department,omitempty"`
	Creator          *UserSummary       `json:"creator,omitempty"`
}

// TransferRequestListResponse listado paginado de solicitudes.
type TransferRequestListResponse struct {
	Data        []TransferRequestResponse `json:"data"`
	CurrentPage int                       `json:"current_page"`
	PerPage     int                       `json:"per_page"`
	Total       int                       `json:"total"`
}
