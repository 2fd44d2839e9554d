package dto

import "time"

// StockInRequest body para POST /api/inventory/stock/in.
type StockInRequest struct {
	InventoryItemID string `json:"inventory_item_id"`
	ToLocationID    string `json:"to_location_id"`
	Qty             int64  `json:"qty"`
	Reference       string `json:"reference,omitempty"`
	Note            string `json:"note,omitempty"`
}

// StockOutRequest body para POST /api/inventory/stock/out.
type StockOutRequest struct {
	InventoryItemID string `json:"inventory_item_id"`
	FromLocationID  string `json:"from_location_id"`
	Qty             int64  `json:"qty"`
	Reference       string `json:"reference,omitempty"`
	Note            string `json:"note,omitempty"`
}

// StockTransferBody body para POST /api/inventory/stock/transfer (traslado
// directo entre ubicaciones, sin flujo de aprobación).
type StockTransferBody struct {
	InventoryItemID string `json:"inventory_item_id"`
	FromLocationID  string `json:"from_location_id"`
	ToLocationID    string `json:"to_location_id"`
	Qty             int64  `json:"qty"`
	Reference       string `json:"reference,omitempty"`
	Note            string `json:"note,omitempty"`
}

// MovementResponse asiento del ledger en respuestas.
type MovementResponse struct {
	ID              string    `json:"id"`
	InventoryItemID string    `json:"inventory_item_id"`
	Type            string    `json:"type"`
	Qty             int64     `json:"qty"`
	FromLocationID  string    `json:"from_location_id,omitempty"`
	ToLocationID    string    `json:"to_location_id,omitempty"`
	Reference       string    `json:"reference,omitempty"`
	Note            string    `json:"note,omitempty"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Data        []MovementResponse `json:"data"`
	CurrentPage int                `json:"current_page"`
	PerPage     int                `json:"per_page"`
	Total       int                `json:"total"`
}

// StockByLocationDTO cantidad disponible en una ubicación concreta.
type StockByLocationDTO struct {
	LocationID string `json:"location_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Qty        int64  `json:"qty"`
}

// StockSummaryResponse respuesta de GET /api/items/{id}/stock.
// Total = suma de las entradas de StockByLocation; ubicaciones en cero se
// omiten del desglose.
type StockSummaryResponse struct {
	ItemID          string               `json:"item_id"`
	Total           int64                `json:"total"`
	StockByLocation []StockByLocationDTO `json:"stock_by_location"`
}
