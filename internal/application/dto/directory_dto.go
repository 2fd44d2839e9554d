package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	UOM          string          `json:"uom"`
	ReorderLevel int64           `json:"reorder_level,omitempty"`
	UnitValue    decimal.Decimal `json:"unit_value,omitempty"`
}

// ItemResponse representación de un ítem.
type ItemResponse struct {
	ID           string          `json:"id"`
	TenantID     string          `json:"tenant_id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	UOM          string          `json:"uom"`
	ReorderLevel int64           `json:"reorder_level"`
	UnitValue    decimal.Decimal `json:"unit_value"`
	StockOnHand  int64           `json:"stock_on_hand"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LocationResponse representación de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDepartmentRequest body para POST /api/departments.
type CreateDepartmentRequest struct {
	Name        string           `json:"name"`
	BudgetLimit *decimal.Decimal `json:"budget_limit,omitempty"`
	Currency    string           `json:"currency,omitempty"`
}

// DepartmentResponse representación de un departamento.
type DepartmentResponse struct {
	ID          string           `json:"id"`
	TenantID    string           `json:"tenant_id"`
	Name        string           `json:"name"`
	BudgetLimit *decimal.Decimal `json:"budget_limit,omitempty"`
	Currency    string           `json:"currency"`
	CreatedAt   time.Time        `json:"created_at"`
}

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
type DashboardStatsResponse struct {
	LowStockCount   int             `json:"low_stock_count"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
}
