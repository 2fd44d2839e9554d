package stock

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre la proyección de stock y el
// ledger: desglose por ubicación, listado paginado de movimientos, kárdex PDF
// y métricas del dashboard. Las lecturas ven todo lo commiteado antes de
// iniciar (la proyección se materializa en la misma tx que cada asiento).
type QueryUseCase struct {
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
	stockRepo    repository.StockRepository
	movRepo      repository.StockMovementRepository
	reportGen    MovementReportGenerator
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	reportGen MovementReportGenerator,
) *QueryUseCase {
	return &QueryUseCase{
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		stockRepo:    stockRepo,
		movRepo:      movRepo,
		reportGen:    reportGen,
	}
}

// GetStock devuelve el stock de un ítem desglosado por ubicación.
// Las ubicaciones con cantidad neta cero se omiten del desglose pero cuentan
// como cero en el total.
func (uc *QueryUseCase) GetStock(_ context.Context, tenantID, itemID string) (*dto.StockSummaryResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}

	stocks, err := uc.stockRepo.ListByItem(tenantID, itemID)
	if err != nil {
		return nil, err
	}

	out := &dto.StockSummaryResponse{
		ItemID:          itemID,
		StockByLocation: []dto.StockByLocationDTO{},
	}
	for _, s := range stocks {
		out.Total += s.Qty
		if s.Qty == 0 {
			continue
		}
		entry := dto.StockByLocationDTO{LocationID: s.LocationID, Qty: s.Qty}
		if loc, err := uc.locationRepo.GetByID(s.LocationID); err == nil && loc != nil {
			entry.Code = loc.Code
			entry.Name = loc.Name
		}
		out.StockByLocation = append(out.StockByLocation, entry)
	}
	return out, nil
}

// ListMovements lista el ledger de un ítem, paginado, más reciente primero.
func (uc *QueryUseCase) ListMovements(_ context.Context, tenantID, itemID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	movements, err := uc.movRepo.ListByItem(tenantID, itemID, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.movRepo.CountByItem(tenantID, itemID)
	if err != nil {
		return nil, err
	}

	out := &dto.MovementListResponse{
		Data:        make([]dto.MovementResponse, 0, len(movements)),
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		Total:       total,
	}
	for _, m := range movements {
		out.Data = append(out.Data, dto.MovementResponse{
			ID:              m.ID,
			InventoryItemID: m.ItemID,
			Type:            m.Type,
			Qty:             m.Qty,
			FromLocationID:  m.FromLocationID,
			ToLocationID:    m.ToLocationID,
			Reference:       m.Reference,
			Note:            m.Note,
			UserID:          m.UserID,
			CreatedAt:       m.CreatedAt,
		})
	}
	return out, nil
}

// Máximo de asientos incluidos en el kárdex PDF.
const reportMaxMovements = 500

// MovementReportPDF genera el kárdex PDF de un ítem (asientos más recientes).
func (uc *QueryUseCase) MovementReportPDF(ctx context.Context, tenantID, itemID string) ([]byte, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByItem(tenantID, itemID, reportMaxMovements, 0)
	if err != nil {
		return nil, err
	}
	return uc.reportGen.GenerateMovementReport(ctx, item, movements)
}

// DashboardStats métricas para el dashboard del SPA: ítems bajo punto de
// reorden y valor total del inventario.
func (uc *QueryUseCase) DashboardStats(_ context.Context, tenantID string) (*dto.DashboardStatsResponse, error) {
	lowStock, err := uc.itemRepo.CountBelowReorder(tenantID)
	if err != nil {
		return nil, err
	}
	totalValue, err := uc.itemRepo.TotalStockValue(tenantID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		LowStockCount:   lowStock,
		TotalStockValue: totalValue,
	}, nil
}
