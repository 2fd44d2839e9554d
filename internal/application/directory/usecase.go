// Package directory gestiona los catálogos del tenant: ítems, ubicaciones y
// departamentos. Son datos de referencia; el stock vive en el ledger.
package directory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// UseCase CRUD de catálogos, siempre scopeado al tenant del actor.
type UseCase struct {
	itemRepo       repository.ItemRepository
	locationRepo   repository.LocationRepository
	departmentRepo repository.DepartmentRepository
}

// NewUseCase construye el caso de uso de catálogos.
func NewUseCase(
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	departmentRepo repository.DepartmentRepository,
) *UseCase {
	return &UseCase{
		itemRepo:       itemRepo,
		locationRepo:   locationRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateItem crea un ítem del catálogo. El stock inicial siempre es cero:
// las existencias entran después por movimientos del ledger.
func (uc *UseCase) CreateItem(_ context.Context, actor domain.Actor, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel < 0 || in.UnitValue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	uom := in.UOM
	if uom == "" {
		uom = "und"
	}
	now := time.Now()
	item := &entity.Item{
		ID:           uuid.New().String(),
		TenantID:     actor.TenantID,
		SKU:          in.SKU,
		Name:         in.Name,
		Category:     in.Category,
		UOM:          uom,
		ReorderLevel: in.ReorderLevel,
		UnitValue:    in.UnitValue,
		StockOnHand:  0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetItem obtiene un ítem del tenant.
func (uc *UseCase) GetItem(_ context.Context, actor domain.Actor, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TenantID != actor.TenantID {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// ListItems lista los ítems del tenant, paginado.
func (uc *UseCase) ListItems(_ context.Context, actor domain.Actor, page dto.PageRequest) ([]dto.ItemResponse, error) {
	page.DefaultPage()
	items, err := uc.itemRepo.ListByTenant(actor.TenantID, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// CreateLocation crea una ubicación física del tenant.
func (uc *UseCase) CreateLocation(_ context.Context, actor domain.Actor, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	loc := &entity.Location{
		ID:        uuid.New().String(),
		TenantID:  actor.TenantID,
		Code:      in.Code,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locationRepo.Create(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// ListLocations lista las ubicaciones del tenant, paginado.
func (uc *UseCase) ListLocations(_ context.Context, actor domain.Actor, page dto.PageRequest) ([]dto.LocationResponse, error) {
	page.DefaultPage()
	locations, err := uc.locationRepo.ListByTenant(actor.TenantID, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// CreateDepartment crea un departamento del tenant.
func (uc *UseCase) CreateDepartment(_ context.Context, actor domain.Actor, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.BudgetLimit != nil && in.BudgetLimit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = "COP"
	}
	now := time.Now()
	dept := &entity.Department{
		ID:          uuid.New().String(),
		TenantID:    actor.TenantID,
		Name:        in.Name,
		BudgetLimit: in.BudgetLimit,
		Currency:    currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.departmentRepo.Create(dept); err != nil {
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

// GetDepartment obtiene un departamento del tenant.
func (uc *UseCase) GetDepartment(_ context.Context, actor domain.Actor, id string) (*dto.DepartmentResponse, error) {
	dept, err := uc.departmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dept == nil || dept.TenantID != actor.TenantID {
		return nil, domain.ErrNotFound
	}
	return toDepartmentResponse(dept), nil
}

// ListDepartments lista los departamentos del tenant, paginado.
func (uc *UseCase) ListDepartments(_ context.Context, actor domain.Actor, page dto.PageRequest) ([]dto.DepartmentResponse, error) {
	page.DefaultPage()
	departments, err := uc.departmentRepo.ListByTenant(actor.TenantID, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, *toDepartmentResponse(d))
	}
	return out, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           it.ID,
		TenantID:     it.TenantID,
		SKU:          it.SKU,
		Name:         it.Name,
		Category:     it.Category,
		UOM:          it.UOM,
		ReorderLevel: it.ReorderLevel,
		UnitValue:    it.UnitValue,
		StockOnHand:  it.StockOnHand,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		TenantID:  l.TenantID,
		Code:      l.Code,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:          d.ID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		BudgetLimit: d.BudgetLimit,
		Currency:    d.Currency,
		CreatedAt:   d.CreatedAt,
	}
}
