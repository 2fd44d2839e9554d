package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	appstock "github.com/jhoicas/stockflow-api/internal/application/stock"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// UseCase orquesta el ciclo de vida de las solicitudes de transferencia entre
// departamentos: pending → approved | rejected.
//
//   - Crear debita de inmediato la ubicación origen (el stock sale del origen
//     antes de conocerse el destino) y deja la solicitud en pending.
//   - Aprobar acredita la ubicación elegida por el receptor y cierra.
//   - Rechazar reembolsa el origen por la cantidad completa y cierra.
//
// Cada operación es una sola transacción; la transición de estado se aplica
// con un update condicional sobre status = pending, así que ante dos
// resoluciones concurrentes gana exactamente una y la otra recibe
// ErrInvalidState sin efectos en el ledger.
type UseCase struct {
	txRunner       TxRunner
	requestRepo    repository.TransferRequestRepository
	itemRepo       repository.ItemRepository
	locationRepo   repository.LocationRepository
	departmentRepo repository.DepartmentRepository
	userRepo       repository.UserRepository
}

// NewUseCase construye el orquestador.
func NewUseCase(
	txRunner TxRunner,
	requestRepo repository.TransferRequestRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	departmentRepo repository.DepartmentRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		requestRepo:    requestRepo,
		itemRepo:       itemRepo,
		locationRepo:   locationRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
	}
}

// Create crea la solicitud en pending y debita (ítem, ubicación origen) en la
// misma transacción. Si el origen no cubre la cantidad falla con
// ErrInsufficientStock y no queda ni solicitud ni asiento.
func (uc *UseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateTransferRequest) (*entity.TransferRequest, error) {
	if in.InventoryItemID == "" || in.FromLocationID == "" || in.ToDepartmentID == "" || in.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if actor.DepartmentID == "" {
		// Sin departamento asignado no hay origen desde el cual solicitar.
		return nil, domain.ErrForbidden
	}
	if in.ToDepartmentID == actor.DepartmentID {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(in.InventoryItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TenantID != actor.TenantID {
		return nil, domain.ErrNotFound
	}
	loc, err := uc.locationRepo.GetByID(in.FromLocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.TenantID != actor.TenantID {
		return nil, domain.ErrNotFound
	}
	toDept, err := uc.departmentRepo.GetByID(in.ToDepartmentID)
	if err != nil {
		return nil, err
	}
	if toDept == nil || toDept.TenantID != actor.TenantID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	req := &entity.TransferRequest{
		ID:               uuid.New().String(),
		TenantID:         actor.TenantID,
		ItemID:           in.InventoryItemID,
		FromLocationID:   in.FromLocationID,
		FromDepartmentID: actor.DepartmentID,
		ToDepartmentID:   in.ToDepartmentID,
		Qty:              in.Qty,
		Status:           entity.TransferStatusPending,
		Notes:            in.Notes,
		CreatorID:        actor.UserID,
		CreatedAt:        now,
	}

	err = uc.txRunner.RunTransfer(ctx, func(
		requestRepo repository.TransferRequestRepository,
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		if err := requestRepo.Create(req); err != nil {
			return err
		}
		// Débito inmediato: el asiento referencia la solicitud.
		mov := &entity.StockMovement{
			ID:             uuid.New().String(),
			TenantID:       actor.TenantID,
			ItemID:         req.ItemID,
			Type:           entity.MovementTypeOut,
			Qty:            req.Qty,
			FromLocationID: req.FromLocationID,
			Reference:      req.ID,
			Note:           "solicitud de transferencia",
			UserID:         actor.UserID,
			CreatedAt:      now,
		}
		return appstock.ApplyMovement(movRepo, stockRepo, itemRepo, mov, now)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Approve cierra la solicitud como approved acreditando la ubicación indicada
// por el receptor. Idempotencia: sobre una solicitud ya resuelta devuelve
// ErrInvalidState y no escribe ningún asiento (jamás doble crédito).
func (uc *UseCase) Approve(ctx context.Context, actor domain.Actor, requestID, toLocationID string) (*entity.TransferRequest, error) {
	if toLocationID == "" {
		return nil, domain.ErrInvalidLocation
	}
	req, err := uc.getOwned(requestID, actor.TenantID)
	if err != nil {
		return nil, err
	}
	if toLocationID == req.FromLocationID {
		// Acreditar el propio origen no es una aprobación: eso es un rechazo.
		return nil, domain.ErrInvalidLocation
	}
	loc, err := uc.locationRepo.GetByID(toLocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.TenantID != actor.TenantID {
		return nil, domain.ErrInvalidLocation
	}

	now := time.Now()
	err = uc.txRunner.RunTransfer(ctx, func(
		requestRepo repository.TransferRequestRepository,
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		// Transición condicional: exactamente un ganador ante carreras.
		won, err := requestRepo.ResolveIfPending(req.ID, entity.TransferStatusApproved, toLocationID, actor.UserID, now)
		if err != nil {
			return err
		}
		if !won {
			return domain.ErrInvalidState
		}
		mov := &entity.StockMovement{
			ID:           uuid.New().String(),
			TenantID:     req.TenantID,
			ItemID:       req.ItemID,
			Type:         entity.MovementTypeIn,
			Qty:          req.Qty,
			ToLocationID: toLocationID,
			Reference:    req.ID,
			Note:         "transferencia aprobada",
			UserID:       actor.UserID,
			CreatedAt:    now,
		}
		return appstock.ApplyMovement(movRepo, stockRepo, itemRepo, mov, now)
	})
	if err != nil {
		return nil, err
	}

	req.Status = entity.TransferStatusApproved
	req.ToLocationID = toLocationID
	req.ResolverID = actor.UserID
	req.ResolvedAt = &now
	return req, nil
}

// Reject cierra la solicitud como rejected reembolsando la ubicación origen
// por la cantidad completa: el total del ítem queda igual que antes de crear
// la solicitud (conservación).
func (uc *UseCase) Reject(ctx context.Context, actor domain.Actor, requestID string) (*entity.TransferRequest, error) {
	req, err := uc.getOwned(requestID, actor.TenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.txRunner.RunTransfer(ctx, func(
		requestRepo repository.TransferRequestRepository,
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		won, err := requestRepo.ResolveIfPending(req.ID, entity.TransferStatusRejected, "", actor.UserID, now)
		if err != nil {
			return err
		}
		if !won {
			return domain.ErrInvalidState
		}
		// Asiento compensatorio: acredita el origen original.
		mov := &entity.StockMovement{
			ID:           uuid.New().String(),
			TenantID:     req.TenantID,
			ItemID:       req.ItemID,
			Type:         entity.MovementTypeIn,
			Qty:          req.Qty,
			ToLocationID: req.FromLocationID,
			Reference:    req.ID,
			Note:         "transferencia rechazada, reembolso al origen",
			UserID:       actor.UserID,
			CreatedAt:    now,
		}
		return appstock.ApplyMovement(movRepo, stockRepo, itemRepo, mov, now)
	})
	if err != nil {
		return nil, err
	}

	req.Status = entity.TransferStatusRejected
	req.ResolverID = actor.UserID
	req.ResolvedAt = &now
	return req, nil
}

// List lista solicitudes por estado (pending por defecto) con ítem,
// departamentos y creador embebidos, como las consume el SPA.
func (uc *UseCase) List(_ context.Context, actor domain.Actor, status string, page dto.PageRequest) (*dto.TransferRequestListResponse, error) {
	if status == "" {
		status = entity.TransferStatusPending
	}
	switch status {
	case entity.TransferStatusPending, entity.TransferStatusApproved, entity.TransferStatusRejected:
	default:
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	requests, err := uc.requestRepo.ListByStatus(actor.TenantID, status, page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.requestRepo.CountByStatus(actor.TenantID, status)
	if err != nil {
		return nil, err
	}

	out := &dto.TransferRequestListResponse{
		Data:        make([]dto.TransferRequestResponse, 0, len(requests)),
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		Total:       total,
	}

	// Caches por página: los mismos ítems/departamentos se repiten mucho.
	items := map[string]*dto.ItemSummary{}
	departments := map[string]*dto.DepartmentSummary{}
	users := map[string]*dto.UserSummary{}

	for _, req := range requests {
		resp := ToResponse(req)
		resp.Item = uc.itemSummary(items, req.ItemID)
		resp.FromDepartment = uc.departmentSummary(departments, req.FromDepartmentID)
		resp.ToDepartment = uc.departmentSummary(departments, req.ToDepartmentID)
		resp.Creator = uc.userSummary(users, req.CreatorID)
		out.Data = append(out.Data, resp)
	}
	return out, nil
}

// getOwned obtiene la solicitud verificando tenant.
func (uc *UseCase) getOwned(requestID, tenantID string) (*entity.TransferRequest, error) {
	req, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil || req.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return req, nil
}

func (uc *UseCase) itemSummary(cache map[string]*dto.ItemSummary, id string) *dto.ItemSummary {
	if s, ok := cache[id]; ok {
		return s
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil || item == nil {
		cache[id] = nil
		return nil
	}
	s := &dto.ItemSummary{ID: item.ID, SKU: item.SKU, Name: item.Name}
	cache[id] = s
	return s
}

func (uc *UseCase) departmentSummary(cache map[string]*dto.DepartmentSummary, id string) *dto.DepartmentSummary {
	if s, ok := cache[id]; ok {
		return s
	}
	dept, err := uc.departmentRepo.GetByID(id)
	if err != nil || dept == nil {
		cache[id] = nil
		return nil
	}
	s := &dto.DepartmentSummary{ID: dept.ID, Name: dept.Name}
	cache[id] = s
	return s
}

func (uc *UseCase) userSummary(cache map[string]*dto.UserSummary, id string) *dto.UserSummary {
	if s, ok := cache[id]; ok {
		return s
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil || user == nil {
		cache[id] = nil
		return nil
	}
	s := &dto.UserSummary{ID: user.ID, FirstName: user.FirstName, LastName: user.LastName}
	cache[id] = s
	return s
}

// ToResponse convierte la entidad al shape HTTP (sin resúmenes embebidos).
func ToResponse(req *entity.TransferRequest) dto.TransferRequestResponse {
	return dto.TransferRequestResponse{
		ID:               req.ID,
		InventoryItemID:  req.ItemID,
		FromLocationID:   req.FromLocationID,
		FromDepartmentID: req.FromDepartmentID,
		ToDepartmentID:   req.ToDepartmentID,
		ToLocationID:     req.ToLocationID,
		Qty:              req.Qty,
		Status:           req.Status,
		Notes:            req.Notes,
		CreatedAt:        req.CreatedAt,
		ResolvedAt:       req.ResolvedAt,
	}
}
