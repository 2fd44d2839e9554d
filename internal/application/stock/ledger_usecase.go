package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// LedgerUseCase registra movimientos de stock de forma transaccional
// (in, out, transfer) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// El ledger es append-only: las correcciones se hacen con asientos
// compensatorios, nunca editando filas existentes.
type LedgerUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
	}
}

// MovementInput entrada para registrar un movimiento.
// in: ItemID, ToLocationID, Qty. out: ItemID, FromLocationID, Qty.
// transfer: ItemID, FromLocationID, ToLocationID (distintas), Qty.
type MovementInput struct {
	ItemID         string
	FromLocationID string
	ToLocationID   string
	Type           string
	Qty            int64
	Reference      string
	Note           string
}

// RegisterMovement valida el movimiento, verifica que ítem y ubicaciones
// pertenezcan al tenant, y dentro de una transacción bloquea la fila de stock,
// aplica el cambio y escribe el asiento. Commit o Rollback: nunca queda un
// asiento sin su proyección ni al revés.
func (uc *LedgerUseCase) RegisterMovement(ctx context.Context, actor domain.Actor, input MovementInput) (*entity.StockMovement, error) {
	if err := validateMovement(input); err != nil {
		return nil, err
	}

	item, err := uc.itemRepo.GetByID(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.TenantID != actor.TenantID {
		return nil, domain.ErrNotFound
	}
	for _, locID := range []string{input.FromLocationID, input.ToLocationID} {
		if locID == "" {
			continue
		}
		loc, err := uc.locationRepo.GetByID(locID)
		if err != nil {
			return nil, err
		}
		if loc == nil || loc.TenantID != actor.TenantID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		TenantID:       actor.TenantID,
		ItemID:         input.ItemID,
		Type:           input.Type,
		Qty:            input.Qty,
		FromLocationID: input.FromLocationID,
		ToLocationID:   input.ToLocationID,
		Reference:      input.Reference,
		Note:           input.Note,
		UserID:         actor.UserID,
		CreatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		return ApplyMovement(movRepo, stockRepo, itemRepo, mov, now)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// validateMovement aplica las invariantes del asiento: qty > 0, ubicaciones
// requeridas según el tipo, from ≠ to en transfer.
func validateMovement(input MovementInput) error {
	if input.ItemID == "" || input.Qty <= 0 {
		return domain.ErrInvalidMovement
	}
	switch input.Type {
	case entity.MovementTypeIn:
		if input.ToLocationID == "" || input.FromLocationID != "" {
			return domain.ErrInvalidMovement
		}
	case entity.MovementTypeOut:
		if input.FromLocationID == "" || input.ToLocationID != "" {
			return domain.ErrInvalidMovement
		}
	case entity.MovementTypeTransfer:
		if input.FromLocationID == "" || input.ToLocationID == "" {
			return domain.ErrInvalidMovement
		}
		if input.FromLocationID == input.ToLocationID {
			return domain.ErrInvalidMovement
		}
	default:
		return domain.ErrInvalidMovement
	}
	return nil
}

// ApplyMovement ejecuta un asiento contra los repos de la transacción en
// curso: bloquea la fila origen si hay débito, verifica disponibilidad,
// actualiza proyección y agregado del ítem, y persiste el asiento.
// Lo usa este caso de uso y el orquestador de transferencias (misma tx).
func ApplyMovement(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
	mov *entity.StockMovement,
	now time.Time,
) error {
	// Débito: bloquear la fila origen (SELECT FOR UPDATE) serializa el
	// chequeo de disponibilidad frente a débitos concurrentes del mismo par.
	if mov.FromLocationID != "" {
		origin, err := stockRepo.GetForUpdate(mov.TenantID, mov.ItemID, mov.FromLocationID)
		if err != nil {
			return err
		}
		if origin.Qty < mov.Qty {
			return domain.ErrInsufficientStock
		}
		origin.Qty -= mov.Qty
		origin.UpdatedAt = now
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
	}

	// Crédito: el destino nunca puede quedar negativo, así que no hace falta
	// bloquear; el upsert aditivo suma en la base y dos créditos concurrentes
	// al mismo par quedan ambos aplicados.
	if mov.ToLocationID != "" {
		if err := stockRepo.Add(mov.TenantID, mov.ItemID, mov.ToLocationID, mov.Qty); err != nil {
			return err
		}
	}

	// Agregado por ítem: in suma, out resta, transfer no cambia el total.
	switch mov.Type {
	case entity.MovementTypeIn:
		if err := itemRepo.AddToStockOnHand(mov.ItemID, mov.Qty); err != nil {
			return err
		}
	case entity.MovementTypeOut:
		if err := itemRepo.AddToStockOnHand(mov.ItemID, -mov.Qty); err != nil {
			return err
		}
	}

	return movRepo.Create(mov)
}

// RegisterIn registra una entrada desde el request HTTP.
func (uc *LedgerUseCase) RegisterIn(ctx context.Context, actor domain.Actor, in dto.StockInRequest) (*entity.StockMovement, error) {
	return uc.RegisterMovement(ctx, actor, MovementInput{
		ItemID:       in.InventoryItemID,
		ToLocationID: in.ToLocationID,
		Type:         entity.MovementTypeIn,
		Qty:          in.Qty,
		Reference:    in.Reference,
		Note:         in.Note,
	})
}

// RegisterOut registra una salida desde el request HTTP.
func (uc *LedgerUseCase) RegisterOut(ctx context.Context, actor domain.Actor, in dto.StockOutRequest) (*entity.StockMovement, error) {
	return uc.RegisterMovement(ctx, actor, MovementInput{
		ItemID:         in.InventoryItemID,
		FromLocationID: in.FromLocationID,
		Type:           entity.MovementTypeOut,
		Qty:            in.Qty,
		Reference:      in.Reference,
		Note:           in.Note,
	})
}

// RegisterTransfer registra un traslado directo entre ubicaciones desde el
// request HTTP (sin flujo de aprobación).
func (uc *LedgerUseCase) RegisterTransfer(ctx context.Context, actor domain.Actor, in dto.StockTransferBody) (*entity.StockMovement, error) {
	return uc.RegisterMovement(ctx, actor, MovementInput{
		ItemID:         in.InventoryItemID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Type:           entity.MovementTypeTransfer,
		Qty:            in.Qty,
		Reference:      in.Reference,
		Note:           in.Note,
	})
}
