package transfer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/transfer"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore guarda todo el estado de los fakes. Los repos fuera de transacción
// toman el mutex por operación; el TxRunner lo toma para la transacción
// completa y hace snapshot/restore para emular Commit/Rollback.
type memStore struct {
	mu          sync.Mutex
	items       map[string]*entity.Item
	locations   map[string]*entity.Location
	departments map[string]*entity.Department
	users       map[string]*entity.User
	stocks      map[string]*entity.Stock
	movements   []*entity.StockMovement
	requests    map[string]*entity.TransferRequest
}

func newMemStore() *memStore {
	return &memStore{
		items:       map[string]*entity.Item{},
		locations:   map[string]*entity.Location{},
		departments: map[string]*entity.Department{},
		users:       map[string]*entity.User{},
		stocks:      map[string]*entity.Stock{},
		requests:    map[string]*entity.TransferRequest{},
	}
}

func stockKey(tenantID, itemID, locationID string) string {
	return tenantID + "|" + itemID + "|" + locationID
}

type storeSnapshot struct {
	items     map[string]entity.Item
	stocks    map[string]entity.Stock
	requests  map[string]entity.TransferRequest
	movements int
}

func (s *memStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		items:     map[string]entity.Item{},
		stocks:    map[string]entity.Stock{},
		requests:  map[string]entity.TransferRequest{},
		movements: len(s.movements),
	}
	for k, v := range s.items {
		snap.items[k] = *v
	}
	for k, v := range s.stocks {
		snap.stocks[k] = *v
	}
	for k, v := range s.requests {
		snap.requests[k] = *v
	}
	return snap
}

func (s *memStore) restore(snap storeSnapshot) {
	s.items = map[string]*entity.Item{}
	for k, v := range snap.items {
		item := v
		s.items[k] = &item
	}
	s.stocks = map[string]*entity.Stock{}
	for k, v := range snap.stocks {
		st := v
		s.stocks[k] = &st
	}
	s.requests = map[string]*entity.TransferRequest{}
	for k, v := range snap.requests {
		req := v
		s.requests[k] = &req
	}
	s.movements = s.movements[:snap.movements]
}

// lockGuard evita doble lock cuando el repo corre dentro de una transacción
// (el TxRunner ya tiene el mutex).
type lockGuard struct {
	s    *memStore
	inTx bool
}

func (g lockGuard) lock() func() {
	if g.inTx {
		return func() {}
	}
	g.s.mu.Lock()
	return g.s.mu.Unlock
}

type memItemRepo struct{ lockGuard }

func (r *memItemRepo) Create(item *entity.Item) error {
	defer r.lock()()
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	defer r.lock()()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Item, error) {
	return nil, nil
}

func (r *memItemRepo) AddToStockOnHand(id string, delta int64) error {
	defer r.lock()()
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.StockOnHand += delta
	return nil
}

func (r *memItemRepo) CountBelowReorder(tenantID string) (int, error) { return 0, nil }

func (r *memItemRepo) TotalStockValue(tenantID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type memLocationRepo struct{ lockGuard }

func (r *memLocationRepo) Create(loc *entity.Location) error {
	defer r.lock()()
	cp := *loc
	r.s.locations[loc.ID] = &cp
	return nil
}

func (r *memLocationRepo) GetByID(id string) (*entity.Location, error) {
	defer r.lock()()
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLocationRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Location, error) {
	return nil, nil
}

type memDepartmentRepo struct{ lockGuard }

func (r *memDepartmentRepo) Create(d *entity.Department) error {
	defer r.lock()()
	cp := *d
	r.s.departments[d.ID] = &cp
	return nil
}

func (r *memDepartmentRepo) GetByID(id string) (*entity.Department, error) {
	defer r.lock()()
	d, ok := r.s.departments[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDepartmentRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Department, error) {
	return nil, nil
}

type memUserRepo struct{ lockGuard }

func (r *memUserRepo) Create(u *entity.User) error {
	defer r.lock()()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	defer r.lock()()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmailAndTenant(email, tenantID string) (*entity.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) UpdatePassword(id, hash string) error { return nil }

type memStockRepo struct{ lockGuard }

func (r *memStockRepo) Get(tenantID, itemID, locationID string) (*entity.Stock, error) {
	defer r.lock()()
	st, ok := r.s.stocks[stockKey(tenantID, itemID, locationID)]
	if !ok {
		return &entity.Stock{TenantID: tenantID, ItemID: itemID, LocationID: locationID}, nil
	}
	cp := *st
	return &cp, nil
}

func (r *memStockRepo) GetForUpdate(tenantID, itemID, locationID string) (*entity.Stock, error) {
	return r.Get(tenantID, itemID, locationID)
}

func (r *memStockRepo) Upsert(stock *entity.Stock) error {
	defer r.lock()()
	cp := *stock
	r.s.stocks[stockKey(stock.TenantID, stock.ItemID, stock.LocationID)] = &cp
	return nil
}

func (r *memStockRepo) Add(tenantID, itemID, locationID string, qty int64) error {
	defer r.lock()()
	k := stockKey(tenantID, itemID, locationID)
	st, ok := r.s.stocks[k]
	if !ok {
		st = &entity.Stock{TenantID: tenantID, ItemID: itemID, LocationID: locationID}
		r.s.stocks[k] = st
	}
	st.Qty += qty
	return nil
}

func (r *memStockRepo) ListByItem(tenantID, itemID string) ([]*entity.Stock, error) {
	defer r.lock()()
	var out []*entity.Stock
	for _, st := range r.s.stocks {
		if st.TenantID == tenantID && st.ItemID == itemID {
			cp := *st
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memMovementRepo struct{ lockGuard }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	defer r.lock()()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	defer r.lock()()
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) ListByItem(tenantID, itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	defer r.lock()()
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.TenantID == tenantID && m.ItemID == itemID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMovementRepo) CountByItem(tenantID, itemID string) (int, error) {
	list, _ := r.ListByItem(tenantID, itemID, 0, 0)
	return len(list), nil
}

type memRequestRepo struct{ lockGuard }

func (r *memRequestRepo) Create(req *entity.TransferRequest) error {
	defer r.lock()()
	cp := *req
	r.s.requests[req.ID] = &cp
	return nil
}

func (r *memRequestRepo) GetByID(id string) (*entity.TransferRequest, error) {
	defer r.lock()()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *memRequestRepo) ListByStatus(tenantID, status string, limit, offset int) ([]*entity.TransferRequest, error) {
	defer r.lock()()
	var out []*entity.TransferRequest
	for _, req := range r.s.requests {
		if req.TenantID == tenantID && req.Status == status {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRequestRepo) CountByStatus(tenantID, status string) (int, error) {
	list, _ := r.ListByStatus(tenantID, status, 0, 0)
	return len(list), nil
}

func (r *memRequestRepo) ResolveIfPending(id, status, toLocationID, resolverID string, resolvedAt time.Time) (bool, error) {
	defer r.lock()()
	req, ok := r.s.requests[id]
	if !ok || req.Status != entity.TransferStatusPending {
		return false, nil
	}
	req.Status = status
	if toLocationID != "" {
		req.ToLocationID = toLocationID
	}
	req.ResolverID = resolverID
	req.ResolvedAt = &resolvedAt
	return true, nil
}

// memTxRunner toma el mutex por la transacción completa y deshace todo si la
// función falla, igual que el Rollback real.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) RunTransfer(_ context.Context, fn func(
	requestRepo repository.TransferRequestRepository,
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshot()
	inTx := lockGuard{s: r.s, inTx: true}
	err := fn(&memRequestRepo{inTx}, &memMovementRepo{inTx}, &memStockRepo{inTx}, &memItemRepo{inTx})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testTenant    = "tenant-1"
	itemTonerID   = "item-toner"
	locCentralID  = "loc-central"
	locNorteID    = "loc-norte"
	deptComprasID = "dept-compras"
	deptVentasID  = "dept-ventas"
	userAnaID     = "user-ana"
	userLuisID    = "user-luis"
)

type fixture struct {
	store *memStore
	uc    *transfer.UseCase
	ana   domain.Actor // solicitante, departamento compras
	luis  domain.Actor // aprobador, departamento ventas
}

// newFixture arma un tenant con un ítem, dos ubicaciones, dos departamentos y
// dos usuarios, con initialQty unidades en la ubicación central.
func newFixture(t *testing.T, initialQty int64) *fixture {
	t.Helper()
	s := newMemStore()
	now := time.Now()

	s.items[itemTonerID] = &entity.Item{
		ID: itemTonerID, TenantID: testTenant, SKU: "TON-01", Name: "Tóner negro",
		UOM: "und", StockOnHand: initialQty, CreatedAt: now, UpdatedAt: now,
	}
	s.locations[locCentralID] = &entity.Location{ID: locCentralID, TenantID: testTenant, Code: "BOD-C", Name: "Bodega central"}
	s.locations[locNorteID] = &entity.Location{ID: locNorteID, TenantID: testTenant, Code: "BOD-N", Name: "Bodega norte"}
	s.departments[deptComprasID] = &entity.Department{ID: deptComprasID, TenantID: testTenant, Name: "Compras"}
	s.departments[deptVentasID] = &entity.Department{ID: deptVentasID, TenantID: testTenant, Name: "Ventas"}
	s.users[userAnaID] = &entity.User{ID: userAnaID, TenantID: testTenant, DepartmentID: deptComprasID, FirstName: "Ana", LastName: "García"}
	s.users[userLuisID] = &entity.User{ID: userLuisID, TenantID: testTenant, DepartmentID: deptVentasID, FirstName: "Luis", LastName: "Rojas"}

	if initialQty > 0 {
		s.stocks[stockKey(testTenant, itemTonerID, locCentralID)] = &entity.Stock{
			TenantID: testTenant, ItemID: itemTonerID, LocationID: locCentralID, Qty: initialQty, UpdatedAt: now,
		}
	}

	g := lockGuard{s: s}
	uc := transfer.NewUseCase(
		&memTxRunner{s: s},
		&memRequestRepo{g},
		&memItemRepo{g},
		&memLocationRepo{g},
		&memDepartmentRepo{g},
		&memUserRepo{g},
	)
	return &fixture{
		store: s,
		uc:    uc,
		ana:   domain.Actor{TenantID: testTenant, UserID: userAnaID, DepartmentID: deptComprasID, Role: entity.RoleMember},
		luis:  domain.Actor{TenantID: testTenant, UserID: userLuisID, DepartmentID: deptVentasID, Role: entity.RoleMember},
	}
}

func (f *fixture) stockAt(locationID string) int64 {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	st, ok := f.store.stocks[stockKey(testTenant, itemTonerID, locationID)]
	if !ok {
		return 0
	}
	return st.Qty
}

func (f *fixture) stockOnHand() int64 {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.items[itemTonerID].StockOnHand
}

func (f *fixture) movementCount() int {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return len(f.store.movements)
}

func (f *fixture) createRequest(t *testing.T, qty int64) *entity.TransferRequest {
	t.Helper()
	req, err := f.uc.Create(context.Background(), f.ana, dto.CreateTransferRequest{
		InventoryItemID: itemTonerID,
		FromLocationID:  locCentralID,
		ToDepartmentID:  deptVentasID,
		Qty:             qty,
	})
	require.NoError(t, err)
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

// Crear una solicitud debita el origen de inmediato y la deja en pending.
func TestCreate_DebitaOrigenYQuedaPendiente(t *testing.T) {
	f := newFixture(t, 15)

	req := f.createRequest(t, 10)

	assert.Equal(t, entity.TransferStatusPending, req.Status)
	assert.Equal(t, deptComprasID, req.FromDepartmentID, "el origen es el departamento del solicitante")
	assert.Empty(t, req.ToLocationID, "la ubicación destino no se conoce hasta aprobar")
	assert.Equal(t, int64(5), f.stockAt(locCentralID), "el origen queda debitado")
	assert.Equal(t, int64(5), f.stockOnHand(), "el agregado del ítem refleja el débito")
	require.Equal(t, 1, f.movementCount())

	f.store.mu.Lock()
	mov := f.store.movements[0]
	f.store.mu.Unlock()
	assert.Equal(t, entity.MovementTypeOut, mov.Type)
	assert.Equal(t, req.ID, mov.Reference, "el asiento referencia la solicitud")
	assert.Equal(t, locCentralID, mov.FromLocationID)
}

// Sin stock suficiente no queda ni solicitud ni asiento: la transacción
// completa se revierte.
func TestCreate_StockInsuficiente_SinEfectos(t *testing.T) {
	f := newFixture(t, 5)

	_, err := f.uc.Create(context.Background(), f.ana, dto.CreateTransferRequest{
		InventoryItemID: itemTonerID,
		FromLocationID:  locCentralID,
		ToDepartmentID:  deptVentasID,
		Qty:             10,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), f.stockAt(locCentralID), "el stock no debe cambiar")
	assert.Equal(t, 0, f.movementCount(), "no debe quedar asiento")
	f.store.mu.Lock()
	assert.Empty(t, f.store.requests, "no debe quedar solicitud")
	f.store.mu.Unlock()
}

// Un usuario sin departamento no puede solicitar.
func TestCreate_SinDepartamento_Forbidden(t *testing.T) {
	f := newFixture(t, 15)
	actor := domain.Actor{TenantID: testTenant, UserID: userAnaID, Role: entity.RoleMember}

	_, err := f.uc.Create(context.Background(), actor, dto.CreateTransferRequest{
		InventoryItemID: itemTonerID,
		FromLocationID:  locCentralID,
		ToDepartmentID:  deptVentasID,
		Qty:             5,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Transferir al propio departamento no tiene sentido.
func TestCreate_MismoDepartamento_Invalido(t *testing.T) {
	f := newFixture(t, 15)

	_, err := f.uc.Create(context.Background(), f.ana, dto.CreateTransferRequest{
		InventoryItemID: itemTonerID,
		FromLocationID:  locCentralID,
		ToDepartmentID:  deptComprasID,
		Qty:             5,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aprobar
// ──────────────────────────────────────────────────────────────────────────────

// Aprobar acredita la ubicación elegida; el total del ítem vuelve al valor
// previo (conservación: salió del origen, entró al destino).
func TestApprove_AcreditaDestinoElegido(t *testing.T) {
	f := newFixture(t, 15)
	req := f.createRequest(t, 10)

	resolved, err := f.uc.Approve(context.Background(), f.luis, req.ID, locNorteID)
	require.NoError(t, err)

	assert.Equal(t, entity.TransferStatusApproved, resolved.Status)
	assert.Equal(t, locNorteID, resolved.ToLocationID)
	assert.Equal(t, userLuisID, resolved.ResolverID)
	require.NotNil(t, resolved.ResolvedAt)

	assert.Equal(t, int64(5), f.stockAt(locCentralID))
	assert.Equal(t, int64(10), f.stockAt(locNorteID))
	assert.Equal(t, int64(15), f.stockOnHand(), "conservación: el total vuelve al valor inicial")
	assert.Equal(t, 2, f.movementCount(), "un out al crear + un in al aprobar")
}

// Aprobar exige ubicación destino.
func TestApprove_SinUbicacion_InvalidLocation(t *testing.T) {
	f := newFixture(t, 15)
	req := f.createRequest(t, 10)

	_, err := f.uc.Approve(context.Background(), f.luis, req.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

// Aprobar hacia la misma ubicación origen sería un rechazo disfrazado de
// aprobación: se rechaza y la solicitud sigue pendiente.
func TestApprove_DestinoIgualAlOrigen_InvalidLocation(t *testing.T) {
	f := newFixture(t, 15)
	req := f.createRequest(t, 10)

	_, err := f.uc.Approve(context.Background(), f.luis, req.ID, locCentralID)
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)

	f.store.mu.Lock()
	status := f.store.requests[req.ID].Status
	f.store.mu.Unlock()
	assert.Equal(t, entity.TransferStatusPending, status, "la solicitud sigue pendiente")
	assert.Equal(t, 1, f.movementCount(), "solo el débito de la creación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazar
// ──────────────────────────────────────────────────────────────────────────────

// Rechazar reembolsa la cantidad completa al origen: el estado del stock queda
// igual que antes de crear la solicitud.
func TestReject_ReembolsaOrigenCompleto(t *testing.T) {
	f := newFixture(t, 15)
	req := f.createRequest(t, 10)
	require.Equal(t, int64(5), f.stockAt(locCentralID))

	resolved, err := f.uc.Reject(context.Background(), f.luis, req.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.TransferStatusRejected, resolved.Status)
	assert.Equal(t, int64(15), f.stockAt(locCentralID), "el origen recupera la cantidad completa")
	assert.Equal(t, int64(15), f.stockOnHand())
	assert.Equal(t, 2, f.movementCount(), "el reembolso es un asiento compensatorio, no se borra el débito")
}

// ──────────────────────────────────────────────────────────────────────────────
// Inmutabilidad terminal
// ──────────────────────────────────────────────────────────────────────────────

// Una solicitud resuelta no admite más transiciones: re-aprobar o rechazar
// devuelve ErrInvalidState sin tocar el ledger (jamás doble crédito).
func TestResolver_SolicitudYaResuelta_InvalidState(t *testing.T) {
	f := newFixture(t, 15)
	req := f.createRequest(t, 10)

	_, err := f.uc.Approve(context.Background(), f.luis, req.ID, locNorteID)
	require.NoError(t, err)
	movsAfterApprove := f.movementCount()

	_, err = f.uc.Approve(context.Background(), f.luis, req.ID, locNorteID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "re-aprobar debe fallar")

	_, err = f.uc.Reject(context.Background(), f.luis, req.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "rechazar una aprobada debe fallar")

	assert.Equal(t, movsAfterApprove, f.movementCount(), "ningún asiento extra")
	assert.Equal(t, int64(10), f.stockAt(locNorteID), "sin doble crédito")
	assert.Equal(t, int64(15), f.stockOnHand())
}

// Ante resoluciones concurrentes sobre la misma solicitud gana exactamente
// una; el resto recibe ErrInvalidState y no deja rastro en el ledger.
func TestResolver_Concurrente_ExactamenteUnGanador(t *testing.T) {
	f := newFixture(t, 100)
	req := f.createRequest(t, 40)

	const resolvers = 8
	errs := make(chan error, resolvers)
	var wg sync.WaitGroup
	for i := 0; i < resolvers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var err error
			if n%2 == 0 {
				_, err = f.uc.Approve(context.Background(), f.luis, req.ID, locNorteID)
			} else {
				_, err = f.uc.Reject(context.Background(), f.luis, req.ID)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var wins, losses int
	for err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidState)
			losses++
		}
	}
	assert.Equal(t, 1, wins, "exactamente una resolución debe ganar")
	assert.Equal(t, resolvers-1, losses)
	assert.Equal(t, 2, f.movementCount(), "un out al crear + un solo asiento de resolución")
	assert.Equal(t, int64(100), f.stockOnHand(), "conservación bajo concurrencia")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PendientesConResumenes(t *testing.T) {
	f := newFixture(t, 50)
	req := f.createRequest(t, 10)

	out, err := f.uc.List(context.Background(), f.luis, "", dto.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Data, 1)
	got := out.Data[0]
	assert.Equal(t, req.ID, got.ID)
	require.NotNil(t, got.Item)
	assert.Equal(t, "TON-01", got.Item.SKU)
	require.NotNil(t, got.FromDepartment)
	assert.Equal(t, "Compras", got.FromDepartment.Name)
	require.NotNil(t, got.ToDepartment)
	assert.Equal(t, "Ventas", got.ToDepartment.Name)
	require.NotNil(t, got.Creator)
	assert.Equal(t, "Ana", got.Creator.FirstName)
}

func TestList_EstadoInvalido(t *testing.T) {
	f := newFixture(t, 50)
	_, err := f.uc.List(context.Background(), f.luis, "cancelled", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
