package stockmovement_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/application/stockmovement"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/ledger"
	"github.com/tu-usuario/stockadmin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore emula la base: un mutex global juega el papel del SELECT FOR UPDATE
// (serializa transacciones de escritura) y el snapshot/restore juega el papel
// del rollback. Las lecturas fuera de tx toman el lock brevemente.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements map[string]*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		movements: make(map[string]*entity.StockMovement),
	}
}

func (s *memStore) snapshot() (map[string]*entity.Product, map[string]*entity.StockMovement) {
	prods := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		prods[id] = &cp
	}
	movs := make(map[string]*entity.StockMovement, len(s.movements))
	for id, m := range s.movements {
		cp := *m
		movs[id] = &cp
	}
	return prods, movs
}

// memTxRunner serializa las transacciones y restaura el estado si fn falla.
type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prods, movs := r.store.snapshot()
	err := fn(&memMovementRepo{store: r.store, inTx: true}, &memProductRepo{store: r.store, inTx: true})
	if err != nil {
		r.store.products = prods
		r.store.movements = movs
	}
	return err
}

type memProductRepo struct {
	store *memStore
	inTx  bool
}

func (r *memProductRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *memProductRepo) Create(p *entity.Product) error {
	defer r.lock()()
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	defer r.lock()()
	if existing, ok := r.store.products[p.ID]; ok {
		stock := existing.Stock
		cp := *p
		cp.Stock = stock
		r.store.products[p.ID] = &cp
	}
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.store.products, id)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	defer r.lock()()
	for _, p := range r.store.products {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) SlugExists(slug, excludeID string) (bool, error) {
	defer r.lock()()
	for _, p := range r.store.products {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memProductRepo) IncrementStock(id string, delta int) error {
	defer r.lock()()
	if p, ok := r.store.products[id]; ok {
		p.Stock += delta
	}
	return nil
}

func (r *memProductRepo) SetStock(id string, stock int) error {
	defer r.lock()()
	if p, ok := r.store.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *memProductRepo) List(p repository.Pagination) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

func (r *memProductRepo) GetAllActive() ([]*entity.Product, error) {
	return nil, nil
}

type memMovementRepo struct {
	store *memStore
	inTx  bool
}

func (r *memMovementRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	defer r.lock()()
	cp := *m
	r.store.movements[m.ID] = &cp
	return nil
}

func (r *memMovementRepo) Update(m *entity.StockMovement) error {
	defer r.lock()()
	if existing, ok := r.store.movements[m.ID]; ok {
		createdAt := existing.CreatedAt
		cp := *m
		cp.CreatedAt = createdAt
		r.store.movements[m.ID] = &cp
	}
	return nil
}

func (r *memMovementRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.store.movements, id)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	defer r.lock()()
	m, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMovementRepo) GetByIDExpanded(id string) (*entity.StockMovement, error) {
	defer r.lock()()
	m, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	if p, ok := r.store.products[m.ProductID]; ok {
		pc := *p
		cp.Product = &pc
	}
	return &cp, nil
}

func (r *memMovementRepo) ListByProduct(productID string) ([]entity.StockMovement, error) {
	defer r.lock()()
	var list []entity.StockMovement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			list = append(list, *m)
		}
	}
	return ledger.Chronological(list), nil
}

func (r *memMovementRepo) List(p repository.Pagination) ([]*entity.StockMovement, int, error) {
	return nil, 0, nil
}

func (r *memMovementRepo) ListByProductPaginated(productID string, p repository.Pagination) ([]*entity.StockMovement, int, error) {
	return nil, 0, nil
}

func (r *memMovementRepo) GetAllExpanded() ([]*entity.StockMovement, error) {
	defer r.lock()()
	var all []entity.StockMovement
	for _, m := range r.store.movements {
		all = append(all, *m)
	}
	all = ledger.Chronological(all)
	list := make([]*entity.StockMovement, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		cp := all[i]
		list = append(list, &cp)
	}
	return list, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes con lock a nivel de fila
//
// memTxRunner serializa transacciones completas, así que no puede reproducir
// el interleaving de READ COMMITTED. Aquí el lock se adquiere recién en
// GetByIDForUpdate (como el SELECT ... FOR UPDATE real): las lecturas hechas
// antes del lock pueden quedar obsoletas frente a una transacción concurrente
// ya confirmada.
// ──────────────────────────────────────────────────────────────────────────────

type rowLockTxRunner struct {
	store *memStore
	// afterMovementRead se dispara una sola vez tras una lectura de movimiento
	// previa al lock; permite intercalar una transacción competidora completa.
	afterMovementRead func()
}

func (r *rowLockTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	prod := &rowLockProductRepo{memProductRepo: memProductRepo{store: r.store, inTx: true}}
	mov := &rowLockMovementRepo{
		memMovementRepo: memMovementRepo{store: r.store, inTx: true},
		runner:          r,
		prod:            prod,
	}
	defer prod.release()

	err := fn(mov, prod)
	if err != nil && prod.locked {
		r.store.products = prod.snapProds
		r.store.movements = prod.snapMovs
	}
	return err
}

type rowLockProductRepo struct {
	memProductRepo
	locked    bool
	snapProds map[string]*entity.Product
	snapMovs  map[string]*entity.StockMovement
}

// GetByIDForUpdate toma el lock del store y el snapshot de rollback recién
// aquí: todo lo leído antes quedó fuera de la protección del lock.
func (r *rowLockProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	if !r.locked {
		r.store.mu.Lock()
		r.locked = true
		r.snapProds, r.snapMovs = r.store.snapshot()
	}
	return r.GetByID(id)
}

func (r *rowLockProductRepo) release() {
	if r.locked {
		r.locked = false
		r.store.mu.Unlock()
	}
}

type rowLockMovementRepo struct {
	memMovementRepo
	runner *rowLockTxRunner
	prod   *rowLockProductRepo
}

func (r *rowLockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	m, err := r.memMovementRepo.GetByID(id)
	if h := r.runner.afterMovementRead; h != nil && !r.prod.locked {
		r.runner.afterMovementRead = nil
		h()
	}
	return m, err
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newTestUseCase(t *testing.T, initialStock int) (*stockmovement.UseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	store.products["p1"] = &entity.Product{
		ID: "p1", Name: "Aceite 1L", SKU: "ACE-001", Slug: "aceite-1l",
		Stock: initialStock, Unit: "unidad", IsActive: true,
	}
	uc := stockmovement.NewUseCase(
		&memTxRunner{store: store},
		&memMovementRepo{store: store},
		&memProductRepo{store: store},
	)
	return uc, store
}

func record(t *testing.T, uc *stockmovement.UseCase, movType string, qty int) *entity.StockMovement {
	t.Helper()
	m, err := uc.Record(context.Background(), dto.StockMovementRequest{
		ProductID: "p1", Type: movType, Quantity: qty,
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

func currentStock(t *testing.T, store *memStore) int {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	p, ok := store.products["p1"]
	require.True(t, ok)
	return p.Stock
}

// assertInvariant verifica que el stock persistido coincide con el replay del
// historial completo del producto.
func assertInvariant(t *testing.T, store *memStore) {
	t.Helper()
	store.mu.Lock()
	var history []entity.StockMovement
	for _, m := range store.movements {
		if m.ProductID == "p1" {
			history = append(history, *m)
		}
	}
	stock := store.products["p1"].Stock
	store.mu.Unlock()

	assert.Equal(t, ledger.Replay(history), stock,
		"el stock debe coincidir con el replay del historial")
	assert.GreaterOrEqual(t, stock, 0, "el stock nunca debe ser negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Record
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_SecuenciaMantieneInvariante(t *testing.T) {
	uc, store := newTestUseCase(t, 0)

	record(t, uc, entity.MovementTypeIN, 100)
	assert.Equal(t, 100, currentStock(t, store))

	record(t, uc, entity.MovementTypeOUT, 30)
	assert.Equal(t, 70, currentStock(t, store))

	record(t, uc, entity.MovementTypeADJUST, 40)
	assert.Equal(t, 40, currentStock(t, store))

	record(t, uc, entity.MovementTypeOUT, 5)
	assert.Equal(t, 35, currentStock(t, store))

	assertInvariant(t, store)
}

func TestRecord_OUTInsuficiente_NadaPersiste(t *testing.T) {
	uc, store := newTestUseCase(t, 3)

	_, err := uc.Record(context.Background(), dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, currentStock(t, store), "el stock no debe cambiar")
	store.mu.Lock()
	assert.Empty(t, store.movements, "el movimiento rechazado no debe persistirse")
	store.mu.Unlock()
}

func TestRecord_ProductoInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t, 0)
	_, err := uc.Record(context.Background(), dto.StockMovementRequest{
		ProductID: "no-existe", Type: entity.MovementTypeIN, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRecord_ValidacionDeEntrada(t *testing.T) {
	uc, _ := newTestUseCase(t, 0)

	_, err := uc.Record(context.Background(), dto.StockMovementRequest{
		ProductID: "p1", Type: "TRANSFER", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record(context.Background(), dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_DevuelveMovimientoExpandido(t *testing.T) {
	uc, _ := newTestUseCase(t, 0)
	m := record(t, uc, entity.MovementTypeIN, 10)
	require.NotNil(t, m.Product)
	assert.Equal(t, "p1", m.Product.ID)
	assert.Equal(t, 10, m.Product.Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos OUT compitiendo por el mismo stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_OUTConcurrentes_SoloUnoGana(t *testing.T) {
	uc, store := newTestUseCase(t, 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Record(context.Background(), dto.StockMovementRequest{
				ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 5,
			})
		}(i)
	}
	wg.Wait()

	oks, fails := 0, 0
	for _, err := range errs {
		if err == nil {
			oks++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			fails++
		}
	}
	assert.Equal(t, 1, oks, "exactamente un OUT debe ganar")
	assert.Equal(t, 1, fails, "el otro debe rechazarse por stock insuficiente")
	assert.Equal(t, 0, currentStock(t, store))
	assertInvariant(t, store)
}

func TestRecord_MuchosOUTConcurrentes(t *testing.T) {
	const workers = 20
	uc, store := newTestUseCase(t, 10)

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Record(context.Background(), dto.StockMovementRequest{
				ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 1,
			})
		}(i)
	}
	wg.Wait()

	oks := 0
	for _, err := range errs {
		if err == nil {
			oks++
		}
	}
	assert.Equal(t, 10, oks, "deben ganar exactamente tantos OUT como unidades había")
	assert.Equal(t, 0, currentStock(t, store))
	assertInvariant(t, store)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia bajo READ COMMITTED: lecturas previas al lock
//
// Revise y Delete leen el movimiento antes de bloquear el producto. Si en
// ese hueco otra transacción confirma una revisión o eliminación del mismo
// movimiento, la lectura previa queda obsoleta: el efecto a revertir debe
// ser el vigente bajo el lock, no el leído antes.
// ──────────────────────────────────────────────────────────────────────────────

func newRowLockUseCase(t *testing.T) (*stockmovement.UseCase, *memStore, *rowLockTxRunner) {
	t.Helper()
	store := newMemStore()
	store.products["p1"] = &entity.Product{
		ID: "p1", Name: "Aceite 1L", SKU: "ACE-001", Slug: "aceite-1l",
		Stock: 0, Unit: "unidad", IsActive: true,
	}
	runner := &rowLockTxRunner{store: store}
	uc := stockmovement.NewUseCase(
		runner,
		&memMovementRepo{store: store},
		&memProductRepo{store: store},
	)
	return uc, store, runner
}

func TestRevise_CompetidoraConfirmaAntesDelLock_NoRevierteEfectoObsoleto(t *testing.T) {
	uc, store, runner := newRowLockUseCase(t)

	record(t, uc, entity.MovementTypeIN, 10)
	out := record(t, uc, entity.MovementTypeOUT, 4)
	assert.Equal(t, 6, currentStock(t, store))

	// Tras la lectura previa al lock, una revisión competidora (OUT 4 → OUT 2)
	// corre completa y confirma, dejando el stock en 8.
	runner.afterMovementRead = func() {
		_, err := uc.Revise(context.Background(), out.ID, dto.StockMovementRequest{
			ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 2,
		})
		require.NoError(t, err)
	}

	_, err := uc.Revise(context.Background(), out.ID, dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 3,
	})
	require.NoError(t, err)

	// Revertir el OUT 4 obsoleto daría base 12 y stock 9; lo vigente bajo el
	// lock es OUT 2, así que la base es 10 y el replay de [IN 10, OUT 3] da 7.
	assert.Equal(t, 7, currentStock(t, store))
	assertInvariant(t, store)
}

func TestDelete_CompetidoraReviseConfirmaAntesDelLock_RevierteLoVigente(t *testing.T) {
	uc, store, runner := newRowLockUseCase(t)

	record(t, uc, entity.MovementTypeIN, 10)
	out := record(t, uc, entity.MovementTypeOUT, 4)

	// El movimiento a eliminar cambia (OUT 4 → OUT 2) antes de que la
	// eliminación obtenga el lock: debe revertirse el OUT 2 vigente.
	runner.afterMovementRead = func() {
		_, err := uc.Revise(context.Background(), out.ID, dto.StockMovementRequest{
			ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 2,
		})
		require.NoError(t, err)
	}

	require.NoError(t, uc.Delete(context.Background(), out.ID))
	assert.Equal(t, 10, currentStock(t, store))
	assertInvariant(t, store)
}

func TestRevise_MovimientoEliminadoAntesDelLock_NotFound(t *testing.T) {
	uc, store, runner := newRowLockUseCase(t)

	record(t, uc, entity.MovementTypeIN, 10)
	out := record(t, uc, entity.MovementTypeOUT, 4)

	runner.afterMovementRead = func() {
		require.NoError(t, uc.Delete(context.Background(), out.ID))
	}

	_, err := uc.Revise(context.Background(), out.ID, dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 2,
	})
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
	assert.Equal(t, 10, currentStock(t, store),
		"queda el stock que dejó la eliminación competidora")
	assertInvariant(t, store)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetAll
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAll_SinPaginar_NoTrunca(t *testing.T) {
	uc, store := newTestUseCase(t, 0)

	t0 := time.Now()
	store.mu.Lock()
	for i := 0; i < 150; i++ {
		id := fmt.Sprintf("m%03d", i)
		store.movements[id] = &entity.StockMovement{
			ID: id, ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 1,
			CreatedAt: t0.Add(time.Duration(i) * time.Minute),
		}
	}
	store.mu.Unlock()

	list, err := uc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 150, "el listado completo no debe truncarse por paginación")
	assert.Equal(t, "m149", list[0].ID, "más recientes primero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RestauraStockPrevio(t *testing.T) {
	uc, store := newTestUseCase(t, 0)

	record(t, uc, entity.MovementTypeIN, 10)
	m := record(t, uc, entity.MovementTypeOUT, 4)
	assert.Equal(t, 6, currentStock(t, store))

	require.NoError(t, uc.Delete(context.Background(), m.ID))
	assert.Equal(t, 10, currentStock(t, store))
	assertInvariant(t, store)
}

func TestDelete_ADJUSTRecomputaPorReplay(t *testing.T) {
	// [IN 10, ADJUST 50, OUT 5] y se elimina el ADJUST: el replay del
	// historial restante {IN 10, OUT 5} da 5, no 45.
	uc, store := newTestUseCase(t, 0)

	record(t, uc, entity.MovementTypeIN, 10)
	adjust := record(t, uc, entity.MovementTypeADJUST, 50)
	record(t, uc, entity.MovementTypeOUT, 5)
	assert.Equal(t, 45, currentStock(t, store))

	require.NoError(t, uc.Delete(context.Background(), adjust.ID))
	assert.Equal(t, 5, currentStock(t, store))
	assertInvariant(t, store)
}

func TestDelete_INQueRespaldaOUT_RecortaACero(t *testing.T) {
	// Se elimina el IN que respaldaba un OUT posterior: el replay parcial va
	// negativo y el stock final se recorta a cero.
	uc, store := newTestUseCase(t, 0)

	in := record(t, uc, entity.MovementTypeIN, 5)
	record(t, uc, entity.MovementTypeOUT, 5)
	assert.Equal(t, 0, currentStock(t, store))

	require.NoError(t, uc.Delete(context.Background(), in.ID))
	assert.Equal(t, 0, currentStock(t, store))
	assertInvariant(t, store)
}

func TestDelete_MovimientoInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t, 0)
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Revise
// ──────────────────────────────────────────────────────────────────────────────

func TestRevise_UltimoMovimiento_InversaAritmetica(t *testing.T) {
	uc, store := newTestUseCase(t, 0)

	record(t, uc, entity.MovementTypeIN, 10)
	out := record(t, uc, entity.MovementTypeOUT, 4)
	assert.Equal(t, 6, currentStock(t, store))

	revised, err := uc.Revise(context.Background(), out.ID, dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, revised.Quantity)
	assert.Equal(t, 8, currentStock(t, store))
	assertInvariant(t, store)
}

func TestRevise_ConservaCreatedAt(t *testing.T) {
	uc, _ := newTestUseCase(t, 0)

	record(t, uc, entity.MovementTypeIN, 10)
	out := record(t, uc, entity.MovementTypeOUT, 4)

	revised, err := uc.Revise(context.Background(), out.ID, dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 2,
	})
	require.NoError(t, err)
	assert.True(t, out.CreatedAt.Equal(revised.CreatedAt),
		"la revisión no debe mover el movimiento en el ledger")
}

func TestRevise_NoUltimo_RecomputaHistorialCompleto(t *testing.T) {
	// Escenario de punta a punta: IN 100, OUT 30, ADJUST 40. Se revisa el
	// OUT a 10: el ADJUST posterior absorbe el cambio y el stock queda 40.
	uc, store := newTestUseCase(t, 0)

	record(t, uc, entity.MovementTypeIN, 100)
	out := record(t, uc, entity.MovementTypeOUT, 30)
	record(t, uc, entity.MovementTypeADJUST, 40)
	assert.Equal(t, 40, currentStock(t, store))

	_, err := uc.Revise(context.Background(), out.ID, dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, currentStock(t, store),
		"un ADJUST posterior define el valor final sin importar la revisión previa")
	assertInvariant(t, store)
}

func TestRevise_ADJUSTRevisado_RecomputaBasePorReplay(t *testing.T) {
	uc, store := newTestUseCase(t, 0)

	record(t, uc, entity.MovementTypeIN, 10)
	adjust := record(t, uc, entity.MovementTypeADJUST, 50)
	assert.Equal(t, 50, currentStock(t, store))

	// ADJUST → IN 7: la base se recomputa (replay sin el ADJUST da 10) y
	// luego se aplica IN 7.
	_, err := uc.Revise(context.Background(), adjust.ID, dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 17, currentStock(t, store))
	assertInvariant(t, store)
}

func TestRevise_OUTMayorQueBase_Rechazado(t *testing.T) {
	uc, store := newTestUseCase(t, 0)

	record(t, uc, entity.MovementTypeIN, 10)
	out := record(t, uc, entity.MovementTypeOUT, 4)

	// Base tras revertir el OUT 4: 10. OUT 11 dejaría el stock negativo.
	_, err := uc.Revise(context.Background(), out.ID, dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 11,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 6, currentStock(t, store), "nada debe cambiar si la revisión falla")
	assertInvariant(t, store)
}

func TestRevise_NoPuedeCambiarDeProducto(t *testing.T) {
	uc, _ := newTestUseCase(t, 0)

	m := record(t, uc, entity.MovementTypeIN, 10)
	_, err := uc.Revise(context.Background(), m.ID, dto.StockMovementRequest{
		ProductID: "p2", Type: entity.MovementTypeIN, Quantity: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRevise_MovimientoInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t, 0)
	_, err := uc.Revise(context.Background(), "no-existe", dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}
