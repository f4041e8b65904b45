package movement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/movement"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. El fakeTxRunner toma un
// snapshot del estado antes del callback y lo restaura si falla, reproduciendo
// la semántica Commit/Rollback que en producción da PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

const (
	tenantID = "00000000-0000-0000-0000-00000000000a"
	otherTen = "00000000-0000-0000-0000-00000000000b"
	actorID  = "00000000-0000-0000-0000-000000000001"
	itemID   = "00000000-0000-0000-0000-000000000010"
	chamberA = "00000000-0000-0000-0000-000000000020"
	chamberB = "00000000-0000-0000-0000-000000000021"
)

type state struct {
	items     map[string]*entity.InventoryItem
	movements []*entity.Movement
}

func (s *state) clone() *state {
	c := &state{items: make(map[string]*entity.InventoryItem, len(s.items))}
	for id, it := range s.items {
		cp := *it
		c.items[id] = &cp
	}
	c.movements = append([]*entity.Movement(nil), s.movements...)
	return c
}

type fakeItemRepo struct {
	st *state
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error { r.st.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := r.st.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}
func (r *fakeItemRepo) GetByGTIN(companyID, gtin string) (*entity.InventoryItem, error) {
	for _, it := range r.st.items {
		if it.CompanyID == companyID && it.GTIN == gtin {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeItemRepo) Update(item *entity.InventoryItem) error { r.st.items[item.ID] = item; return nil }
func (r *fakeItemRepo) ListByCompany(string, int, int) ([]*entity.InventoryItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) Search(string, string, int, int) ([]*entity.InventoryItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) ListBelowMinimum(string) ([]*entity.InventoryItem, error) { return nil, nil }
func (r *fakeItemRepo) Delete(id string) error                                   { delete(r.st.items, id); return nil }
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}
func (r *fakeItemRepo) IncrementQuantity(id string, quantity int64) error {
	it, ok := r.st.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity += quantity
	return nil
}
func (r *fakeItemRepo) DecrementQuantity(id string, quantity int64) (bool, error) {
	it, ok := r.st.items[id]
	if !ok || it.Quantity < quantity {
		return false, nil
	}
	it.Quantity -= quantity
	return true, nil
}
func (r *fakeItemRepo) UpdateChamber(id, chamberID string) error {
	it, ok := r.st.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.ChamberID = chamberID
	return nil
}
func (r *fakeItemRepo) UpdateCost(id string, cost decimal.Decimal) error {
	it, ok := r.st.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Cost = cost
	return nil
}

type fakeMovementRepo struct {
	st *state
	// failOnCreate simula una falla de infraestructura entre la mutación del
	// artículo y el alta en el libro, para verificar la atomicidad.
	failOnCreate bool
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if r.failOnCreate {
		return errors.New("insert movement: conexión perdida")
	}
	r.st.movements = append(r.st.movements, m)
	return nil
}
func (r *fakeMovementRepo) GetByID(string) (*entity.Movement, error) { return nil, nil }
func (r *fakeMovementRepo) ListByItem(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByCompany(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}

type fakeChamberRepo struct {
	chambers map[string]*entity.Chamber
}

func (r *fakeChamberRepo) Create(c *entity.Chamber) error { r.chambers[c.ID] = c; return nil }
func (r *fakeChamberRepo) GetByID(id string) (*entity.Chamber, error) {
	c, ok := r.chambers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeChamberRepo) Update(*entity.Chamber) error { return nil }
func (r *fakeChamberRepo) ListByCompany(string, int, int) ([]*entity.Chamber, error) {
	return nil, nil
}
func (r *fakeChamberRepo) Delete(string) error { return nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *fakeUserRepo) FindByEmail(string) (*entity.User, error)             { return nil, nil }
func (r *fakeUserRepo) GetByEmailAndCompany(string, string) (*entity.User, error) { return nil, nil }

type fakeTxRunner struct {
	st           *state
	failOnCreate bool
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	itemRepo repository.InventoryItemRepository,
) error) error {
	snapshot := t.st.clone()
	err := fn(&fakeMovementRepo{st: t.st, failOnCreate: t.failOnCreate}, &fakeItemRepo{st: t.st})
	if err != nil {
		// Rollback: restaurar el estado previo a la transacción
		*t.st = *snapshot
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso bajo prueba
// ──────────────────────────────────────────────────────────────────────────────

func newFixture(failOnCreate bool) (*movement.RegisterMovementUseCase, *state) {
	st := &state{items: map[string]*entity.InventoryItem{
		itemID: {
			ID:          itemID,
			CompanyID:   tenantID,
			ChamberID:   chamberA,
			Description: "Caja de pescado congelado",
			GTIN:        "7701234567890",
			Quantity:    5,
			MinQuantity: 2,
			Cost:        decimal.NewFromInt(100),
		},
	}}
	chambers := &fakeChamberRepo{chambers: map[string]*entity.Chamber{
		chamberA: {ID: chamberA, CompanyID: tenantID, Name: "Cámara principal"},
		chamberB: {ID: chamberB, CompanyID: tenantID, Name: "Cámara secundaria"},
	}}
	users := &fakeUserRepo{users: map[string]*entity.User{
		actorID: {ID: actorID, CompanyID: tenantID, Role: entity.RoleBodeguero, Status: "active"},
	}}
	uc := movement.NewRegisterMovementUseCase(
		&fakeTxRunner{st: st, failOnCreate: failOnCreate},
		&fakeItemRepo{st: st},
		chambers,
		users,
	)
	return uc, st
}

// ──────────────────────────────────────────────────────────────────────────────
// ENTRY
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStockYActualizaCosto(t *testing.T) {
	uc, st := newFixture(false)
	cost := decimal.NewFromInt(120)

	mov, err := uc.RegisterMovement(context.Background(), movement.MovementInputDTO{
		CompanyID:       tenantID,
		UserID:          actorID,
		InventoryItemID: itemID,
		Type:            entity.MovementTypeENTRY,
		Quantity:        3,
		Cost:            &cost,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8), st.items[itemID].Quantity)
	assert.True(t, st.items[itemID].Cost.Equal(cost))
	require.Len(t, st.movements, 1)
	assert.Equal(t, entity.MovementTypeENTRY, mov.Type)
	assert.Nil(t, mov.OriginChamberID)
}

func TestRegisterMovement_EntradaSinCostoNoTocaElCosto(t *testing.T) {
	uc, st := newFixture(false)
	original := st.items[itemID].Cost

	_, err := uc.RegisterMovement(context.Background(), movement.MovementInputDTO{
		CompanyID:       tenantID,
		UserID:          actorID,
		InventoryItemID: itemID,
		Type:            entity.MovementTypeENTRY,
		Quantity:        1,
	})

	require.NoError(t, err)
	assert.True(t, st.items[itemID].Cost.Equal(original))
}

// ──────────────────────────────────────────────────────────────────────────────
// EGRESS
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EgresoExigeMotivo(t *testing.T) {
	uc, st := newFixture(false)

	_, err := uc.RegisterMovement(context.Background(), movement.MovementInputDTO{
		CompanyID:       tenantID,
		UserID:          actorID,
		InventoryItemID: itemID,
		Type:            entity.MovementTypeEGRESS,
		Quantity:        1,
		// Reason vacío
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(5), st.items[itemID].Quantity, "nada debe mutar si la validación falla")
}

func TestRegisterMovement_EgresoNoDejaStockNegativo(t *testing.T) {
	uc, st := newFixture(false)

	// quantity=5: un egreso de 6 se rechaza sin mutar nada
	_, err := uc.RegisterMovement(context.Background(), movement.MovementInputDTO{
		CompanyID:       tenantID,
		UserID:          actorID,
		InventoryItemID: itemID,
		Type:            entity.MovementTypeEGRESS,
		Quantity:        6,
		Reason:          "venta mostrador",
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), st.items[itemID].Quantity)
	assert.Empty(t, st.movements, "un egreso rechazado no deja entrada en el libro")
}

func TestRegisterMovement_EgresoExactoDejaCero(t *testing.T) {
	uc, st := newFixture(false)

	_, err := uc.RegisterMovement(context.Background(), movement.MovementInputDTO{
		CompanyID:       tenantID,
		UserID:          actorID,
		InventoryItemID: itemID,
		Type:            entity.MovementTypeEGRESS,
		Quantity:        5,
		Reason:          "decomiso sanitario",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), st.items[itemID].Quantity)
	require.Len(t, st.movements, 1)
	assert.Equal(t, "decomiso sanitario", st.movements[0].Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// TRANSFER
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_TrasladoPreservaCantidadYCapturaOrigen(t *testing.T) {
	uc, st := newFixture(false)

	mov, err := uc.RegisterMovement(context.Background(), movement.MovementInputDTO{
		CompanyID:            tenantID,
		UserID:               actorID,
		InventoryItemID:      itemID,
		Type:                 entity.MovementTypeTRANSFER,
		Quantity:             5,
		DestinationChamberID: chamberB,
		Reason:               "rotación de frío",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), st.items[itemID].Quantity, "un traslado no cambia la cantidad")
	assert.Equal(t, chamberB, st.items[itemID].ChamberID)
	require.NotNil(t, mov.OriginChamberID)
	assert.Equal(t, chamberA, *mov.OriginChamberID, "el origen es la cámara previa a la mutación")
	require.NotNil(t, mov.DestinationChamberID)
	assert.Equal(t, chamberB, *mov.DestinationChamberID)
}

func TestRegisterMovement_TrasladoALaMismaCamaraEsInvalido(t *testing.T) {
	uc, _ := newFixture(false)

	_, err := uc.RegisterMovement(context.Background(), movement.MovementInputDTO{
		CompanyID:            tenantID,
		UserID:               actorID,
		InventoryItemID:      itemID,
		Type:                 entity.MovementTypeTRANSFER,
		Quantity:             1,
		DestinationChamberID: chamberA,
		Reason:               "sin sentido",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_CamaraDeOtroTenantEsNotFound(t *testing.T) {
	uc, _ := newFixture(false)

	_, err := uc.RegisterMovement(context.Background(), movement.MovementInputDTO{
		CompanyID:            otherTen,
		UserID:               actorID,
		InventoryItemID:      itemID,
		Type:                 entity.MovementTypeTRANSFER,
		Quantity:             1,
		DestinationChamberID: chamberB,
		Reason:               "cruce de tenant",
	})

	// El artículo pertenece a otro tenant: se responde NotFound sin filtrar existencia
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad del libro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_FallaEntreMutacionYLibroRevierteTodo(t *testing.T) {
	// El alta en el libro falla después de decrementar el stock: la transacción
	// debe revertir la mutación para que no haya deriva de inventario.
	uc, st := newFixture(true)

	_, err := uc.RegisterMovement(context.Background(), movement.MovementInputDTO{
		CompanyID:       tenantID,
		UserID:          actorID,
		InventoryItemID: itemID,
		Type:            entity.MovementTypeEGRESS,
		Quantity:        2,
		Reason:          "venta mostrador",
	})

	require.Error(t, err)
	assert.Equal(t, int64(5), st.items[itemID].Quantity, "rollback: ni libro ni stock")
	assert.Empty(t, st.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada por lote (carrito)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntryBatch_TodoONada(t *testing.T) {
	uc, st := newFixture(false)

	// La segunda línea referencia un artículo inexistente: el carrito completo
	// se rechaza en la etapa de validación, sin ninguna escritura.
	err := uc.RegisterEntryBatch(context.Background(), tenantID, actorID, []dto.EntryBatchLine{
		{InventoryItemID: itemID, Quantity: 3},
		{InventoryItemID: "00000000-0000-0000-0000-0000000000ff", Quantity: 1},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(5), st.items[itemID].Quantity)
	assert.Empty(t, st.movements)
}

func TestRegisterEntryBatch_AplicaTodasLasLineas(t *testing.T) {
	uc, st := newFixture(false)
	cost := decimal.NewFromInt(90)

	err := uc.RegisterEntryBatch(context.Background(), tenantID, actorID, []dto.EntryBatchLine{
		{InventoryItemID: itemID, Quantity: 3, Cost: &cost},
		{InventoryItemID: itemID, Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), st.items[itemID].Quantity)
	require.Len(t, st.movements, 2)
	for _, m := range st.movements {
		assert.Equal(t, entity.MovementTypeENTRY, m.Type)
	}
}

func TestRegisterEntryBatch_CarritoVacioEsInvalido(t *testing.T) {
	uc, _ := newFixture(false)

	err := uc.RegisterEntryBatch(context.Background(), tenantID, actorID, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
