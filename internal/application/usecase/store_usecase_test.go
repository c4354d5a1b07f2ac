package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/application/usecase"
	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStoreRepo struct {
	stores   map[string]*entity.Store
	owners   map[string][]string // storeID -> dueños
	assigned map[string][]string // userID -> tiendas en orden de asignación
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{
		stores:   map[string]*entity.Store{},
		owners:   map[string][]string{},
		assigned: map[string][]string{},
	}
}

func (r *fakeStoreRepo) Create(s *entity.Store) error {
	cp := *s
	r.stores[s.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) { return r.stores[id], nil }

func (r *fakeStoreRepo) GetByName(name string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStoreRepo) AddOwner(storeID, userID string) error {
	r.owners[storeID] = append(r.owners[storeID], userID)
	return nil
}

func (r *fakeStoreRepo) AssignToUser(userID, storeID string) error {
	r.assigned[userID] = append(r.assigned[userID], storeID)
	return nil
}

func (r *fakeStoreRepo) IsOwner(storeID, userID string) (bool, error) {
	for _, id := range r.owners[storeID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStoreRepo) ListByOwner(userID string) ([]*entity.Store, error) {
	var out []*entity.Store
	for storeID, owners := range r.owners {
		for _, id := range owners {
			if id == userID {
				out = append(out, r.stores[storeID])
			}
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) ListAssigned(userID string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, storeID := range r.assigned[userID] {
		// Referencias rotas se descartan en silencio.
		if s := r.stores[storeID]; s != nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) AddSales(storeID string, amount decimal.Decimal) error { return nil }
func (r *fakeStoreRepo) AddDebt(storeID string, amount decimal.Decimal) error  { return nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error            { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error        { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) UpdateRole(id, role string) error   { return nil }

// fakeStoreTxRunner ejecuta fn contra el repo directamente.
type fakeStoreTxRunner struct {
	storeRepo *fakeStoreRepo
}

func (r *fakeStoreTxRunner) RunStore(ctx context.Context, fn func(storeRepo repository.StoreRepository) error) error {
	return fn(r.storeRepo)
}

func newStoreUC() (*usecase.StoreUseCase, *fakeStoreRepo, *fakeUserRepo) {
	storeRepo := newFakeStoreRepo()
	userRepo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewStoreUseCase(&fakeStoreTxRunner{storeRepo: storeRepo}, storeRepo, userRepo)
	return uc, storeRepo, userRepo
}

func seedOwner(t *testing.T, userRepo *fakeUserRepo) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, userRepo.Create(&entity.User{
		ID: id, Email: id + "@tienda.co", Role: entity.RoleOwner, Status: "active",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateStore_CreadorQuedaComoDuenio(t *testing.T) {
	uc, storeRepo, userRepo := newStoreUC()
	ownerID := seedOwner(t, userRepo)

	out, err := uc.Create(context.Background(), ownerID, dto.CreateStoreRequest{
		Name: "La Esquina", Password: "clave-tienda",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "La Esquina", out.Name)
	assert.True(t, out.TotalSales.Equal(decimal.Zero), "ventas inician en cero")
	assert.True(t, out.Debt.Equal(decimal.Zero), "deuda inicia en cero")

	isOwner, err := storeRepo.IsOwner(out.ID, ownerID)
	require.NoError(t, err)
	assert.True(t, isOwner, "la lista de dueños nunca queda vacía")

	// La tienda también entra a la lista de asignadas del creador.
	assigned, err := storeRepo.ListAssigned(ownerID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, out.ID, assigned[0].ID)
}

func TestCreateStore_PasswordNuncaSeExponeEnClaro(t *testing.T) {
	uc, storeRepo, userRepo := newStoreUC()
	ownerID := seedOwner(t, userRepo)

	out, err := uc.Create(context.Background(), ownerID, dto.CreateStoreRequest{
		Name: "La Esquina", Password: "clave-tienda",
	})
	require.NoError(t, err)

	stored, err := storeRepo.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "clave-tienda", stored.PasswordHash, "el password se persiste hasheado")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestCreateStore_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newStoreUC()

	_, err := uc.Create(context.Background(), "no-existe", dto.CreateStoreRequest{
		Name: "La Esquina", Password: "clave-tienda",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateStore_DatosInvalidos(t *testing.T) {
	uc, _, userRepo := newStoreUC()
	ownerID := seedOwner(t, userRepo)

	_, err := uc.Create(context.Background(), ownerID, dto.CreateStoreRequest{Name: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), ownerID, dto.CreateStoreRequest{Name: "X", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestListByOwner_SoloTiendasDelDuenio(t *testing.T) {
	uc, _, userRepo := newStoreUC()
	ana := seedOwner(t, userRepo)
	luis := seedOwner(t, userRepo)

	_, err := uc.Create(context.Background(), ana, dto.CreateStoreRequest{Name: "Tienda Ana", Password: "clave1"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), luis, dto.CreateStoreRequest{Name: "Tienda Luis", Password: "clave2"})
	require.NoError(t, err)

	out, err := uc.ListByOwner(ana)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Tienda Ana", out.Items[0].Name)
}

func TestListAssigned_RespetaOrdenYDescartaRotas(t *testing.T) {
	uc, storeRepo, userRepo := newStoreUC()
	ownerID := seedOwner(t, userRepo)

	a, err := uc.Create(context.Background(), ownerID, dto.CreateStoreRequest{Name: "Primera", Password: "c1"})
	require.NoError(t, err)
	b, err := uc.Create(context.Background(), ownerID, dto.CreateStoreRequest{Name: "Segunda", Password: "c2"})
	require.NoError(t, err)

	// Referencia rota: la tienda desaparece pero la asignación queda.
	delete(storeRepo.stores, a.ID)

	out, err := uc.ListAssigned(ownerID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "las referencias rotas se descartan en silencio")
	assert.Equal(t, b.ID, out.Items[0].ID)
}

func TestGetByID_Inexistente_DevuelveNil(t *testing.T) {
	uc, _, _ := newStoreUC()

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
