package pos_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/application/pos"
	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
)

// fakeStoreRepo solo implementa lo que el POS consulta.
type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func (r *fakeStoreRepo) Create(s *entity.Store) error             { r.stores[s.ID] = s; return nil }
func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) { return r.stores[id], nil }
func (r *fakeStoreRepo) GetByName(name string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeStoreRepo) AddOwner(storeID, userID string) error      { return nil }
func (r *fakeStoreRepo) AssignToUser(userID, storeID string) error  { return nil }
func (r *fakeStoreRepo) IsOwner(storeID, userID string) (bool, error) {
	return false, nil
}
func (r *fakeStoreRepo) ListByOwner(userID string) ([]*entity.Store, error)   { return nil, nil }
func (r *fakeStoreRepo) ListAssigned(userID string) ([]*entity.Store, error)  { return nil, nil }
func (r *fakeStoreRepo) AddSales(storeID string, a decimal.Decimal) error     { return nil }
func (r *fakeStoreRepo) AddDebt(storeID string, a decimal.Decimal) error      { return nil }

// fakeSessionRepo sesiones en memoria con expiración.
type fakeSessionRepo struct {
	sessions map[string]sessionEntry
}

type sessionEntry struct {
	storeID   string
	expiresAt time.Time
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]sessionEntry{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, storeID string, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	r.sessions[token] = sessionEntry{storeID: storeID, expiresAt: time.Now().Add(ttl)}
	return token, nil
}

func (r *fakeSessionRepo) Get(ctx context.Context, token string) (string, bool, error) {
	e, ok := r.sessions[token]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false, nil
	}
	return e.storeID, true, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func seedPOS(t *testing.T, name, password string) (*pos.UseCase, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	storeID := uuid.New().String()
	storeRepo := &fakeStoreRepo{stores: map[string]*entity.Store{
		storeID: {ID: storeID, Name: name, PasswordHash: string(hash)},
	}}
	return pos.NewUseCase(storeRepo, newFakeSessionRepo(), time.Hour), storeID
}

func TestStoreLogin_CredencialesCorrectas(t *testing.T) {
	uc, storeID := seedPOS(t, "La Esquina", "clave-tienda")

	out, err := uc.Login(context.Background(), dto.StoreLoginRequest{
		Name: "La Esquina", Password: "clave-tienda",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.SessionToken)
	assert.Equal(t, storeID, out.Store.ID)

	// El token resuelve a la tienda mientras la sesión viva.
	resolved, err := uc.Resolve(context.Background(), out.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, storeID, resolved)
}

func TestStoreLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := seedPOS(t, "La Esquina", "clave-tienda")

	_, err := uc.Login(context.Background(), dto.StoreLoginRequest{
		Name: "La Esquina", Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestStoreLogin_TiendaInexistente_MismoError(t *testing.T) {
	uc, _ := seedPOS(t, "La Esquina", "clave-tienda")

	_, err := uc.Login(context.Background(), dto.StoreLoginRequest{
		Name: "Otra Tienda", Password: "clave-tienda",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"no se distingue tienda inexistente de password incorrecto")
}

func TestStoreLogin_NombreEsSensibleAMayusculas(t *testing.T) {
	uc, _ := seedPOS(t, "La Esquina", "clave-tienda")

	_, err := uc.Login(context.Background(), dto.StoreLoginRequest{
		Name: "la esquina", Password: "clave-tienda",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestResolve_TokenDesconocido(t *testing.T) {
	uc, _ := seedPOS(t, "La Esquina", "clave-tienda")

	_, err := uc.Resolve(context.Background(), "token-falso")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestLogout_InvalidaLaSesion(t *testing.T) {
	uc, _ := seedPOS(t, "La Esquina", "clave-tienda")

	out, err := uc.Login(context.Background(), dto.StoreLoginRequest{
		Name: "La Esquina", Password: "clave-tienda",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), out.SessionToken))

	_, err = uc.Resolve(context.Background(), out.SessionToken)
	assert.ErrorIs(t, err, domain.ErrSessionExpired, "tras logout el token deja de resolver")
}

func TestLogout_TokenVacio_NoEsError(t *testing.T) {
	uc, _ := seedPOS(t, "La Esquina", "clave-tienda")
	assert.NoError(t, uc.Logout(context.Background(), ""))
}

func TestCurrentStore_DevuelveLaTiendaDeLaSesion(t *testing.T) {
	uc, storeID := seedPOS(t, "La Esquina", "clave-tienda")

	out, err := uc.Login(context.Background(), dto.StoreLoginRequest{
		Name: "La Esquina", Password: "clave-tienda",
	})
	require.NoError(t, err)

	store, err := uc.CurrentStore(context.Background(), out.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, storeID, store.ID)
	assert.Equal(t, "La Esquina", store.Name)
}
