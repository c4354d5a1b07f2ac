package pos

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

// UseCase punto de venta: login de tienda por credenciales compartidas,
// resolución de la sesión y cierre. La "tienda actual" deja de ser estado
// ambiental del cliente y pasa a ser un token opaco con TTL en Redis.
type UseCase struct {
	storeRepo   repository.StoreRepository
	sessionRepo repository.StoreSessionRepository
	sessionTTL  time.Duration
}

// NewUseCase construye el caso de uso.
func NewUseCase(storeRepo repository.StoreRepository, sessionRepo repository.StoreSessionRepository, sessionTTL time.Duration) *UseCase {
	return &UseCase{storeRepo: storeRepo, sessionRepo: sessionRepo, sessionTTL: sessionTTL}
}

// Login valida nombre + contraseña de la tienda y emite una sesión.
// El nombre compara exacto (sensible a mayúsculas); la contraseña se verifica
// contra el hash bcrypt. Cualquier desajuste retorna ErrInvalidCredentials sin
// distinguir cuál de los dos falló.
func (uc *UseCase) Login(ctx context.Context, in dto.StoreLoginRequest) (*dto.StoreLoginResponse, error) {
	if in.Name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(store.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.sessionRepo.Create(ctx, store.ID, uc.sessionTTL)
	if err != nil {
		return nil, err
	}
	return &dto.StoreLoginResponse{
		SessionToken: token,
		Store:        toStoreResponse(store),
	}, nil
}

// Resolve devuelve el store id de la sesión, o ErrSessionExpired si el token
// no existe o ya venció.
func (uc *UseCase) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrSessionExpired
	}
	storeID, ok, err := uc.sessionRepo.Get(ctx, token)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrSessionExpired
	}
	return storeID, nil
}

// CurrentStore devuelve la tienda de la sesión.
func (uc *UseCase) CurrentStore(ctx context.Context, token string) (*dto.StoreResponse, error) {
	storeID, err := uc.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	out := toStoreResponse(store)
	return &out, nil
}

// Logout invalida la sesión. Cerrar una sesión ya vencida no es error.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return uc.sessionRepo.Delete(ctx, token)
}

func toStoreResponse(s *entity.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:         s.ID,
		Name:       s.Name,
		TotalSales: s.TotalSales,
		Debt:       s.Debt,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
