package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

// StoreTxRunner ejecuta la creación de tienda dentro de una transacción:
// el alta de la tienda, su primer dueño y la asignación al usuario creador
// se confirman o descartan juntos. Lo implementa postgres.TxRunner.
type StoreTxRunner interface {
	RunStore(ctx context.Context, fn func(storeRepo repository.StoreRepository) error) error
}

// StoreUseCase casos de uso de tiendas: creación y consultas por dueño/cajero.
type StoreUseCase struct {
	txRunner  StoreTxRunner
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(txRunner StoreTxRunner, storeRepo repository.StoreRepository, userRepo repository.UserRepository) *StoreUseCase {
	return &StoreUseCase{txRunner: txRunner, storeRepo: storeRepo, userRepo: userRepo}
}

// Create crea una tienda con inventario vacío, ventas y deuda en cero, y al
// creador como primer dueño. La tienda también se agrega a la lista de
// tiendas asignadas del creador, en la misma transacción: la lista de dueños
// nunca queda vacía.
func (uc *StoreUseCase) Create(ctx context.Context, ownerID string, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	store := &entity.Store{
		ID:           uuid.New().String(),
		Name:         in.Name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunStore(ctx, func(storeRepo repository.StoreRepository) error {
		if err := storeRepo.Create(store); err != nil {
			return err
		}
		if err := storeRepo.AddOwner(store.ID, user.ID); err != nil {
			return err
		}
		return storeRepo.AssignToUser(user.ID, store.ID)
	})
	if err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return toStoreResponse(store), nil
}

// ListByOwner devuelve las tiendas cuya lista de dueños contiene al usuario.
func (uc *StoreUseCase) ListByOwner(userID string) (*dto.StoreListResponse, error) {
	list, err := uc.storeRepo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	return toStoreList(list), nil
}

// ListAssigned devuelve las tiendas asignadas al usuario (flujo de cajero),
// en orden de asignación. Las referencias rotas se descartan en silencio.
func (uc *StoreUseCase) ListAssigned(userID string) (*dto.StoreListResponse, error) {
	list, err := uc.storeRepo.ListAssigned(userID)
	if err != nil {
		return nil, err
	}
	return toStoreList(list), nil
}

func toStoreList(list []*entity.Store) *dto.StoreListResponse {
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{Items: items}
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:         s.ID,
		Name:       s.Name,
		TotalSales: s.TotalSales,
		Debt:       s.Debt,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
