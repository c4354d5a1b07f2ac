package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

// UseCase casos de uso CRUD del inventario de una tienda. El stock solo se
// muta aquí (update explícito) o en el checkout transaccional.
type UseCase struct {
	storeRepo repository.StoreRepository
	itemRepo  repository.ItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(storeRepo repository.StoreRepository, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{storeRepo: storeRepo, itemRepo: itemRepo}
}

// checkOwnership valida que la tienda exista y que actorID sea uno de sus dueños.
func (uc *UseCase) checkOwnership(storeID, actorID string) error {
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	owner, err := uc.storeRepo.IsOwner(storeID, actorID)
	if err != nil {
		return err
	}
	if !owner {
		return domain.ErrForbidden
	}
	return nil
}

// AddItem agrega un artículo al inventario con un ID recién generado.
// Valida nombre, precio no negativo y stock no negativo. El nombre debe ser
// único dentro de la tienda: el duplicado se rechaza aquí, no solo en la UI.
func (uc *UseCase) AddItem(actorID, storeID string, in dto.AddItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkOwnership(storeID, actorID); err != nil {
		return nil, err
	}
	existing, _ := uc.itemRepo.GetByStoreAndName(storeID, in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// UpdateItem actualización parcial por ID: los campos omitidos conservan su
// valor. Un ID inexistente retorna ErrItemNotFound en vez de pasar en
// silencio como hacía la versión anterior del sistema.
func (uc *UseCase) UpdateItem(actorID, storeID, itemID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if err := uc.checkOwnership(storeID, actorID); err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.Get(storeID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		if *in.Name != item.Name {
			dup, _ := uc.itemRepo.GetByStoreAndName(storeID, *in.Name)
			if dup != nil {
				return nil, domain.ErrDuplicate
			}
		}
		item.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Stock = *in.Stock
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// DeleteItem elimina por ID. Borrar un artículo ausente es idempotente:
// se reporta Deleted=false, no es un error.
func (uc *UseCase) DeleteItem(actorID, storeID, itemID string) (*dto.DeleteItemResponse, error) {
	if err := uc.checkOwnership(storeID, actorID); err != nil {
		return nil, err
	}
	deleted, err := uc.itemRepo.Delete(storeID, itemID)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteItemResponse{Success: true, Deleted: deleted}, nil
}

// ListItems devuelve el inventario de la tienda. Si query no está vacío,
// filtra por nombre sin distinguir mayúsculas ni acentos.
func (uc *UseCase) ListItems(storeID, query string) (*dto.ItemListResponse, error) {
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.itemRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	q := normalizeForSearch(query)
	for _, it := range list {
		if q != "" && !matchesSearch(it.Name, q) {
			continue
		}
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items}, nil
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:        it.ID,
		StoreID:   it.StoreID,
		Name:      it.Name,
		Price:     it.Price,
		Stock:     it.Stock,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
