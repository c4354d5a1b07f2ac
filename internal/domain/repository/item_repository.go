package repository

import "github.com/Christopheryu29/store-management-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para los artículos de
// inventario. Los Get* devuelven (nil, nil) si el artículo no existe
// en esa tienda.
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	Get(storeID, itemID string) (*entity.InventoryItem, error)
	// GetForUpdate obtiene el artículo bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (ver inventory.TxRunner).
	GetForUpdate(storeID, itemID string) (*entity.InventoryItem, error)
	GetByStoreAndName(storeID, name string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// UpdateStock fija el stock del artículo. El caso de uso ya validó que
	// el nuevo valor no es negativo bajo el bloqueo de fila.
	UpdateStock(itemID string, stock int64) error
	ListByStore(storeID string) ([]*entity.InventoryItem, error)
	// Delete elimina el artículo y reporta si existía.
	Delete(storeID, itemID string) (bool, error)
}
