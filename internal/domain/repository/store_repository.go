package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store y sus vínculos
// de propiedad/asignación. Los Get* devuelven (nil, nil) si no existe.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	GetByName(name string) (*entity.Store, error)

	// AddOwner agrega un usuario a la lista de dueños de la tienda.
	// La creación de tienda lo invoca en la misma transacción que Create,
	// de modo que la lista de dueños nunca queda vacía.
	AddOwner(storeID, userID string) error
	// AssignToUser agrega la tienda a la lista ordenada de tiendas asignadas del usuario.
	AssignToUser(userID, storeID string) error

	// IsOwner indica si el usuario figura en la lista de dueños de la tienda.
	IsOwner(storeID, userID string) (bool, error)

	// ListByOwner devuelve las tiendas cuya lista de dueños contiene al usuario.
	ListByOwner(userID string) ([]*entity.Store, error)
	// ListAssigned resuelve las tiendas asignadas al usuario en orden de asignación.
	// Referencias que ya no resuelven se descartan en silencio.
	ListAssigned(userID string) ([]*entity.Store, error)

	// AddSales incrementa total_sales de forma atómica (SET x = x + monto).
	AddSales(storeID string, amount decimal.Decimal) error
	// AddDebt incrementa debt de forma atómica.
	AddDebt(storeID string, amount decimal.Decimal) error
}
