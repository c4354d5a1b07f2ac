package repository

import "github.com/Christopheryu29/store-management-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia del libro de ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Sale, error)
}
