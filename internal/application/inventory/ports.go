package inventory

import (
	"context"

	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos atados a ella.
// El checkout lo necesita para que el bloqueo de fila del artículo, el
// descuento de stock, el acumulado de la tienda y el registro de la venta
// se confirmen o descarten como una sola unidad. Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		storeRepo repository.StoreRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
