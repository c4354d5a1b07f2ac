package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
	"github.com/Christopheryu29/store-management-api/internal/observability/metrics"
)

// CheckoutUseCase registra una venta de forma transaccional: bloquea la fila
// del artículo (SELECT FOR UPDATE), valida el stock, descuenta, acumula el
// monto en la tienda y escribe la fila del libro de ventas. Commit o Rollback
// en bloque: nunca hay descuento parcial.
type CheckoutUseCase struct {
	txRunner TxRunner
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(txRunner TxRunner) *CheckoutUseCase {
	return &CheckoutUseCase{txRunner: txRunner}
}

// Checkout descuenta in.Quantity del stock del artículo.
//   - ErrInvalidInput       si la cantidad no es positiva.
//   - ErrItemNotFound       si el artículo no existe en esa tienda.
//   - ErrInsufficientStock  si la cantidad excede el stock actual; el stock
//     queda intacto.
//
// soldBy es el user id del vendedor cuando la venta llega autenticada con JWT,
// o vacío cuando llega por sesión de tienda.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, storeID, soldBy string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if in.ItemID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out dto.CheckoutResponse
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		storeRepo repository.StoreRepository,
		saleRepo repository.SaleRepository,
	) error {
		item, err := itemRepo.GetForUpdate(storeID, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		if in.Quantity > item.Stock {
			return domain.ErrInsufficientStock
		}

		remaining := item.Stock - in.Quantity
		if err := itemRepo.UpdateStock(item.ID, remaining); err != nil {
			return err
		}

		total := item.Price.Mul(decimal.NewFromInt(in.Quantity))
		if in.OnCredit {
			if err := storeRepo.AddDebt(storeID, total); err != nil {
				return err
			}
		} else {
			if err := storeRepo.AddSales(storeID, total); err != nil {
				return err
			}
		}

		sale := &entity.Sale{
			ID:        uuid.New().String(),
			StoreID:   storeID,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Quantity:  in.Quantity,
			UnitPrice: item.Price,
			Total:     total,
			OnCredit:  in.OnCredit,
			SoldBy:    soldBy,
			CreatedAt: time.Now(),
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		out = dto.CheckoutResponse{
			Success:        true,
			ItemID:         item.ID,
			RemainingStock: remaining,
			Total:          total,
			SaleID:         sale.ID,
		}
		return nil
	})
	if err != nil {
		metrics.ObserveCheckout(checkoutResult(err))
		return nil, err
	}
	metrics.ObserveCheckout("ok")
	return &out, nil
}

func checkoutResult(err error) string {
	switch err {
	case domain.ErrInsufficientStock:
		return "insufficient_stock"
	case domain.ErrItemNotFound:
		return "item_not_found"
	default:
		return "error"
	}
}
