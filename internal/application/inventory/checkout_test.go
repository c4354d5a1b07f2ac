package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Christopheryu29/store-management-api/internal/application/dto"
	"github.com/Christopheryu29/store-management-api/internal/application/inventory"
	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

// fakeTxRunner pasa los fakes directamente; si fn falla, descarta la venta
// registrada para emular el rollback.
type fakeTxRunner struct {
	itemRepo  *fakeItemRepo
	storeRepo *fakeStoreRepo
	saleRepo  *fakeSaleRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	storeRepo repository.StoreRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(r.itemRepo, r.storeRepo, r.saleRepo)
}

// seedCheckout prepara tienda, dueño y un artículo con el stock indicado.
func seedCheckout(t *testing.T, stock int64) (*fakeTxRunner, string, string) {
	t.Helper()
	storeRepo, storeID, ownerID := seedStore(t)
	itemRepo := newFakeItemRepo()
	invUC := inventory.NewUseCase(storeRepo, itemRepo)
	created, err := invUC.AddItem(ownerID, storeID, dto.AddItemRequest{
		Name: "Gaseosa", Price: price("2.50"), Stock: stock,
	})
	require.NoError(t, err)
	return &fakeTxRunner{itemRepo: itemRepo, storeRepo: storeRepo, saleRepo: &fakeSaleRepo{}}, storeID, created.ID
}

func TestCheckout_DescuentaStockYAcumulaVenta(t *testing.T) {
	runner, storeID, itemID := seedCheckout(t, 10)
	uc := inventory.NewCheckoutUseCase(runner)

	out, err := uc.Checkout(context.Background(), storeID, "", dto.CheckoutRequest{
		ItemID: itemID, Quantity: 3,
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, int64(7), out.RemainingStock)
	assert.True(t, out.Total.Equal(price("7.50")), "total = precio x cantidad")
	assert.NotEmpty(t, out.SaleID)

	// El stock persistido debe coincidir con el reportado.
	it, err := runner.itemRepo.Get(storeID, itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), it.Stock)

	// Venta de contado: acumula en total_sales, no en debt.
	assert.True(t, runner.storeRepo.sales[storeID].Equal(price("7.50")))
	assert.True(t, runner.storeRepo.debt[storeID].Equal(decimal.Zero))

	require.Len(t, runner.saleRepo.sales, 1)
	assert.Equal(t, "Gaseosa", runner.saleRepo.sales[0].ItemName)
}

func TestCheckout_Fiado_AcumulaEnDeuda(t *testing.T) {
	runner, storeID, itemID := seedCheckout(t, 5)
	uc := inventory.NewCheckoutUseCase(runner)

	_, err := uc.Checkout(context.Background(), storeID, "", dto.CheckoutRequest{
		ItemID: itemID, Quantity: 2, OnCredit: true,
	})
	require.NoError(t, err)

	assert.True(t, runner.storeRepo.debt[storeID].Equal(price("5.00")))
	assert.True(t, runner.storeRepo.sales[storeID].Equal(decimal.Zero))
}

func TestCheckout_StockInsuficiente_NoDescuenta(t *testing.T) {
	runner, storeID, itemID := seedCheckout(t, 2)
	uc := inventory.NewCheckoutUseCase(runner)

	_, err := uc.Checkout(context.Background(), storeID, "", dto.CheckoutRequest{
		ItemID: itemID, Quantity: 3,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El stock queda intacto y no se registra venta.
	it, err := runner.itemRepo.Get(storeID, itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), it.Stock, "una venta rechazada no debe tocar el stock")
	assert.Empty(t, runner.saleRepo.sales)
}

func TestCheckout_VenderExactamenteElStock(t *testing.T) {
	runner, storeID, itemID := seedCheckout(t, 4)
	uc := inventory.NewCheckoutUseCase(runner)

	out, err := uc.Checkout(context.Background(), storeID, "", dto.CheckoutRequest{
		ItemID: itemID, Quantity: 4,
	})
	require.NoError(t, err, "cantidad igual al stock debe permitirse")
	assert.Equal(t, int64(0), out.RemainingStock)
}

func TestCheckout_ArticuloInexistente(t *testing.T) {
	runner, storeID, _ := seedCheckout(t, 1)
	uc := inventory.NewCheckoutUseCase(runner)

	_, err := uc.Checkout(context.Background(), storeID, "", dto.CheckoutRequest{
		ItemID: "no-existe", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCheckout_CantidadInvalida(t *testing.T) {
	runner, storeID, itemID := seedCheckout(t, 5)
	uc := inventory.NewCheckoutUseCase(runner)

	_, err := uc.Checkout(context.Background(), storeID, "", dto.CheckoutRequest{ItemID: itemID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Checkout(context.Background(), storeID, "", dto.CheckoutRequest{ItemID: itemID, Quantity: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
