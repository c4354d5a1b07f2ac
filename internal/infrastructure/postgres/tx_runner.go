package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Christopheryu29/store-management-api/internal/application/inventory"
	"github.com/Christopheryu29/store-management-api/internal/application/usecase"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and usecase.StoreTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ usecase.StoreTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es la transacción del checkout: artículo, acumulados de tienda y libro de ventas.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	storeRepo repository.StoreRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	storeRepo := NewStoreRepository(tx)
	saleRepo := NewSaleRepository(tx)

	if err := fn(itemRepo, storeRepo, saleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunStore inicia una transacción solo con el repo de tiendas (alta de tienda:
// insert + primer dueño + asignación como unidad).
func (r *TxRunner) RunStore(ctx context.Context, fn func(storeRepo repository.StoreRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStoreRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
