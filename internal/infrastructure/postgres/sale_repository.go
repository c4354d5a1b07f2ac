package postgres

import (
	"context"
	"fmt"

	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador del libro de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, store_id, item_id, item_name, quantity, unit_price, total, on_credit, sold_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.StoreID, sale.ItemID, sale.ItemName, sale.Quantity,
		sale.UnitPrice, sale.Total, sale.OnCredit, sale.SoldBy, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByStore devuelve las ventas de la tienda, más recientes primero.
func (r *SaleRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, store_id, item_id, item_name, quantity, unit_price, total, on_credit, sold_by, created_at
		FROM sales WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.StoreID, &s.ItemID, &s.ItemName, &s.Quantity,
			&s.UnitPrice, &s.Total, &s.OnCredit, &s.SoldBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
