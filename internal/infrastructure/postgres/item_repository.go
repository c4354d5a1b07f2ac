package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, store_id, name, price, stock, created_at, updated_at`

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO store_items (id, store_id, name, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.StoreID, item.Name, item.Price, item.Stock, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Get obtiene un artículo por tienda e ID.
func (r *ItemRepo) Get(storeID, itemID string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM store_items WHERE store_id = $1 AND id = $2`
	return r.scanOne(query, storeID, itemID)
}

// GetForUpdate obtiene el artículo bloqueando la fila (SELECT FOR UPDATE).
// Debe ejecutarse dentro de una transacción.
func (r *ItemRepo) GetForUpdate(storeID, itemID string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM store_items WHERE store_id = $1 AND id = $2 FOR UPDATE`
	return r.scanOne(query, storeID, itemID)
}

// GetByStoreAndName obtiene un artículo por tienda y nombre exacto.
func (r *ItemRepo) GetByStoreAndName(storeID, name string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM store_items WHERE store_id = $1 AND name = $2 LIMIT 1`
	return r.scanOne(query, storeID, name)
}

func (r *ItemRepo) scanOne(query string, args ...any) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&it.ID, &it.StoreID, &it.Name, &it.Price, &it.Stock, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update actualiza nombre, precio y stock del artículo.
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE store_items SET name = $2, price = $3, stock = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Price, item.Stock, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateStock fija el stock. El caso de uso ya validó el valor bajo bloqueo de fila.
func (r *ItemRepo) UpdateStock(itemID string, stock int64) error {
	query := `UPDATE store_items SET stock = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, itemID, stock)
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	return nil
}

// ListByStore devuelve el inventario de la tienda en orden de alta.
func (r *ItemRepo) ListByStore(storeID string) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM store_items WHERE store_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.StoreID, &it.Name, &it.Price, &it.Stock, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina el artículo y reporta si existía.
func (r *ItemRepo) Delete(storeID, itemID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM store_items WHERE store_id = $1 AND id = $2`, storeID, itemID)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
