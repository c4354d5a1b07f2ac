package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre PostgreSQL (usable con pool o tx).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de tiendas. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una tienda nueva con acumulados en cero.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, password_hash, total_sales, debt, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 0, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.PasswordHash, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `
		SELECT id, name, password_hash, total_sales, debt, created_at, updated_at
		FROM stores WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName obtiene una tienda por nombre exacto (login por credenciales).
func (r *StoreRepo) GetByName(name string) (*entity.Store, error) {
	query := `
		SELECT id, name, password_hash, total_sales, debt, created_at, updated_at
		FROM stores WHERE name = $1 LIMIT 1`
	return r.scanOne(query, name)
}

func (r *StoreRepo) scanOne(query string, arg any) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.PasswordHash, &s.TotalSales, &s.Debt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// AddOwner agrega un dueño a la tienda. Repetir el mismo par es no-op.
func (r *StoreRepo) AddOwner(storeID, userID string) error {
	query := `
		INSERT INTO store_owners (store_id, user_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (store_id, user_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, storeID, userID)
	if err != nil {
		return fmt.Errorf("insert store owner: %w", err)
	}
	return nil
}

// AssignToUser agrega la tienda a la lista de asignadas del usuario.
// El orden de asignación lo da created_at.
func (r *StoreRepo) AssignToUser(userID, storeID string) error {
	query := `
		INSERT INTO user_stores (user_id, store_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, store_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, userID, storeID)
	if err != nil {
		return fmt.Errorf("insert user store: %w", err)
	}
	return nil
}

// IsOwner indica si el usuario figura como dueño de la tienda.
func (r *StoreRepo) IsOwner(storeID, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM store_owners WHERE store_id = $1 AND user_id = $2)`
	var ok bool
	if err := r.q.QueryRow(context.Background(), query, storeID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check store owner: %w", err)
	}
	return ok, nil
}

// ListByOwner devuelve las tiendas del dueño, más recientes primero.
func (r *StoreRepo) ListByOwner(userID string) ([]*entity.Store, error) {
	query := `
		SELECT s.id, s.name, s.password_hash, s.total_sales, s.debt, s.created_at, s.updated_at
		FROM stores s
		JOIN store_owners o ON o.store_id = s.id
		WHERE o.user_id = $1
		ORDER BY s.created_at DESC`
	return r.scanList(query, userID)
}

// ListAssigned devuelve las tiendas asignadas al usuario en orden de asignación.
// El JOIN descarta por sí solo las referencias que ya no resuelven.
func (r *StoreRepo) ListAssigned(userID string) ([]*entity.Store, error) {
	query := `
		SELECT s.id, s.name, s.password_hash, s.total_sales, s.debt, s.created_at, s.updated_at
		FROM user_stores us
		JOIN stores s ON s.id = us.store_id
		WHERE us.user_id = $1
		ORDER BY us.created_at ASC`
	return r.scanList(query, userID)
}

func (r *StoreRepo) scanList(query string, args ...any) ([]*entity.Store, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.PasswordHash, &s.TotalSales, &s.Debt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// AddSales incrementa total_sales de forma atómica.
func (r *StoreRepo) AddSales(storeID string, amount decimal.Decimal) error {
	query := `UPDATE stores SET total_sales = total_sales + $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, storeID, amount)
	if err != nil {
		return fmt.Errorf("add sales: %w", err)
	}
	return nil
}

// AddDebt incrementa debt de forma atómica.
func (r *StoreRepo) AddDebt(storeID string, amount decimal.Decimal) error {
	query := `UPDATE stores SET debt = debt + $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, storeID, amount)
	if err != nil {
		return fmt.Errorf("add debt: %w", err)
	}
	return nil
}
