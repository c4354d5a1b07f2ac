package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

var _ repository.StoreSessionRepository = (*SessionStore)(nil)

// Prefijo de las llaves de sesión de tienda en Redis.
const sessionKeyPrefix = "store_session:"

// Timeout por operación contra Redis.
const opTimeout = 3 * time.Second

// SessionStore guarda sesiones de tienda en Redis con TTL. El token es un
// uuid opaco; Redis expira la llave por sí solo al vencer la sesión.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore construye el store sobre un cliente ya configurado.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Create emite un token nuevo asociado a la tienda, con el TTL indicado.
func (s *SessionStore) Create(ctx context.Context, storeID string, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := s.client.Set(opCtx, sessionKeyPrefix+token, storeID, ttl).Err(); err != nil {
		return "", fmt.Errorf("set session: %w", err)
	}
	return token, nil
}

// Get resuelve el token a su store id. ok=false si no existe o expiró.
func (s *SessionStore) Get(ctx context.Context, token string) (string, bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	val, err := s.client.Get(opCtx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get session: %w", err)
	}
	return val, true, nil
}

// Delete elimina el token. Borrar un token inexistente no es error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := s.client.Del(opCtx, sessionKeyPrefix+token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
