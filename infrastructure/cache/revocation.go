package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=revocation.go -destination=mocks/revocation.go -package=mocks

// TokenRevoker mantém as chaves revogadas (jti de logout ou usuário desativado) até a expiração delas
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Restore(ctx context.Context, jti string) error
}

type redisTokenRevoker struct {
	client *redis.Client
}

// NewTokenRevoker usa o Redis quando há cliente; sem ele, um mapa em memória (uma instância só)
func NewTokenRevoker(client *redis.Client) TokenRevoker {
	if client == nil {
		return &memoryTokenRevoker{revoked: make(map[string]time.Time), now: time.Now}
	}
	return &redisTokenRevoker{client: client}
}

func revokedKey(jti string) string {
	return keyPrefix + "revoked:" + jti
}

func (r *redisTokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("erro ao revogar token: %w", err)
	}
	return nil
}

func (r *redisTokenRevoker) Restore(ctx context.Context, jti string) error {
	if err := r.client.Del(ctx, revokedKey(jti)).Err(); err != nil {
		return fmt.Errorf("erro ao restaurar token: %w", err)
	}
	return nil
}

func (r *redisTokenRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	exists, err := r.client.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("erro ao consultar tokens revogados: %w", err)
	}
	return exists > 0, nil
}

type memoryTokenRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func (m *memoryTokenRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, expiresAt := range m.revoked {
		if now.After(expiresAt) {
			delete(m.revoked, key)
		}
	}
	m.revoked[jti] = now.Add(ttl)
	return nil
}

func (m *memoryTokenRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiresAt, ok := m.revoked[jti]
	if !ok {
		return false, nil
	}
	return m.now().Before(expiresAt), nil
}

func (m *memoryTokenRevoker) Restore(_ context.Context, jti string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.revoked, jti)
	return nil
}
