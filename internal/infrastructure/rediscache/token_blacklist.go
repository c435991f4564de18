package rediscache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tu-usuario/billing-pro/internal/application/auth"
)

var _ auth.TokenBlacklist = (*TokenBlacklist)(nil)

// TokenBlacklist guarda en Redis los jti revocados en logout. La clave expira
// junto con el token, así la lista nunca crece más allá de las sesiones vivas.
type TokenBlacklist struct {
	client *redis.Client
	prefix string
}

// NewTokenBlacklist construye la blacklist sobre un cliente Redis.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client, prefix: "revoked:"}
}

// Revoke marca el jti como revocado durante ttl.
func (b *TokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // el token ya expiró, nada que revocar
	}
	if err := b.client.Set(ctx, b.prefix+jti, "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked indica si el jti fue revocado.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, b.prefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check token: %w", err)
	}
	return n > 0, nil
}

// NewClient conecta a Redis y verifica la conexión.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
