// Package cache implementa el ViewCache de vistas del dashboard: las
// mutaciones invalidan una vista por nombre y el lado de lectura la repuebla
// (read-through) en la siguiente consulta.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/registro-api/internal/application/mutation"
	"github.com/jhoicas/registro-api/pkg/config"
	"github.com/jhoicas/registro-api/pkg/logger"
)

const viewKeyPrefix = "view:"

var _ mutation.ViewCache = (*RedisViewCache)(nil)

// RedisViewCache caché de vistas sobre Redis, compartido entre instancias.
type RedisViewCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisViewCache conecta a Redis y verifica con un ping.
func NewRedisViewCache(cfg config.RedisConfig, log *logger.Logger) (*RedisViewCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conexión a Redis: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}
	return &RedisViewCache{client: client, log: log}, nil
}

// Get retorna el payload cacheado de la vista, si existe.
func (c *RedisViewCache) Get(ctx context.Context, view string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, viewKeyPrefix+view).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("view", view).Msg("lectura de caché de vista")
		}
		return nil, false
	}
	return payload, true
}

// Set guarda el payload de la vista con el TTL dado (best-effort).
func (c *RedisViewCache) Set(ctx context.Context, view string, payload []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, viewKeyPrefix+view, payload, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("view", view).Msg("escritura de caché de vista")
	}
}

// Invalidate marca la vista como obsoleta eliminándola; la siguiente lectura
// va a la base de datos.
func (c *RedisViewCache) Invalidate(ctx context.Context, view string) error {
	if err := c.client.Del(ctx, viewKeyPrefix+view).Err(); err != nil {
		c.log.Warn().Err(err).Str("view", view).Msg("invalidación de vista")
		return fmt.Errorf("invalidar vista %s: %w", view, err)
	}
	return nil
}

// Close cierra la conexión a Redis.
func (c *RedisViewCache) Close() error {
	return c.client.Close()
}
