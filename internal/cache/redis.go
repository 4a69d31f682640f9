package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type flightPage struct {
	Flights []domain.Flight `json:"flights"`
	Total   int             `json:"total"`
}

// FlightsVersion returns the current generation of cached flight listings.
// Listings are stored under the generation they were read at, so bumping it
// orphans every older entry.
func (c *RedisCache) FlightsVersion(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, flightsVersionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// GetFlights returns a cached listing. A nil slice means a miss.
func (c *RedisCache) GetFlights(ctx context.Context, version int64, filterKey string) ([]domain.Flight, int, error) {
	data, err := c.client.Get(ctx, flightsKey(version, filterKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	var page flightPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, 0, err
	}
	if page.Flights == nil {
		page.Flights = []domain.Flight{}
	}
	return page.Flights, page.Total, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, version int64, filterKey string, flights []domain.Flight, total int) error {
	payload, err := json.Marshal(flightPage{Flights: flights, Total: total})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(version, filterKey), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Incr(ctx, flightsVersionKey()).Err()
}

// AcquireLock takes a named lock for ttl. The returned token must be handed
// back to ReleaseLock; an empty token means the lock is held elsewhere.
func (c *RedisCache) AcquireLock(ctx context.Context, name string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, lockKey(name), token, ttl).Result()
	if err != nil || !ok {
		return "", err
	}
	return token, nil
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ReleaseLock drops the lock only if it is still owned by token.
func (c *RedisCache) ReleaseLock(ctx context.Context, name, token string) error {
	return releaseScript.Run(ctx, c.client, []string{lockKey(name)}, token).Err()
}

const idempotencyPending = "PROCESSING"

// StoredResponse is a completed response kept for Idempotency-Key replays.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// ReserveIdempotencyKey marks key as in progress. It returns false when the key
// is already reserved or completed.
func (c *RedisCache) ReserveIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, idempotencyKey(key), idempotencyPending, ttl).Result()
}

// IdempotentResponse returns the stored response for key, or nil while the
// request is still in progress or was never seen.
func (c *RedisCache) IdempotentResponse(ctx context.Context, key string) (*StoredResponse, error) {
	data, err := c.client.Get(ctx, idempotencyKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	if string(data) == idempotencyPending {
		return nil, nil
	}
	var resp StoredResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RedisCache) SaveIdempotentResponse(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, idempotencyKey(key), payload, ttl).Err()
}

func (c *RedisCache) ReleaseIdempotencyKey(ctx context.Context, key string) error {
	return c.client.Del(ctx, idempotencyKey(key)).Err()
}

func idempotencyKey(key string) string {
	return "idempotency:" + key
}

func flightsVersionKey() string {
	return "cache:flights:version"
}

func flightsKey(version int64, filterKey string) string {
	return fmt.Sprintf("cache:flights:v%d:%s", version, filterKey)
}

func lockKey(name string) string {
	return "lock:" + name
}
