package cache

import (
	"testing"

	"github.com/Domenick1991/airport/config"
	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "cache:flights:version", flightsVersionKey())
	assert.Equal(t, "cache:flights:v3:from=kyiv", flightsKey(3, "from=kyiv"))
	assert.Equal(t, "lock:accounting", lockKey("accounting"))
	assert.Equal(t, "idempotency:7:abc", idempotencyKey("7:abc"))
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, 0)
	assert.NotNil(t, c)
	assert.NoError(t, c.Close())
}
