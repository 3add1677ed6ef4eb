package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheEntryExpiresAfterTTL(t *testing.T) {
	cache := NewCache(30*time.Millisecond, time.Hour)

	cache.Set("user:1", "alice")

	got, found := cache.Get("user:1")
	assert.True(t, found)
	assert.Equal(t, "alice", got)

	time.Sleep(50 * time.Millisecond)

	// Hết TTL thì entry không còn đọc được, kể cả khi cleanup chưa chạy
	_, found = cache.Get("user:1")
	assert.False(t, found)
}

func TestCacheDeleteRemovesEntryImmediately(t *testing.T) {
	cache := NewCache(time.Hour, time.Hour)

	cache.Set("user:2", "bob")
	cache.Delete("user:2")

	_, found := cache.Get("user:2")
	assert.False(t, found)
}
