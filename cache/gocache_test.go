package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoCache_Basic(t *testing.T) {
	cache := NewGoCache()
	storedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cache.Set("key1", []byte("value1"), storedAt)

	e, found := cache.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("value1"), e.payload)
	assert.Equal(t, storedAt, e.storedAt)

	_, found = cache.Get("missing")
	assert.False(t, found)

	assert.Equal(t, 1, cache.ItemCount())
}

func TestGoCache_Overwrite(t *testing.T) {
	cache := NewGoCache()
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cache.Set("key", []byte("old"), first)
	cache.Set("key", []byte("new"), first.Add(time.Minute))

	e, found := cache.Get("key")
	assert.True(t, found)
	assert.Equal(t, []byte("new"), e.payload)
	assert.Equal(t, first.Add(time.Minute), e.storedAt)
	assert.Equal(t, 1, cache.ItemCount())
}

