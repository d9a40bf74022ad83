package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_PutGet(t *testing.T) {
	t.Parallel()

	c := New[string](time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("k", "v1")
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v1", got)

	// Last write wins
	c.Put("k", "v2")
	got, ok = c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v2", got)
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()

	c := New[int](5 * time.Minute)
	current := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Put("k", 42)

	// Just inside the TTL
	current = current.Add(5*time.Minute - time.Second)
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	// At the TTL boundary the entry is expired and evicted
	current = current.Add(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New[int](time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := strconv.Itoa(n % 5)
			c.Put(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5, c.Len())
}

func TestFingerprint_Deterministic(t *testing.T) {
	t.Parallel()

	a := Fingerprint(map[string]string{"date": "2024-03-01", "page": "1", "name": "alice"})
	b := Fingerprint(map[string]string{"name": "alice", "page": "1", "date": "2024-03-01"})
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	c := Fingerprint(map[string]string{"date": "2024-03-01", "page": "2", "name": "alice"})
	assert.NotEqual(t, a, c)
}

func TestFingerprint_DistinguishesKeysFromValues(t *testing.T) {
	t.Parallel()

	a := Fingerprint(map[string]string{"ab": "c"})
	b := Fingerprint(map[string]string{"a": "bc"})
	assert.NotEqual(t, a, b)
}
