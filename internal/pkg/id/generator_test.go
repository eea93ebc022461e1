package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	base := CacheKey("create a login form", "web", "", 0.99, 3, false)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, base, CacheKey("create a login form", "web", "", 0.99, 3, false))
		assert.True(t, strings.HasPrefix(base, "refine:"))
	})

	t.Run("input fields change the key", func(t *testing.T) {
		assert.NotEqual(t, base, CacheKey("create a signup form", "web", "", 0.99, 3, false))
		assert.NotEqual(t, base, CacheKey("create a login form", "general", "", 0.99, 3, false))
		assert.NotEqual(t, base, CacheKey("create a login form", "web", "formal", 0.99, 3, false))
	})

	t.Run("options change the key", func(t *testing.T) {
		assert.NotEqual(t, base, CacheKey("create a login form", "web", "", 0.95, 3, false))
		assert.NotEqual(t, base, CacheKey("create a login form", "web", "", 0.99, 1, false))
		assert.NotEqual(t, base, CacheKey("create a login form", "web", "", 0.99, 3, true))
	})

	t.Run("field boundaries do not collide", func(t *testing.T) {
		assert.NotEqual(t,
			CacheKey("ab", "c", "", 0.99, 3, false),
			CacheKey("a", "bc", "", 0.99, 3, false))
	})
}

func TestNewJobID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewJobID()
		assert.True(t, strings.HasPrefix(id, "job-"))
		assert.Len(t, id, len("job-")+24)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
