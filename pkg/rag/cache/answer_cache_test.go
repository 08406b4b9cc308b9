package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyNormalization(t *testing.T) {
	base := Key("Java developers, 40 minutes")

	// Case and surrounding whitespace must not change the slot.
	assert.Equal(t, base, Key("  java developers, 40 minutes  "))
	assert.Equal(t, base, Key("JAVA DEVELOPERS, 40 MINUTES"))

	// Different questions get different slots.
	assert.NotEqual(t, base, Key("python developers, 40 minutes"))
}

func TestKeyPrefix(t *testing.T) {
	key := Key("anything")
	assert.True(t, strings.HasPrefix(key, "advisor:answer:"))
	// sha256 hex digest after the prefix
	assert.Len(t, key, len("advisor:answer:")+64)
}

func TestNilCacheIsNoOp(t *testing.T) {
	cache := NewAnswerCache(nil, time.Minute)
	assert.Nil(t, cache)

	// Methods on the nil receiver must not panic and must miss.
	val, ok := cache.Get(context.Background(), "q")
	assert.False(t, ok)
	assert.Empty(t, val)

	cache.Set(context.Background(), "q", "a")
}
