package blob

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey_KeepsExtension(t *testing.T) {
	key := ObjectKey("Vacation.JPG")
	assert.True(t, strings.HasPrefix(key, "photos/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}

func TestObjectKey_NoExtension(t *testing.T) {
	key := ObjectKey("upload")
	assert.True(t, strings.HasPrefix(key, "photos/"))
	assert.False(t, strings.Contains(key, "."))
}

func TestObjectKey_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		key := ObjectKey("a.png")
		_, dup := seen[key]
		assert.False(t, dup, "object keys must not collide")
		seen[key] = struct{}{}
	}
}
