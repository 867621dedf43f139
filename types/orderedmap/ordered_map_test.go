package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		om := NewOrderedMap[string, int]()

		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)

		om.Set("two", 22)
		val, exists = om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 22, val)

		val, exists = om.Get("four")
		assert.False(t, exists)
		assert.Equal(t, 0, val)
		assert.False(t, om.Has("four"))
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("a", 1)
		om.Set("b", 2)
		om.Set("a", 3)

		assert.Equal(t, []string{"a", "b"}, om.Keys())
		assert.Equal(t, []int{3, 2}, om.Values())
	})

	t.Run("deletion", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)

		om.Delete("one")
		_, exists := om.Get("one")
		assert.False(t, exists)

		om.Delete("non-existent")

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, om.Count())
	})

	t.Run("iteration", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		var keys []string
		for el := om.Front(); el != nil; el = el.Next() {
			keys = append(keys, el.Key)
		}
		assert.Equal(t, []string{"one", "two", "three"}, keys)

		keys = keys[:0]
		for el := om.Back(); el != nil; el = el.Prev() {
			keys = append(keys, el.Key)
		}
		assert.Equal(t, []string{"three", "two", "one"}, keys)
	})

	t.Run("empty map", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		require.Nil(t, om.Front())
		require.Nil(t, om.Back())
		assert.Empty(t, om.Keys())
	})
}
