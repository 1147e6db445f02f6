package snapdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap_SetKeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("a", 4)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, 3, m.Len())
}

func TestOrderedMap_PushFront(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.PushFront("c", 3)
	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())

	m.PushFront("b", 5)
	assert.Equal(t, []string{"b", "c", "a"}, m.Keys())
	assert.Equal(t, []int{5, 3, 1}, m.Values())
}

func TestOrderedMap_Delete(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.False(t, m.Has("a"))
	assert.Equal(t, []string{"b"}, m.Keys())
}

func TestOrderedMap_KeysIsACopy(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	keys := m.Keys()
	keys[0] = "z"

	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestOrderedMap_Range(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	m.Range(func(k string, _ int) bool {
		seen = append(seen, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestOrderedMap_CloneUsesCopyFn(t *testing.T) {
	m := NewOrderedMap[string, []int]()
	m.Set("a", []int{1, 2})

	c := m.Clone(func(v []int) []int {
		out := make([]int, len(v))
		copy(out, v)
		return out
	})
	v, _ := c.Get("a")
	v[0] = 9

	orig, _ := m.Get("a")
	assert.Equal(t, []int{1, 2}, orig)

	c.Set("b", nil)
	assert.False(t, m.Has("b"))
}
