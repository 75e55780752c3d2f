package ordered_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahardevv/OpenAPI.NET/ordered"
)

func TestMap_PreservesInsertionOrder(t *testing.T) {
	m := ordered.New[int](0)
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("b", 4) // overwrite keeps position

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 4, m.Value("b"))

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
	}
	assert.Equal(t, []string{"b", "a", "c"}, seen)
}

func TestMap_Delete(t *testing.T) {
	m := ordered.New[string](3)
	m.Set("x", "1")
	m.Set("y", "2")
	m.Set("z", "3")
	m.Delete("y")
	m.Delete("missing")

	assert.Equal(t, []string{"x", "z"}, m.Keys())
	assert.False(t, m.Has("y"))
	assert.Equal(t, 2, m.Len())
}

func TestMap_NilIsEmpty(t *testing.T) {
	var m *ordered.Map[int]
	v, ok := m.Get("a")
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Zero(t, m.Len())
	assert.Nil(t, m.Keys())
	assert.Nil(t, m.Clone())
	for range m.All() {
		t.Fatal("nil map must not yield")
	}
}

func TestMap_ZeroValueUsable(t *testing.T) {
	var m ordered.Map[bool]
	m.Set("k", true)
	assert.True(t, m.Value("k"))
}
