package adcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("c", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	m.Set("a", 20)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, []int{1, 20, 3}, m.Values())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	_, ok = m.Get("z")
	assert.False(t, ok)

	k, v := m.At(2)
	assert.Equal(t, "b", k)
	assert.Equal(t, 3, v)

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "a" {
			break
		}
	}
	assert.Equal(t, []string{"c", "a"}, seen)
}

func TestOrderedMapZeroValue(t *testing.T) {
	var m OrderedMap[int, int]
	m.Set(1, 1)
	assert.Equal(t, 1, m.Len())

	var nilMap *OrderedMap[int, int]
	assert.Equal(t, 0, nilMap.Len())
	for range nilMap.All() {
		t.Fatal("nil map yielded an entry")
	}
}
