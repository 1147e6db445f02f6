// Package snapdiff compares keyed snapshots and reports which keys changed.
package snapdiff

// Snapshot is a read-only, key-ordered view over a mapping.
type Snapshot[K comparable, V any] interface {
	Keys() []K
	Get(key K) (V, bool)
}

// OrderedMap is a mapping that remembers insertion order.
// It is not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Set stores v under k. New keys are appended; existing keys keep their position.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// PushFront stores v under k and moves k to the first position.
func (m *OrderedMap[K, V]) PushFront(k K, v V) {
	if _, ok := m.values[k]; ok {
		m.removeKey(k)
	}
	m.keys = append([]K{k}, m.keys...)
	m.values[k] = v
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Has reports whether k is present.
func (m *OrderedMap[K, V]) Has(k K) bool {
	_, ok := m.values[k]
	return ok
}

// Delete removes k and reports whether it was present.
func (m *OrderedMap[K, V]) Delete(k K) bool {
	if _, ok := m.values[k]; !ok {
		return false
	}
	delete(m.values, k)
	m.removeKey(k)
	return true
}

// Keys returns a copy of the keys in order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in key order.
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.values[k])
	}
	return values
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Range calls fn for each entry in order until fn returns false.
func (m *OrderedMap[K, V]) Range(fn func(k K, v V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a copy of the map with every value passed through copyFn.
// A nil copyFn copies values by assignment.
func (m *OrderedMap[K, V]) Clone(copyFn func(V) V) *OrderedMap[K, V] {
	c := &OrderedMap[K, V]{
		keys:   make([]K, len(m.keys)),
		values: make(map[K]V, len(m.values)),
	}
	copy(c.keys, m.keys)
	for k, v := range m.values {
		if copyFn != nil {
			v = copyFn(v)
		}
		c.values[k] = v
	}
	return c
}

func (m *OrderedMap[K, V]) removeKey(k K) {
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}
