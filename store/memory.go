package store

import "sync"

// Memory is a map-backed Store. A RWMutex serializes mutation per store so
// that concurrent requests touching the same user's cart or the same cache
// key do not race.
type Memory[T any] struct {
	mu     sync.RWMutex
	values map[string]T
	order  []string
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{
		values: make(map[string]T),
	}
}

func (m *Memory[T]) Set(key string, value T) error {
	if key == "" {
		return &InvalidKeyError{Key: key, Reason: "key cannot be empty"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value

	return nil
}

func (m *Memory[T]) Get(key string) (T, error) {
	var zero T
	if key == "" {
		return zero, &InvalidKeyError{Key: key, Reason: "key cannot be empty"}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.values[key]
	if !exists {
		return zero, &NotFoundError{Key: key}
	}

	return value, nil
}

func (m *Memory[T]) Delete(key string) error {
	if key == "" {
		return &InvalidKeyError{Key: key, Reason: "key cannot be empty"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; !exists {
		return nil
	}

	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return nil
}

// Keys returns keys in insertion order.
func (m *Memory[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, len(m.order))
	copy(keys, m.order)

	return keys
}

// List returns values in insertion order.
func (m *Memory[T]) List() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	values := make([]T, 0, len(m.order))
	for _, key := range m.order {
		values = append(values, m.values[key])
	}

	return values
}
