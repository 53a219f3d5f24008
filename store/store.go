package store

// Store is a process-lifetime key-value store. All implementations hold
// data in memory only; nothing survives a restart.
type Store[T any] interface {
	Set(key string, value T) error
	Get(key string) (T, error)
	Delete(key string) error
	Keys() []string
	List() []T
}
