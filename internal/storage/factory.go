package storage

import "fmt"

// NewStore builds an episode store for the requested backend. The empty kind
// defaults to the in-memory store; "sqlite" needs the sqlite build tag.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unknown episode store kind: %s", kind)
	}
}

// CloseIfSupported closes stores that hold external resources; the memory
// store has none and is a no-op.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
