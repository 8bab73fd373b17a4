package repository

import "context"

// KV is the external key-value byte store the saved jobs are persisted in
type KV interface {
	// Get returns nil, nil when the key is absent
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
