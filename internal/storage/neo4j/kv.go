package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobboard/internal/repository"

	pkgneo4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

// Ensure KV implements repository.KV
var _ repository.KV = (*KV)(nil)

// KV stores each entry as a (:KVEntry {key, value}) node
type KV struct {
	client *pkgneo4j.Client
}

// NewKV creates a KV with a Neo4j client
func NewKV(client *pkgneo4j.Client) *KV {
	return &KV{client: client}
}

// EnsureConstraint makes KVEntry.key unique
func (r *KV) EnsureConstraint(ctx context.Context) error {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx,
			`CREATE CONSTRAINT kv_entry_key IF NOT EXISTS FOR (e:KVEntry) REQUIRE e.key IS UNIQUE`,
			nil,
		)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("neo4j kv: ensure constraint: %w", err)
	}
	return nil
}

// Get loads a value by key
func (r *KV) Get(ctx context.Context, key string) ([]byte, error) {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	value, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx,
			`MATCH (e:KVEntry {key: $key}) RETURN e.value AS value`,
			map[string]any{"key": key},
		)
		if err != nil {
			return nil, err
		}

		if !result.Next(ctx) {
			return nil, result.Err()
		}

		v, ok := result.Record().Get("value")
		if !ok {
			return nil, nil
		}
		s, _ := v.(string)
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j kv: get %q: %w", key, err)
	}

	s, ok := value.(string)
	if !ok {
		return nil, nil
	}
	return []byte(s), nil
}

// Set merges the entry node and overwrites its value
func (r *KV) Set(ctx context.Context, key string, value []byte) error {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `
			MERGE (e:KVEntry {key: $key})
			SET e.value = $value,
			    e.updatedAt = datetime()`,
			map[string]any{"key": key, "value": string(value)},
		)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("neo4j kv: set %q: %w", key, err)
	}
	return nil
}
