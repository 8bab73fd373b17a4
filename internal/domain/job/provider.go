package job

import (
	"context"
)

// Provider represents an upstream job listing source (empllo, Adzuna, a local file, ...)
type Provider interface {
	// e.g. "empllo" or "adzuna"
	Name() string

	// Fetch returns the raw records of one listing. Failures are *FetchError.
	Fetch(ctx context.Context) ([]RawJob, error)
}
