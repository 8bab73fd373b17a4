package file

import (
	"context"
	"fmt"
	"os"

	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
)

// Provider serves a listing stored on local disk, in any accepted envelope
type Provider struct {
	path string
}

// NewProvider builds a file provider
func NewProvider(path string) (*Provider, error) {
	if path == "" {
		return nil, fmt.Errorf("file provider: path is required")
	}
	return &Provider{path: path}, nil
}

func (p *Provider) Name() string {
	return "file"
}

// Fetch reads the file on every call so edits show up on refresh
func (p *Provider) Fetch(ctx context.Context) ([]jobdomain.RawJob, error) {
	if err := ctx.Err(); err != nil {
		return nil, jobdomain.NewNetworkError(err)
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, jobdomain.NewNetworkError(fmt.Errorf("file provider: %w", err))
	}

	return jobdomain.UnwrapEnvelope(data)
}

var _ jobdomain.Provider = (*Provider)(nil)
