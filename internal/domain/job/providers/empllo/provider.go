package empllo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
)

const (
	defaultURL     = "https://empllo.com/api/v1"
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
)

// Config defines the listing endpoint settings
type Config struct {
	URL        string
	HTTPClient *http.Client
}

// Provider implements job.Provider over the empllo listing API
type Provider struct {
	url        string
	httpClient *http.Client
}

// NewProvider builds an empllo provider
func NewProvider(cfg Config) *Provider {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = defaultURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Provider{url: url, httpClient: httpClient}
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "empllo"
}

// Fetch downloads the listing and unwraps its envelope
func (p *Provider) Fetch(ctx context.Context) ([]jobdomain.RawJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, jobdomain.NewNetworkError(fmt.Errorf("empllo: build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, jobdomain.NewNetworkError(fmt.Errorf("empllo: request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, jobdomain.NewHTTPError(resp.StatusCode, fmt.Errorf("empllo: %s", strings.TrimSpace(string(body))))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, jobdomain.NewNetworkError(fmt.Errorf("empllo: read body: %w", err))
	}

	return jobdomain.UnwrapEnvelope(body)
}

var _ jobdomain.Provider = (*Provider)(nil)
