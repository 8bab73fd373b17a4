package job

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// DefaultLimit caps how many jobs a single fetch yields
const DefaultLimit = 100

type Service interface {
	// Fetch pulls one listing and returns canonical jobs in upstream order
	Fetch(ctx context.Context) ([]domain.Job, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	provider Provider
	limit    int
	logger   *logging.Logger
}

// WithProvider sets the listing source
func WithProvider(p Provider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithLimit caps the number of jobs kept per fetch; n <= 0 means no cap
func WithLimit(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		limit:  DefaultLimit,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, fmt.Errorf("job.Service: provider is required")
	}

	return &service{
		provider: cfg.provider,
		limit:    cfg.limit,
		logger:   cfg.logger.Named("jobs"),
	}, nil
}

type service struct {
	provider Provider
	limit    int
	logger   *logging.Logger
}

// Fetch queries the provider, normalises and de-duplicates the result
func (s *service) Fetch(ctx context.Context) ([]domain.Job, error) {
	raws, err := s.provider.Fetch(ctx)
	if err != nil {
		s.logger.Warn("fetch failed",
			"provider", s.provider.Name(),
			"kind", KindOf(err),
			"err", err,
		)
		return nil, err
	}

	if s.limit > 0 && len(raws) > s.limit {
		raws = raws[:s.limit]
	}

	jobs := NormalizeBatch(raws)
	for i := range jobs {
		jobs[i].Source = s.provider.Name()
	}

	s.logger.Info("fetch completed",
		"provider", s.provider.Name(),
		"raw_count", len(raws),
		"job_count", len(jobs),
	)

	return jobs, nil
}
