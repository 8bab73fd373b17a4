package adzuna

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/sjson"

	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/pkg/adzuna"
)

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, query string, params adzuna.SearchParams) ([]adzuna.Job, error)
}

// Provider implements job.Provider using Adzuna API
type Provider struct {
	client   searchClient
	query    string
	location string
}

// NewProvider builds an Adzuna provider for a fixed keyword/location search
func NewProvider(client searchClient, query, location string) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	return &Provider{
		client:   client,
		query:    strings.TrimSpace(query),
		location: strings.TrimSpace(location),
	}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "adzuna"
}

// Fetch queries Adzuna and re-encodes each posting as a raw record
func (p *Provider) Fetch(ctx context.Context) ([]jobdomain.RawJob, error) {
	if p == nil || p.client == nil {
		return nil, jobdomain.NewNetworkError(fmt.Errorf("adzuna provider: client is nil"))
	}

	postings, err := p.client.SearchJobs(ctx, p.query, adzuna.SearchParams{Location: p.location})
	if err != nil {
		return nil, classify(err)
	}

	out := make([]jobdomain.RawJob, 0, len(postings))
	for _, posting := range postings {
		raw, err := encode(posting)
		if err != nil {
			return nil, jobdomain.NewMalformedResponse(err)
		}
		out = append(out, jobdomain.ParseRawJobString(raw))
	}

	return out, nil
}

func classify(err error) error {
	var se *adzuna.StatusError
	switch {
	case errors.As(err, &se):
		return jobdomain.NewHTTPError(se.Code, err)
	case errors.Is(err, adzuna.ErrDecode):
		return jobdomain.NewMalformedResponse(err)
	default:
		return jobdomain.NewNetworkError(err)
	}
}

// encode writes only the fields the posting actually carries so the
// normalizer applies its own defaults to the rest.
func encode(j adzuna.Job) (string, error) {
	raw := "{}"
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		raw, err = sjson.Set(raw, path, value)
	}

	if j.ID != "" {
		set("id", j.ID)
	}
	if j.Title != "" {
		set("title", j.Title)
	}
	if j.CompanyName != "" {
		set("company", j.CompanyName)
	}
	if j.Location != "" {
		set("location", j.Location)
	}
	if j.Description != "" {
		set("description", j.Description)
	}
	if j.URL != "" {
		set("redirect_url", j.URL)
	}
	if j.SalaryMin > 0 {
		set("salary.min", j.SalaryMin)
	}
	if j.SalaryMax > 0 {
		set("salary.max", j.SalaryMax)
	}
	if jobType := contractLabel(j.ContractTime, j.ContractType); jobType != "" {
		set("job_type", jobType)
	}
	if j.Remote {
		set("remote", true)
	}

	return raw, err
}

func contractLabel(contractTime, contractType string) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{contractTime, contractType} {
		s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
		if s == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(s[:1])+s[1:])
	}
	return strings.Join(parts, ", ")
}

var _ jobdomain.Provider = (*Provider)(nil)
