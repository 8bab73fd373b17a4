package adzuna

import (
	"context"
	"errors"
	"testing"

	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/pkg/adzuna"
)

type fakeClient struct {
	jobs      []adzuna.Job
	err       error
	lastQuery string
	lastWhere string
}

func (f *fakeClient) SearchJobs(_ context.Context, query string, params adzuna.SearchParams) ([]adzuna.Job, error) {
	f.lastQuery = query
	f.lastWhere = params.Location
	return f.jobs, f.err
}

func TestFetchReencodesPostings(t *testing.T) {
	client := &fakeClient{jobs: []adzuna.Job{{
		ID:           "99",
		Title:        "Backend Engineer",
		CompanyName:  "Acme",
		Location:     "Remote, US",
		URL:          "https://adzuna.example/99",
		ContractTime: "full_time",
		SalaryMin:    100000,
		SalaryMax:    130000,
	}, {}}}

	p, err := NewProvider(client, " golang ", "Oregon")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	raws, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if client.lastQuery != "golang" || client.lastWhere != "Oregon" {
		t.Errorf("search args = %q/%q", client.lastQuery, client.lastWhere)
	}

	jobs := jobdomain.NormalizeBatch(raws)
	if len(jobs) != 2 {
		t.Fatalf("len = %d, want 2", len(jobs))
	}

	j := jobs[0]
	if j.ID != "99" || j.Company != "Acme" || j.Title != "Backend Engineer" {
		t.Errorf("unexpected job: %+v", j)
	}
	if j.Salary != "$100000 - $130000" {
		t.Errorf("Salary = %q", j.Salary)
	}
	if j.JobType != "Full time" {
		t.Errorf("JobType = %q, want %q", j.JobType, "Full time")
	}
	if j.URL != "https://adzuna.example/99" {
		t.Errorf("URL = %q", j.URL)
	}

	if jobs[1].Title != "No Title" || jobs[1].ID == "" {
		t.Errorf("empty posting should normalise to defaults: %+v", jobs[1])
	}
}

func TestFetchClassifiesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want jobdomain.FetchErrorKind
	}{
		{"status", &adzuna.StatusError{Code: 401}, jobdomain.HTTPError},
		{"decode", errors.Join(adzuna.ErrDecode, errors.New("eof")), jobdomain.MalformedResponse},
		{"transport", errors.New("dial tcp: refused"), jobdomain.NetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := NewProvider(&fakeClient{err: tt.err}, "", "")
			_, err := p.Fetch(context.Background())
			if got := jobdomain.KindOf(err); got != tt.want {
				t.Errorf("kind = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewProviderRequiresClient(t *testing.T) {
	if _, err := NewProvider(nil, "", ""); err == nil {
		t.Fatal("expected error for nil client")
	}
}
