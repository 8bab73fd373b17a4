package job

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type stubProvider struct {
	raws []RawJob
	err  error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Fetch(context.Context) ([]RawJob, error) {
	return p.raws, p.err
}

func TestNewServiceRequiresProvider(t *testing.T) {
	if _, err := NewService(); err == nil {
		t.Fatal("NewService without provider should fail")
	}
}

func TestServiceFetchNormalisesAndTagsSource(t *testing.T) {
	svc, err := NewService(WithProvider(&stubProvider{raws: []RawJob{
		ParseRawJobString(`{"id":"a","title":"Go"}`),
		ParseRawJobString(`{"id":"a","title":"dup"}`),
		ParseRawJobString(`{"title":"no id"}`),
	}}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	jobs, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("len = %d, want 2", len(jobs))
	}
	for _, j := range jobs {
		if j.Source != "stub" {
			t.Errorf("Source = %q, want stub", j.Source)
		}
	}
}

func TestServiceFetchAppliesLimit(t *testing.T) {
	raws := make([]RawJob, 0, 150)
	for i := 0; i < 150; i++ {
		raws = append(raws, ParseRawJobString(fmt.Sprintf(`{"id":"%d"}`, i)))
	}

	svc, _ := NewService(WithProvider(&stubProvider{raws: raws}))
	jobs, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(jobs) != DefaultLimit {
		t.Errorf("len = %d, want %d", len(jobs), DefaultLimit)
	}

	svc, _ = NewService(WithProvider(&stubProvider{raws: raws}), WithLimit(0))
	jobs, _ = svc.Fetch(context.Background())
	if len(jobs) != 150 {
		t.Errorf("unlimited len = %d, want 150", len(jobs))
	}
}

func TestServiceFetchPassesErrorThrough(t *testing.T) {
	want := NewHTTPError(503, errors.New("down"))
	svc, _ := NewService(WithProvider(&stubProvider{err: want}))

	_, err := svc.Fetch(context.Background())
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
	if KindOf(err) != HTTPError {
		t.Errorf("kind = %s, want %s", KindOf(err), HTTPError)
	}
}

func TestKindOfDefaultsToNetwork(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != NetworkError {
		t.Errorf("KindOf = %s, want %s", got, NetworkError)
	}
}
