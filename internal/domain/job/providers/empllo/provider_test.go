package empllo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
)

func TestFetchUnwrapsJobsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[{"id":"1","title":"Go"},{"id":"2"}]}`))
	}))
	defer srv.Close()

	raws, err := NewProvider(Config{URL: srv.URL}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(raws) != 2 {
		t.Errorf("len = %d, want 2", len(raws))
	}
}

func TestFetchErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    jobdomain.FetchErrorKind
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusInternalServerError)
			},
			want: jobdomain.HTTPError,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			want: jobdomain.MalformedResponse,
		},
		{
			name: "unknown envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"items":[]}`))
			},
			want: jobdomain.MalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewProvider(Config{URL: srv.URL}).Fetch(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if got := jobdomain.KindOf(err); got != tt.want {
				t.Errorf("kind = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFetchHTTPErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewProvider(Config{URL: srv.URL}).Fetch(context.Background())
	fe, ok := err.(*jobdomain.FetchError)
	if !ok {
		t.Fatalf("err = %T, want *FetchError", err)
	}
	if fe.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", fe.Status, http.StatusNotFound)
	}
}

func TestFetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewProvider(Config{URL: url}).Fetch(context.Background())
	if got := jobdomain.KindOf(err); err == nil || got != jobdomain.NetworkError {
		t.Errorf("err = %v (kind %s), want NetworkError", err, got)
	}
}
