package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/storage/memory"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, errors.New("offline") }
func (failingKV) Set(context.Context, string, []byte) error   { return errors.New("offline") }

func sampleJob(id, title string) domain.Job {
	return domain.Job{
		ID:          id,
		Title:       title,
		Company:     "Acme",
		Salary:      domain.DefaultSalary,
		JobType:     "Full-time",
		WorkModel:   "Remote",
		Seniority:   domain.DefaultAttribute,
		Description: domain.DefaultDescription,
		Location:    "Berlin",
		Source:      "empllo",
	}
}

func TestBridgeRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := NewBridge(memory.NewKV(), "", logging.NewNop())

	jobs := []domain.Job{sampleJob("b", "Second"), sampleJob("a", "First")}
	if err := b.StoreSaved(ctx, jobs); err != nil {
		t.Fatalf("StoreSaved: %v", err)
	}

	got := b.LoadSaved(ctx)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for i := range jobs {
		if got[i] != jobs[i] {
			t.Errorf("job %d = %+v, want %+v", i, got[i], jobs[i])
		}
	}

	ids := b.LoadSavedIDs(ctx)
	if len(ids) != 2 || ids[0] != "b" || ids[1] != "a" {
		t.Errorf("LoadSavedIDs = %v", ids)
	}
}

func TestBridgeStoreSavedIDs(t *testing.T) {
	ctx := context.Background()
	b := NewBridge(memory.NewKV(), "", nil)

	if err := b.StoreSavedIDs(ctx, []string{"x", "y", "x"}); err != nil {
		t.Fatalf("StoreSavedIDs: %v", err)
	}

	got := b.LoadSaved(ctx)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "x" || got[0].Title != domain.DefaultTitle {
		t.Errorf("placeholder = %+v", got[0])
	}
}

func TestBridgeLoadTolerance(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"corrupt", `{"ids":[`, []string{}},
		{"scalar", `42`, []string{}},
		{"object without lists", `{"foo":1}`, []string{}},
		{"legacy id array", `["3","1"]`, []string{"3", "1"}},
		{"legacy job array", `[{"id":"5","title":"Dev","salary":1000},{"id":"5"}]`, []string{"5"}},
		{"ids decide order", `{"ids":["2","1"],"jobs":[{"id":"1"},{"id":"2"},{"id":"9"}]}`, []string{"2", "1"}},
		{"jobs only", `{"jobs":[{"id":"1"}]}`, []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := memory.NewKV()
			_ = kv.Set(context.Background(), DefaultKey, []byte(tt.value))

			got := NewBridge(kv, DefaultKey, nil).LoadSavedIDs(context.Background())
			if len(got) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ids = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestBridgeLegacyRecordsNormalised(t *testing.T) {
	kv := memory.NewKV()
	_ = kv.Set(context.Background(), DefaultKey, []byte(`[{"id":"5","title":"Dev","salary":1000}]`))

	got := NewBridge(kv, "", nil).LoadSaved(context.Background())
	if len(got) != 1 || got[0].Salary != "$1000" || got[0].Company != domain.DefaultCompany {
		t.Errorf("LoadSaved = %+v", got)
	}
}

func TestBridgeMissingAndFailingStore(t *testing.T) {
	ctx := context.Background()

	if got := NewBridge(memory.NewKV(), "", nil).LoadSavedIDs(ctx); got == nil || len(got) != 0 {
		t.Errorf("missing key = %v, want empty", got)
	}

	b := NewBridge(failingKV{}, "", nil)
	if got := b.LoadSaved(ctx); len(got) != 0 {
		t.Errorf("failing store load = %v, want empty", got)
	}
	if err := b.StoreSaved(ctx, nil); err == nil {
		t.Error("StoreSaved on failing store should return an error")
	}
}
