// Package storage persists the saved-job set through a key-value store.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/honeycarbs/jobboard/internal/domain"
	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/repository"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// DefaultKey is the storage key the saved jobs live under
const DefaultKey = "savedJobs"

const documentVersion = 1

type document struct {
	Version int          `json:"version"`
	IDs     []string     `json:"ids"`
	Jobs    []domain.Job `json:"jobs,omitempty"`
}

// Bridge reads and writes the saved set. Reads never fail: missing or
// unreadable data is an empty set.
type Bridge struct {
	kv     repository.KV
	key    string
	logger *logging.Logger
}

func NewBridge(kv repository.KV, key string, logger *logging.Logger) *Bridge {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Bridge{kv: kv, key: key, logger: logger.Named("storage")}
}

// LoadSavedIDs returns the persisted ids in saved order
func (b *Bridge) LoadSavedIDs(ctx context.Context) []string {
	return domain.IDs(b.LoadSaved(ctx))
}

// StoreSavedIDs persists ids without records. They load back as placeholder jobs.
func (b *Bridge) StoreSavedIDs(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return b.write(ctx, document{Version: documentVersion, IDs: ids})
}

// LoadSaved returns the persisted saved jobs in saved order
func (b *Bridge) LoadSaved(ctx context.Context) []domain.Job {
	data, err := b.kv.Get(ctx, b.key)
	if err != nil {
		b.logger.Warn("load saved jobs failed", "key", b.key, "err", err)
		return []domain.Job{}
	}
	if data == nil {
		return []domain.Job{}
	}

	jobs, err := decode(data)
	if err != nil {
		b.logger.Warn("discarding unreadable saved jobs", "key", b.key, "err", err)
		return []domain.Job{}
	}
	return jobs
}

// StoreSaved persists ids and full records
func (b *Bridge) StoreSaved(ctx context.Context, jobs []domain.Job) error {
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return b.write(ctx, document{Version: documentVersion, IDs: domain.IDs(jobs), Jobs: jobs})
}

func (b *Bridge) write(ctx context.Context, doc document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("storage: encode saved jobs: %w", err)
	}
	if err := b.kv.Set(ctx, b.key, data); err != nil {
		return fmt.Errorf("storage: write %q: %w", b.key, err)
	}
	return nil
}

// decode accepts the versioned document, a bare array of ids and a bare
// array of job objects.
func decode(data []byte) ([]domain.Job, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("storage: not valid JSON")
	}

	root := gjson.ParseBytes(data)
	switch {
	case root.IsArray():
		return collect(nil, root.Array()), nil
	case root.IsObject():
		ids := root.Get("ids")
		records := root.Get("jobs")
		if !ids.IsArray() && !records.IsArray() {
			return nil, fmt.Errorf("storage: document has neither ids nor jobs")
		}
		if !ids.IsArray() {
			return collect(nil, records.Array()), nil
		}
		return collect(ids.Array(), records.Array()), nil
	default:
		return nil, fmt.Errorf("storage: unexpected %s document", root.Type)
	}
}

// collect builds the saved list. When order is given it decides membership
// and order; otherwise entries are taken as they come. Entries may be id
// strings or job objects.
func collect(order, entries []gjson.Result) []domain.Job {
	records := make(map[string]domain.Job, len(entries))
	var sequence []string

	for _, e := range entries {
		switch {
		case e.IsObject():
			j := jobdomain.Normalize(jobdomain.ParseRawJobString(e.Raw))
			j.Source = e.Get("source").String()
			if _, ok := records[j.ID]; !ok {
				records[j.ID] = j
				sequence = append(sequence, j.ID)
			}
		case e.Type == gjson.String || e.Type == gjson.Number:
			id := e.String()
			if id == "" {
				continue
			}
			if _, ok := records[id]; !ok {
				records[id] = placeholder(id)
				sequence = append(sequence, id)
			}
		}
	}

	if order != nil {
		sequence = sequence[:0]
		for _, e := range order {
			if e.Type == gjson.String || e.Type == gjson.Number {
				sequence = append(sequence, e.String())
			}
		}
	}

	out := make([]domain.Job, 0, len(sequence))
	seen := make(map[string]struct{}, len(sequence))
	for _, id := range sequence {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		j, ok := records[id]
		if !ok {
			j = placeholder(id)
		}
		out = append(out, j)
	}
	return out
}

// placeholder is the default-filled job for an id with no stored record
func placeholder(id string) domain.Job {
	raw, err := sjson.Set("{}", "id", id)
	if err != nil {
		return domain.Job{
			ID:          id,
			Title:       domain.DefaultTitle,
			Company:     domain.DefaultCompany,
			Salary:      domain.DefaultSalary,
			JobType:     domain.DefaultAttribute,
			WorkModel:   domain.DefaultAttribute,
			Seniority:   domain.DefaultAttribute,
			Description: domain.DefaultDescription,
			Location:    domain.DefaultLocation,
		}
	}
	return jobdomain.Normalize(jobdomain.ParseRawJobString(raw))
}
