package saved

import (
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Snapshot is a value copy of the saved set handed to the saved-jobs view.
// IDs and Records always describe the same jobs in the same order.
type Snapshot struct {
	IDs     []string     `json:"ids"`
	Records []domain.Job `json:"jobs"`
	TakenAt time.Time    `json:"taken_at"`
}

// Reconcile returns the records whose id is in ids, in snapshot order.
// Ids the snapshot does not know are ignored.
func (s Snapshot) Reconcile(ids []string) []domain.Job {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	out := make([]domain.Job, 0, len(ids))
	for _, j := range s.Records {
		if _, ok := keep[j.ID]; ok {
			out = append(out, j)
		}
	}
	return out
}

// Len returns the number of jobs in the snapshot
func (s Snapshot) Len() int {
	return len(s.IDs)
}
