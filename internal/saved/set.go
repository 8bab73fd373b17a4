// Package saved manages the set of jobs the user bookmarked.
package saved

import (
	"context"
	"sync"
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

const writeTimeout = 10 * time.Second

// Store persists the whole saved list
type Store interface {
	StoreSaved(ctx context.Context, jobs []domain.Job) error
}

// Set is an insertion-ordered set of jobs keyed by id. Every mutation is
// written through to the Store by a single background writer that only
// keeps the newest pending state. Write failures are logged and never roll
// back the in-memory set.
type Set struct {
	mu      sync.Mutex
	order   []string
	records map[string]domain.Job

	store   Store
	logger  *logging.Logger
	pending []domain.Job
	dirty   bool
	closed  bool
	signal  chan struct{}
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewSet builds an empty set. A nil store disables write-through.
func NewSet(store Store, logger *logging.Logger) *Set {
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Set{
		records: make(map[string]domain.Job),
		store:   store,
		logger:  logger.Named("saved"),
		signal:  make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	if store != nil {
		go s.run()
	} else {
		close(s.done)
	}
	return s
}

// Toggle removes job if saved, otherwise appends it. It returns whether the
// job is saved afterwards.
func (s *Set) Toggle(job domain.Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := true
	if _, ok := s.records[job.ID]; ok {
		s.removeLocked(job.ID)
		saved = false
	} else {
		s.order = append(s.order, job.ID)
		s.records[job.ID] = job
	}

	s.enqueueLocked()
	return saved
}

func (s *Set) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.records[id]
	return ok
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.order)
}

// IDs returns saved ids in insertion order
func (s *Set) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.order...)
}

// Jobs returns saved records in insertion order
func (s *Set) Jobs() []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.jobsLocked()
}

// Snapshot copies ids and records for handing to another view
func (s *Set) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		IDs:     append([]string(nil), s.order...),
		Records: s.jobsLocked(),
		TakenAt: time.Now(),
	}
}

// Restore replaces the contents with rehydrated jobs without writing them back
func (s *Set) Restore(jobs []domain.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.records = make(map[string]domain.Job, len(jobs))
	for _, j := range jobs {
		if _, dup := s.records[j.ID]; dup {
			continue
		}
		s.order = append(s.order, j.ID)
		s.records[j.ID] = j
	}
}

// Sync refreshes stored records from a newer fetch. Membership is unchanged.
func (s *Set) Sync(jobs []domain.Job) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for _, j := range jobs {
		cur, ok := s.records[j.ID]
		if !ok || cur == j {
			continue
		}
		s.records[j.ID] = j
		updated++
	}

	if updated > 0 {
		s.enqueueLocked()
	}
	return updated
}

// Merge applies the removals made in a saved-jobs view: ids present in snap
// but missing from kept are unsaved. Additions are ignored. It returns the
// number of jobs removed.
func (s *Set) Merge(snap Snapshot, kept []string) int {
	keep := make(map[string]struct{}, len(kept))
	for _, id := range kept {
		keep[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, id := range snap.IDs {
		if _, ok := keep[id]; ok {
			continue
		}
		if _, ok := s.records[id]; ok {
			s.removeLocked(id)
			removed++
		}
	}

	if removed > 0 {
		s.enqueueLocked()
	}
	return removed
}

// Close flushes the pending write and stops the writer
func (s *Set) Close(ctx context.Context) error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.stop)
	})

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Set) removeLocked(id string) {
	delete(s.records, id)
	for i, cur := range s.order {
		if cur == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *Set) jobsLocked() []domain.Job {
	out := make([]domain.Job, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

func (s *Set) enqueueLocked() {
	if s.store == nil {
		return
	}
	if s.closed {
		s.logger.Warn("saved set closed, change not persisted", "count", len(s.order))
		return
	}

	s.pending = s.jobsLocked()
	s.dirty = true

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *Set) run() {
	defer close(s.done)

	for {
		select {
		case <-s.signal:
			s.flush()
		case <-s.stop:
			s.flush()
			return
		}
	}
}

func (s *Set) flush() {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	jobs := s.pending
	s.pending = nil
	s.dirty = false
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.store.StoreSaved(ctx, jobs); err != nil {
		s.logger.Warn("persist saved jobs failed", "count", len(jobs), "err", err)
		return
	}
	s.logger.Debug("saved jobs persisted", "count", len(jobs))
}
