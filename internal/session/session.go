// Package session owns the catalog, the saved set, the saved-jobs view and
// the apply form for one user session. Every mutation goes through Session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/honeycarbs/jobboard/internal/application"
	"github.com/honeycarbs/jobboard/internal/catalog"
	"github.com/honeycarbs/jobboard/internal/domain"
	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/saved"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrNoSavedView   = errors.New("saved jobs view is not open")
	ErrNoApplication = errors.New("no application in progress")
)

// Fetcher returns one normalised listing
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Job, error)
}

// SavedStore loads and persists the saved jobs
type SavedStore interface {
	LoadSaved(ctx context.Context) []domain.Job
	StoreSaved(ctx context.Context, jobs []domain.Job) error
}

type RefreshStatus string

const (
	RefreshLoaded RefreshStatus = "loaded"
	RefreshFailed RefreshStatus = "failed"
	RefreshStale  RefreshStatus = "stale"
)

// RefreshResult reports what happened to one refresh request
type RefreshResult struct {
	Seq            uint64
	Status         RefreshStatus
	Count          int
	Err            error
	ErrKind        jobdomain.FetchErrorKind
	RetryAvailable bool
}

// Status is a read-only summary of the session
type Status struct {
	Seq       uint64
	Jobs      int
	Visible   int
	Saved     int
	Query     string
	LastError error
	ViewOpen  bool
	Applying  bool
}

// ApplicationUpdate carries the fields to change; nil fields are left as is
type ApplicationUpdate struct {
	Name        *string
	Email       *string
	Phone       *string
	CoverLetter *string
}

// ApplicationStatus describes the form in progress
type ApplicationStatus struct {
	Job   domain.Job
	State application.State
	Draft application.Draft
}

type Session struct {
	mu      sync.Mutex
	fetcher Fetcher
	catalog *catalog.Catalog
	saved   *saved.Set
	view    *saved.View
	form    *application.Form
	seq     uint64
	lastErr error
	logger  *logging.Logger
}

// New builds a session and rehydrates the saved set from store
func New(ctx context.Context, fetcher Fetcher, store SavedStore, logger *logging.Logger) (*Session, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("session: fetcher is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("session")

	var persist saved.Store
	if store != nil {
		persist = store
	}

	set := saved.NewSet(persist, logger)
	if store != nil {
		jobs := store.LoadSaved(ctx)
		set.Restore(jobs)
		logger.Info("saved jobs restored", "count", len(jobs))
	}

	return &Session{
		fetcher: fetcher,
		catalog: catalog.New(),
		saved:   set,
		logger:  logger,
	}, nil
}

// Refresh fetches a new listing. Only the response to the most recently
// dispatched request is applied; older responses are dropped as stale.
func (s *Session) Refresh(ctx context.Context) RefreshResult {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	jobs, err := s.fetcher.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.logger.Info("dropping stale listing", "seq", seq, "latest", s.seq)
		return RefreshResult{Seq: seq, Status: RefreshStale}
	}

	if err != nil {
		s.catalog.Load(nil)
		s.lastErr = err
		s.logger.Warn("refresh failed", "seq", seq, "kind", jobdomain.KindOf(err), "err", err)
		return RefreshResult{
			Seq:            seq,
			Status:         RefreshFailed,
			Err:            err,
			ErrKind:        jobdomain.KindOf(err),
			RetryAvailable: true,
		}
	}

	s.catalog.Load(jobs)
	s.lastErr = nil
	if n := s.saved.Sync(jobs); n > 0 {
		s.logger.Debug("saved records refreshed", "count", n)
	}

	s.logger.Info("listing loaded", "seq", seq, "count", len(jobs))
	return RefreshResult{Seq: seq, Status: RefreshLoaded, Count: len(jobs)}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		Seq:       s.seq,
		Jobs:      s.catalog.Len(),
		Visible:   len(s.catalog.VisibleJobs()),
		Saved:     s.saved.Len(),
		Query:     s.catalog.Query(),
		LastError: s.lastErr,
		ViewOpen:  s.view != nil,
		Applying:  s.form != nil,
	}
}

// SetQuery updates the search text and returns the new listing
func (s *Session) SetQuery(text string) []domain.JobSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.SetQuery(text)
	return s.listingLocked()
}

// VisibleJobs returns the jobs matching the current query
func (s *Session) VisibleJobs() []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.catalog.VisibleJobs()
}

// Listing returns the visible jobs with their saved flag
func (s *Session) Listing() []domain.JobSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listingLocked()
}

func (s *Session) listingLocked() []domain.JobSummary {
	jobs := s.catalog.VisibleJobs()
	out := make([]domain.JobSummary, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, domain.Summarize(j, s.saved.Contains(j.ID)))
	}
	return out
}

// ToggleSaved flips the saved state of a job in the listing or the saved set
func (s *Session) ToggleSaved(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.catalog.Lookup(id)
	if !ok {
		j, ok = s.savedLookupLocked(id)
	}
	if !ok {
		return false, fmt.Errorf("session: toggle %q: %w", id, ErrJobNotFound)
	}

	isSaved := s.saved.Toggle(j)
	s.logger.Debug("saved toggled", "job_id", id, "saved", isSaved)
	return isSaved, nil
}

func (s *Session) IsSaved(id string) bool {
	return s.saved.Contains(id)
}

func (s *Session) SavedJobs() []domain.Job {
	return s.saved.Jobs()
}

func (s *Session) savedLookupLocked(id string) (domain.Job, bool) {
	for _, j := range s.saved.Jobs() {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}

// OpenSavedView hands a snapshot of the saved set to a new saved-jobs view,
// replacing any view already open.
func (s *Session) OpenSavedView() saved.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.saved.Snapshot()
	s.view = saved.NewView(snap)
	return snap
}

// SavedViewJobs returns what the open view shows
func (s *Session) SavedViewJobs() ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == nil {
		return nil, ErrNoSavedView
	}
	return s.view.Jobs(), nil
}

// RemoveFromSavedView drops a job from the view only
func (s *Session) RemoveFromSavedView(id string) ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == nil {
		return nil, ErrNoSavedView
	}
	if !s.view.Remove(id) {
		return nil, fmt.Errorf("session: remove %q: %w", id, ErrJobNotFound)
	}
	return s.view.Jobs(), nil
}

// CloseSavedView leaves the view. With merge the view's removals are applied
// to the saved set; without it they are discarded.
func (s *Session) CloseSavedView(merge bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == nil {
		return 0, ErrNoSavedView
	}

	removed := 0
	if merge {
		removed = s.saved.Merge(s.view.Snapshot(), s.view.IDs())
	}
	s.view = nil
	return removed, nil
}

// OpenApplication starts a new form for a job in the saved view, the
// listing or the saved set. A form already in progress is discarded.
func (s *Session) OpenApplication(jobID string) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.lookupLocked(jobID)
	if !ok {
		return domain.Job{}, fmt.Errorf("session: apply %q: %w", jobID, ErrJobNotFound)
	}

	if s.form != nil {
		s.logger.Debug("discarding unfinished application", "job_id", s.form.Job().ID)
	}
	s.form = application.Open(j)
	return j, nil
}

func (s *Session) lookupLocked(id string) (domain.Job, bool) {
	if s.view != nil {
		if j, ok := s.view.Lookup(id); ok {
			return j, true
		}
	}
	if j, ok := s.catalog.Lookup(id); ok {
		return j, true
	}
	return s.savedLookupLocked(id)
}

// UpdateApplication edits the form in progress
func (s *Session) UpdateApplication(u ApplicationUpdate) (ApplicationStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		return ApplicationStatus{}, ErrNoApplication
	}

	edits := []struct {
		v   *string
		set func(string) error
	}{
		{u.Name, s.form.SetName},
		{u.Email, s.form.SetEmail},
		{u.Phone, s.form.SetPhone},
		{u.CoverLetter, s.form.SetCoverLetter},
	}
	for _, e := range edits {
		if e.v == nil {
			continue
		}
		if err := e.set(*e.v); err != nil {
			return ApplicationStatus{}, err
		}
	}

	return s.applicationLocked(), nil
}

// Application returns the form in progress
func (s *Session) Application() (ApplicationStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		return ApplicationStatus{}, ErrNoApplication
	}
	return s.applicationLocked(), nil
}

func (s *Session) applicationLocked() ApplicationStatus {
	return ApplicationStatus{Job: s.form.Job(), State: s.form.State(), Draft: s.form.Draft()}
}

// SubmitApplication validates and accepts the form. A rejected form stays
// open for correction.
func (s *Session) SubmitApplication() (application.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		return application.Confirmation{}, ErrNoApplication
	}

	c, err := s.form.Submit()
	if err != nil {
		return application.Confirmation{}, err
	}

	s.form = nil
	s.logger.Info("application submitted", "application_id", c.ID, "job_id", c.JobID)
	return c, nil
}

func (s *Session) CancelApplication() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		return ErrNoApplication
	}
	if err := s.form.Cancel(); err != nil {
		return err
	}
	s.form = nil
	return nil
}

// Shutdown drains pending saved-set writes
func (s *Session) Shutdown(ctx context.Context) error {
	return s.saved.Close(ctx)
}
