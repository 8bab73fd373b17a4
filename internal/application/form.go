package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// ErrFormClosed is returned for any action on a submitted or cancelled form
var ErrFormClosed = errors.New("application form is closed")

// Confirmation is the accepted application
type Confirmation struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	JobTitle  string    `json:"job_title"`
	Company   string    `json:"company"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	AppliedAt time.Time `json:"applied_at"`
	Message   string    `json:"message"`
}

// Form is the apply flow for one job. It is not safe for concurrent use.
type Form struct {
	job   domain.Job
	draft Draft
	state State
	now   func() time.Time
}

// Open starts an empty form for job
func Open(job domain.Job) *Form {
	return &Form{job: job, state: StateEmpty, now: time.Now}
}

func (f *Form) Job() domain.Job { return f.job }

func (f *Form) State() State { return f.state }

// Draft returns a copy of the current input
func (f *Form) Draft() Draft { return f.draft }

func (f *Form) SetName(v string) error {
	return f.edit(func(d *Draft) { d.Name = v })
}

func (f *Form) SetEmail(v string) error {
	return f.edit(func(d *Draft) { d.Email = v })
}

// SetPhone stores only the digits of v
func (f *Form) SetPhone(v string) error {
	return f.edit(func(d *Draft) { d.Phone = StripPhone(v) })
}

func (f *Form) SetCoverLetter(v string) error {
	return f.edit(func(d *Draft) { d.CoverLetter = v })
}

// Submit validates the draft. On failure the form stays editable with the
// draft untouched; on success the draft is cleared and the form is closed.
func (f *Form) Submit() (Confirmation, error) {
	if f.state.Terminal() {
		return Confirmation{}, ErrFormClosed
	}

	if verr := Validate(f.draft); verr != nil {
		if err := f.transition(StateEditing); err != nil {
			return Confirmation{}, err
		}
		return Confirmation{}, verr
	}

	if err := f.transition(StateSubmitted); err != nil {
		return Confirmation{}, err
	}

	c := Confirmation{
		ID:        uuid.NewString(),
		JobID:     f.job.ID,
		JobTitle:  f.job.Title,
		Company:   f.job.Company,
		Name:      f.draft.Name,
		Email:     f.draft.Email,
		Phone:     f.draft.Phone,
		AppliedAt: f.now().UTC(),
		Message:   fmt.Sprintf("Your application for %s at %s has been submitted.", f.job.Title, f.job.Company),
	}
	f.draft = Draft{}
	return c, nil
}

// Cancel discards the draft
func (f *Form) Cancel() error {
	if err := f.transition(StateCancelled); err != nil {
		return err
	}
	f.draft = Draft{}
	return nil
}

func (f *Form) edit(apply func(*Draft)) error {
	if err := f.transition(StateEditing); err != nil {
		return err
	}
	apply(&f.draft)
	return nil
}

func (f *Form) transition(to State) error {
	if f.state.Terminal() {
		return ErrFormClosed
	}
	if !IsTransitionAllowed(f.state, to) {
		return fmt.Errorf("application: cannot move from %s to %s", f.state, to)
	}
	f.state = to
	return nil
}
