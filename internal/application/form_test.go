package application

import (
	"errors"
	"strings"
	"testing"

	"github.com/honeycarbs/jobboard/internal/domain"
)

var testJob = domain.Job{ID: "j1", Title: "Go Engineer", Company: "Acme"}

func fill(t *testing.T, f *Form, d Draft) {
	t.Helper()
	for _, err := range []error{
		f.SetName(d.Name),
		f.SetEmail(d.Email),
		f.SetPhone(d.Phone),
		f.SetCoverLetter(d.CoverLetter),
	} {
		if err != nil {
			t.Fatalf("edit: %v", err)
		}
	}
}

func TestSubmitConfirmation(t *testing.T) {
	f := Open(testJob)
	if f.State() != StateEmpty {
		t.Fatalf("State = %s, want EMPTY", f.State())
	}
	fill(t, f, validDraft())

	c, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !strings.Contains(c.Message, "Go Engineer") || !strings.Contains(c.Message, "Acme") {
		t.Errorf("Message = %q", c.Message)
	}
	if c.ID == "" || c.JobID != "j1" || c.AppliedAt.IsZero() {
		t.Errorf("unexpected confirmation: %+v", c)
	}
	if f.State() != StateSubmitted || f.Draft() != (Draft{}) {
		t.Errorf("after submit state=%s draft=%+v", f.State(), f.Draft())
	}

	if _, err := f.Submit(); !errors.Is(err, ErrFormClosed) {
		t.Errorf("second Submit = %v, want ErrFormClosed", err)
	}
	if err := f.SetName("x"); !errors.Is(err, ErrFormClosed) {
		t.Errorf("edit after submit = %v, want ErrFormClosed", err)
	}
}

func TestSubmitInvalidPhoneKeepsDraft(t *testing.T) {
	f := Open(testJob)
	d := validDraft()
	d.Phone = "12-34"
	fill(t, f, d)

	before := f.Draft()
	if before.Phone != "1234" {
		t.Fatalf("phone not stripped on input: %q", before.Phone)
	}

	_, err := f.Submit()
	if !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("Submit = %v, want ErrInvalidPhone", err)
	}
	if f.State() != StateEditing {
		t.Errorf("State = %s, want EDITING", f.State())
	}
	if f.Draft() != before {
		t.Errorf("draft changed: %+v, want %+v", f.Draft(), before)
	}

	if err := f.SetPhone("1234567890 1"); err != nil {
		t.Fatalf("SetPhone: %v", err)
	}
	if _, err := f.Submit(); err != nil {
		t.Errorf("Submit after fix: %v", err)
	}
}

func TestSubmitEmptyForm(t *testing.T) {
	f := Open(testJob)
	if _, err := f.Submit(); !errors.Is(err, ErrMissingField) {
		t.Fatalf("Submit = %v, want ErrMissingField", err)
	}
	if f.State() != StateEditing {
		t.Errorf("State = %s, want EDITING", f.State())
	}
}

func TestCancelClearsDraft(t *testing.T) {
	f := Open(testJob)
	fill(t, f, validDraft())

	if err := f.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if f.State() != StateCancelled || f.Draft() != (Draft{}) {
		t.Errorf("after cancel state=%s draft=%+v", f.State(), f.Draft())
	}
	if err := f.Cancel(); !errors.Is(err, ErrFormClosed) {
		t.Errorf("second Cancel = %v, want ErrFormClosed", err)
	}
}
