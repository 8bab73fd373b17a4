package application

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("phone number must have 11 digits")
	ErrMissingCoverLetter = errors.New("cover letter is required")
)

// PhoneDigits is the exact digit count a phone number must have
const PhoneDigits = 11

// ValidationError names the first rule a draft broke
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Draft is the applicant input for one job
type Draft struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"cover_letter"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type rule struct {
	field string
	value func(Draft) string
	tag   string
	err   error
}

// rules run in order; the first failure is reported
var rules = []rule{
	{"name", func(d Draft) string { return d.Name }, "notblank", ErrMissingField},
	{"email", func(d Draft) string { return d.Email }, "notblank", ErrMissingField},
	{"phone", func(d Draft) string { return d.Phone }, "notblank", ErrMissingField},
	{"email", func(d Draft) string { return d.Email }, "simple_email", ErrInvalidEmail},
	{"phone", func(d Draft) string { return StripPhone(d.Phone) }, fmt.Sprintf("numeric,len=%d", PhoneDigits), ErrInvalidPhone},
	{"cover_letter", func(d Draft) string { return d.CoverLetter }, "notblank", ErrMissingCoverLetter},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "simple_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("application: register %s: %v", tag, err))
	}
}

// Validate checks a draft fail-fast and returns a *ValidationError wrapping
// one of the Err* sentinels.
func Validate(d Draft) error {
	for _, r := range rules {
		if err := validate.Var(r.value(d), r.tag); err != nil {
			return &ValidationError{Field: r.field, Err: r.err}
		}
	}
	return nil
}

// StripPhone keeps only ASCII digits
func StripPhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
