package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidOption ConflictType = "invalid_option"
	ConflictInvalidRooms  ConflictType = "invalid_rooms"
	ConflictInvalidDate   ConflictType = "invalid_date"
)

const (
	// Input limits for the presentation layer. Free text is not length
	// checked when it is recorded.
	MaxTextLen  = 200
	MaxNotesLen = 2000

	// MaxRooms bounds the room count so the room surcharge stays far inside int range.
	MaxRooms = 1000
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9(][0-9 ()-]{5,19}$`)

// Conflict represents a single answer that failed validation
type Conflict struct {
	Type        ConflictType
	Field       models.Field
	Value       string
	Description string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks raw answer values before they are written to an answer set.
// Unanswered values ("") always pass; required-ness is the wizard's concern.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
	tags     map[models.Field]string
}

// Option configures a Validator
type Option func(*Validator)

// WithClock overrides the clock used for the "not in the past" date rule.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New creates a new Validator
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	// Registration only fails on an empty tag or nil func
	_ = v.validate.RegisterValidation("notpast", v.notPast)
	_ = v.validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	v.tags = make(map[models.Field]string)
	for _, f := range models.AllFields() {
		v.tags[f] = fieldTag(f)
	}
	return v
}

func fieldTag(f models.Field) string {
	if values := models.OptionValues(f); values != nil {
		return "omitempty,oneof=" + strings.Join(values, " ")
	}
	switch f {
	case models.FieldRooms:
		return "required,number"
	case models.FieldPreferredDate:
		return "omitempty,datetime=" + constants.DateFormat + ",notpast"
	default:
		return "omitempty"
	}
}

// notPast accepts dates on or after today in the validator's clock location.
func (v *Validator) notPast(fl validator.FieldLevel) bool {
	now := v.now()
	day, err := time.ParseInLocation(constants.DateFormat, fl.Field().String(), now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !day.Before(today)
}

// Field validates a raw value for the named answer field.
func (v *Validator) Field(f models.Field, raw string) error {
	tag, ok := v.tags[f]
	if !ok {
		return fmt.Errorf("unknown field %q", f)
	}
	if err := v.validate.Var(raw, tag); err != nil {
		return describe(f, raw, err)
	}
	if f == models.FieldRooms {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil && errors.Is(err, strconv.ErrRange):
			return fmt.Errorf("%s must be at most %d", f, MaxRooms)
		case err != nil:
			return fmt.Errorf("%s must be a whole number", f)
		case n < 1:
			return fmt.Errorf("%s must be at least 1", f)
		case n > MaxRooms:
			return fmt.Errorf("%s must be at most %d", f, MaxRooms)
		}
	}
	return nil
}

// Answers re-checks every field of a complete answer set. Estimates never
// need this; it guards values that reached an AnswerSet without passing Field.
func (v *Validator) Answers(a models.AnswerSet) ValidationResult {
	var result ValidationResult
	for _, f := range models.AllFields() {
		raw := a.Value(f)
		if f == models.FieldPreferredDate {
			// Stored dates are already parsed and may have passed since entry
			continue
		}
		if err := v.Field(f, raw); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        conflictType(f, err),
				Field:       f,
				Value:       raw,
				Description: err.Error(),
			})
		}
	}
	return result
}

// Email checks an email address for the presentation layer.
func (v *Validator) Email(s string) error {
	if err := v.validate.Var(strings.TrimSpace(s), "required,email"); err != nil {
		return errors.New("enter a valid email address")
	}
	return nil
}

// Phone checks a phone number for the presentation layer. Local formats with
// spaces, dashes and parentheses are accepted.
func (v *Validator) Phone(s string) error {
	if err := v.validate.Var(strings.TrimSpace(s), "required,phone"); err != nil {
		return errors.New("enter a valid phone number")
	}
	return nil
}

// MaxLength returns a presentation check limiting input to n characters.
func (v *Validator) MaxLength(n int) func(string) error {
	tag := "max=" + strconv.Itoa(n)
	return func(s string) error {
		if err := v.validate.Var(s, tag); err != nil {
			return fmt.Errorf("use at most %d characters", n)
		}
		return nil
	}
}

// E164 checks a phone number in international format, as required by SMS delivery.
func (v *Validator) E164(s string) error {
	if err := v.validate.Var(s, "required,e164"); err != nil {
		return fmt.Errorf("%q is not an E.164 phone number", s)
	}
	return nil
}

// URL checks an absolute http(s) URL.
func (v *Validator) URL(s string) error {
	if err := v.validate.Var(s, "required,http_url"); err != nil {
		return fmt.Errorf("%q is not a valid http(s) URL", s)
	}
	return nil
}

// Required returns a validation func rejecting blank input, for huh inputs.
func Required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", label)
		}
		return nil
	}
}

func describe(f models.Field, raw string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("invalid %s: %w", f, err)
	}
	switch verrs[0].Tag() {
	case "oneof":
		return fmt.Errorf("invalid %s %q (expected one of: %s)", f, raw, strings.Join(models.OptionValues(f), ", "))
	case "required", "number":
		return fmt.Errorf("%s must be a whole number", f)
	case "datetime":
		return fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", f, raw)
	case "notpast":
		return fmt.Errorf("%s %s is in the past", f, raw)
	}
	return fmt.Errorf("invalid %s %q", f, raw)
}

func conflictType(f models.Field, err error) ConflictType {
	switch {
	case f == models.FieldRooms:
		return ConflictInvalidRooms
	case f == models.FieldPreferredDate:
		return ConflictInvalidDate
	}
	return ConflictInvalidOption
}
