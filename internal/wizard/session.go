package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/julianstephens/quotewiz/internal/logger"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/pricing"
	"github.com/julianstephens/quotewiz/internal/utils"
	"github.com/julianstephens/quotewiz/internal/validation"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
	ErrNotFinished  = errors.New("questionnaire not finished")
)

// Session owns one pass through the questionnaire: the answers, the step
// controller and the price derived from the answers. Every write goes through
// SetField so the price is always current when the caller reads it.
type Session struct {
	answers   models.AnswerSet
	ctrl      Controller
	breakdown models.PriceBreakdown

	validator *validation.Validator
	calendar  *utils.BusinessCalendar
	now       func() time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock overrides the clock used for date checks and quote timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession starts a questionnaire at the first step with default answers.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		calendar: utils.NewBusinessCalendar(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.validator = validation.New(validation.WithClock(func() time.Time { return s.now() }))
	s.Reset()
	return s
}

// Reset discards all answers and returns to the first step.
func (s *Session) Reset() {
	s.answers = models.NewAnswerSet()
	s.ctrl = NewController()
	s.recompute()
	logger.Debug("Session reset")
}

// SetField validates raw for field and, when it is acceptable, stores it and
// recomputes the price. A rejected write leaves the answers unchanged.
func (s *Session) SetField(field models.Field, raw string) error {
	if !knownField(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if err := s.validator.Field(field, raw); err != nil {
		logger.Debug("Rejected answer", "field", field, "value", raw, "error", err)
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	next := s.answers
	if err := assign(&next, field, raw, s.now().Location()); err != nil {
		logger.Debug("Rejected answer", "field", field, "value", raw, "error", err)
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	s.answers = next
	s.recompute()

	logger.Debug("Answer recorded", "field", field, "value", raw, "price", s.breakdown.Total)
	return nil
}

// Check validates raw for field without recording it.
func (s *Session) Check(field models.Field, raw string) error {
	if !knownField(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return s.validator.Field(field, raw)
}

func (s *Session) recompute() {
	s.breakdown = pricing.Explain(s.answers)
}

// Answers returns a copy of the current answers.
func (s *Session) Answers() models.AnswerSet {
	return s.answers
}

// Price is the estimate for the current answers.
func (s *Session) Price() int {
	return s.breakdown.Total
}

// Breakdown is the full estimate for the current answers.
func (s *Session) Breakdown() models.PriceBreakdown {
	return s.breakdown
}

// Step returns the active step.
func (s *Session) Step() Step {
	return s.ctrl.Current()
}

// ResultShown reports whether the questionnaire has been completed.
func (s *Session) ResultShown() bool {
	return s.ctrl.ResultShown()
}

// Progress is the active step over the number of steps.
func (s *Session) Progress() float64 {
	return s.ctrl.ProgressFraction()
}

// CanAdvance reports whether the active step is complete.
func (s *Session) CanAdvance() bool {
	return s.ctrl.CanAdvance(s.answers)
}

// MissingFields lists the unanswered required fields of the active step.
func (s *Session) MissingFields() []models.Field {
	return MissingFields(s.ctrl.Current(), s.answers)
}

// Advance moves forward when the active step is complete.
func (s *Session) Advance() bool {
	from := s.ctrl.Current()
	if !s.ctrl.Advance(s.answers) {
		logger.Debug("Advance blocked", "step", from, "missing", MissingFields(from, s.answers))
		return false
	}
	if s.ctrl.ResultShown() {
		logger.Debug("Questionnaire completed", "price", s.breakdown.Total)
	} else {
		logger.Debug("Advanced", "from", from, "to", s.ctrl.Current())
	}
	return true
}

// Retreat moves back one step, keeping every answer.
func (s *Session) Retreat() bool {
	from := s.ctrl.Current()
	if !s.ctrl.Retreat() {
		return false
	}
	logger.Debug("Retreated", "from", from, "to", s.ctrl.Current())
	return true
}

// Quote freezes the completed questionnaire into a Quote stamped with an id
// and the follow-up deadlines from settings. The formal quote is due a number
// of business days after the site survey, or after today when no survey is booked.
func (s *Session) Quote(settings models.Settings) (models.Quote, error) {
	if !s.ctrl.ResultShown() {
		return models.Quote{}, ErrNotFinished
	}
	if res := s.validator.Answers(s.answers); res.HasConflicts() {
		return models.Quote{}, errors.New(res.FormatReport())
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return models.Quote{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	now := s.now().In(loc)

	// The formal quote follows the site survey when one is booked
	surveyDay := now
	if s.answers.NeedsAppointment() && s.answers.PreferredDate.After(now) {
		surveyDay = s.answers.PreferredDate.In(loc)
	}
	return models.Quote{
		ID:            uuid.NewString(),
		Answers:       s.answers,
		Price:         s.breakdown.Total,
		Breakdown:     s.breakdown,
		CreatedAt:     now,
		FollowUpBy:    now.Add(time.Duration(settings.ContactWindowHours) * time.Hour),
		FormalQuoteBy: s.calendar.AddBusinessDays(surveyDay, settings.FormalQuoteBusinessDays),
	}, nil
}

func knownField(f models.Field) bool {
	for _, known := range models.AllFields() {
		if f == known {
			return true
		}
	}
	return false
}

// assign parses raw into the field of a. raw has already passed validation.
func assign(a *models.AnswerSet, f models.Field, raw string, loc *time.Location) error {
	switch f {
	case models.FieldACType:
		a.ACType = models.ACType(raw)
	case models.FieldCapacity:
		a.Capacity = models.Capacity(raw)
	case models.FieldRooms:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > validation.MaxRooms {
			return fmt.Errorf("rooms must be between 1 and %d", validation.MaxRooms)
		}
		a.Rooms = n
	case models.FieldBuildingType:
		a.BuildingType = models.BuildingType(raw)
	case models.FieldFloor:
		a.Floor = models.Floor(raw)
	case models.FieldInstallationDifficulty:
		a.InstallationDifficulty = models.Difficulty(raw)
	case models.FieldUrgency:
		a.Urgency = models.Urgency(raw)
	case models.FieldCompanyName:
		a.CompanyName = strings.TrimSpace(raw)
	case models.FieldContactName:
		a.ContactName = strings.TrimSpace(raw)
	case models.FieldPhone:
		a.Phone = strings.TrimSpace(raw)
	case models.FieldEmail:
		a.Email = strings.TrimSpace(raw)
	case models.FieldAddress:
		a.Address = strings.TrimSpace(raw)
	case models.FieldContactMethod:
		a.ContactMethod = models.ContactMethod(raw)
	case models.FieldPreferredDate:
		if raw == "" {
			a.PreferredDate = time.Time{}
			return nil
		}
		day, err := utils.ParseDateInLocation(raw, loc)
		if err != nil {
			return err
		}
		a.PreferredDate = day
	case models.FieldPreferredTime:
		a.PreferredTime = models.TimeSlot(raw)
	case models.FieldNotes:
		a.Notes = raw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}
