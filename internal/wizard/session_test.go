package wizard

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/quotewiz/internal/models"
)

var fixedNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func newTestSession() *Session {
	return NewSession(WithClock(func() time.Time { return fixedNow }))
}

func mustSet(t *testing.T, s *Session, values map[models.Field]string) {
	t.Helper()
	for _, f := range models.AllFields() {
		raw, ok := values[f]
		if !ok {
			continue
		}
		if err := s.SetField(f, raw); err != nil {
			t.Fatalf("SetField(%s, %q) error = %v", f, raw, err)
		}
	}
}

func TestSession_NewIsEmpty(t *testing.T) {
	s := newTestSession()
	if s.Price() != 0 {
		t.Errorf("Price() = %d, want 0", s.Price())
	}
	if s.Step() != StepEquipment || s.ResultShown() {
		t.Errorf("step=%v result=%v, want first step", s.Step(), s.ResultShown())
	}
	if s.Answers().Rooms != 1 {
		t.Errorf("Rooms = %d, want 1", s.Answers().Rooms)
	}
	if s.Progress() != 0.25 {
		t.Errorf("Progress() = %v, want 0.25", s.Progress())
	}
}

func TestSession_PriceFollowsEveryWrite(t *testing.T) {
	s := newTestSession()

	steps := []struct {
		field models.Field
		raw   string
		want  int
	}{
		{models.FieldACType, "wall-mounted", 120000},
		{models.FieldCapacity, "4.0", 156000},
		{models.FieldRooms, "3", 256000},
		{models.FieldFloor, "7+", 306000},
		{models.FieldUrgency, "emergency", 459000},
		{models.FieldRooms, "1", 309000},
	}

	for _, st := range steps {
		if err := s.SetField(st.field, st.raw); err != nil {
			t.Fatalf("SetField(%s, %q) error = %v", st.field, st.raw, err)
		}
		if s.Price() != st.want {
			t.Errorf("after %s=%s Price() = %d, want %d", st.field, st.raw, s.Price(), st.want)
		}
		if s.Breakdown().Total != s.Price() {
			t.Errorf("Breakdown().Total = %d, Price() = %d", s.Breakdown().Total, s.Price())
		}
	}
}

func TestSession_SetFieldRejects(t *testing.T) {
	tests := []struct {
		name    string
		field   models.Field
		raw     string
		wantErr error
	}{
		{"unknown field", models.Field("colour"), "red", ErrUnknownField},
		{"unknown ac type", models.FieldACType, "window", ErrInvalidValue},
		{"capacity not exact", models.FieldCapacity, "4", ErrInvalidValue},
		{"zero rooms", models.FieldRooms, "0", ErrInvalidValue},
		{"negative rooms", models.FieldRooms, "-2", ErrInvalidValue},
		{"blank rooms", models.FieldRooms, "", ErrInvalidValue},
		{"too many rooms", models.FieldRooms, "1001", ErrInvalidValue},
		{"overflowing rooms", models.FieldRooms, "184467440737095", ErrInvalidValue},
		{"out of int range rooms", models.FieldRooms, "99999999999999999999", ErrInvalidValue},
		{"past date", models.FieldPreferredDate, "2026-03-09", ErrInvalidValue},
		{"bad date", models.FieldPreferredDate, "03/12/2026", ErrInvalidValue},
		{"unknown slot", models.FieldPreferredTime, "night", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			mustSet(t, s, map[models.Field]string{
				models.FieldACType:   "duct-type",
				models.FieldCapacity: "5.0",
				models.FieldRooms:    "2",
			})
			before, price := s.Answers(), s.Price()

			err := s.SetField(tt.field, tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetField() error = %v, want %v", err, tt.wantErr)
			}
			if s.Answers() != before {
				t.Errorf("answers changed after rejected write")
			}
			if s.Price() != price {
				t.Errorf("Price() = %d, want unchanged %d", s.Price(), price)
			}
		})
	}
}

func TestSession_TodayIsAcceptedAsDate(t *testing.T) {
	s := newTestSession()
	if err := s.SetField(models.FieldPreferredDate, "2026-03-10"); err != nil {
		t.Fatalf("SetField(today) error = %v", err)
	}
	if got := s.Answers().Value(models.FieldPreferredDate); got != "2026-03-10" {
		t.Errorf("PreferredDate = %q, want 2026-03-10", got)
	}
	if err := s.SetField(models.FieldPreferredDate, ""); err != nil {
		t.Fatalf("clearing date error = %v", err)
	}
	if !s.Answers().PreferredDate.IsZero() {
		t.Error("PreferredDate not cleared")
	}
}

func TestSession_OnlyFirstStepAnswered(t *testing.T) {
	s := newTestSession()
	mustSet(t, s, map[models.Field]string{
		models.FieldACType:   "ceiling-cassette",
		models.FieldCapacity: "2.5",
	})

	if !s.Advance() {
		t.Fatal("first Advance() = false, want true")
	}
	if s.Step() != StepSite {
		t.Fatalf("Step() = %v, want %v", s.Step(), StepSite)
	}
	if s.Advance() {
		t.Error("second Advance() = true, want false")
	}
	if s.Step() != StepSite {
		t.Errorf("Step() = %v, want %v", s.Step(), StepSite)
	}
	if got := s.MissingFields(); len(got) != 3 {
		t.Errorf("MissingFields() = %v, want 3 fields", got)
	}
}

func TestSession_RetreatKeepsAnswers(t *testing.T) {
	s := newTestSession()
	mustSet(t, s, map[models.Field]string{
		models.FieldACType:   "wall-mounted",
		models.FieldCapacity: "4.0",
	})
	s.Advance()
	mustSet(t, s, map[models.Field]string{models.FieldBuildingType: "high-rise"})
	price := s.Price()

	if !s.Retreat() {
		t.Fatal("Retreat() = false, want true")
	}
	if s.Answers().BuildingType != models.BuildingHighRise {
		t.Error("Retreat() rolled back a later answer")
	}
	if s.Price() != price {
		t.Errorf("Price() = %d after retreat, want %d", s.Price(), price)
	}
	if s.Retreat() {
		t.Error("Retreat() at first step = true, want false")
	}
}

func completeSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession()
	mustSet(t, s, map[models.Field]string{
		models.FieldACType:                 "wall-mounted",
		models.FieldCapacity:               "4.0",
		models.FieldBuildingType:           "office",
		models.FieldFloor:                  "1-3",
		models.FieldInstallationDifficulty: "standard",
		models.FieldUrgency:                "normal",
		models.FieldCompanyName:            "  Acme  ",
		models.FieldContactName:            "Jo",
		models.FieldPhone:                  "03-1234-5678",
		models.FieldEmail:                  "jo@acme.test",
		models.FieldAddress:                "1-2-3 Chiyoda",
		models.FieldContactMethod:          "appointment",
		models.FieldPreferredDate:          "2026-03-12",
		models.FieldPreferredTime:          "morning",
	})
	for i := 0; i < StepCount; i++ {
		if !s.Advance() {
			t.Fatalf("Advance() at %v = false (missing %v)", s.Step(), s.MissingFields())
		}
	}
	return s
}

func TestSession_Quote(t *testing.T) {
	s := newTestSession()
	if _, err := s.Quote(models.DefaultSettings()); !errors.Is(err, ErrNotFinished) {
		t.Fatalf("Quote() before result error = %v, want ErrNotFinished", err)
	}

	s = completeSession(t)
	settings := models.DefaultSettings()
	settings.Timezone = "UTC"
	settings.ContactWindowHours = 24
	settings.FormalQuoteBusinessDays = 3

	q, err := s.Quote(settings)
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if q.ID == "" {
		t.Error("Quote().ID is empty")
	}
	if q.Price != 156000 {
		t.Errorf("Quote().Price = %d, want 156000", q.Price)
	}
	if q.Answers.CompanyName != "Acme" {
		t.Errorf("CompanyName = %q, want trimmed %q", q.Answers.CompanyName, "Acme")
	}
	if !q.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want %v", q.CreatedAt, fixedNow)
	}
	if want := fixedNow.Add(24 * time.Hour); !q.FollowUpBy.Equal(want) {
		t.Errorf("FollowUpBy = %v, want %v", q.FollowUpBy, want)
	}
	// Survey on Thu 2026-03-12, three business days later
	if want := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC); !q.FormalQuoteBy.Equal(want) {
		t.Errorf("FormalQuoteBy = %v, want %v", q.FormalQuoteBy, want)
	}

	settings.Timezone = "Nowhere/Invalid"
	if _, err := s.Quote(settings); err == nil {
		t.Error("Quote() with invalid timezone error = nil")
	}
}

func TestSession_QuoteWithoutAppointment(t *testing.T) {
	s := newTestSession()
	mustSet(t, s, map[models.Field]string{
		models.FieldACType:                 "duct-type",
		models.FieldCapacity:               "10.0",
		models.FieldRooms:                  "3",
		models.FieldBuildingType:           "high-rise",
		models.FieldFloor:                  "7+",
		models.FieldInstallationDifficulty: "very-difficult",
		models.FieldUrgency:                "emergency",
		models.FieldCompanyName:            "Acme",
		models.FieldContactName:            "Jo",
		models.FieldPhone:                  "03-1234-5678",
		models.FieldEmail:                  "jo@acme.test",
		models.FieldAddress:                "1-2-3 Chiyoda",
		models.FieldContactMethod:          "phone",
	})
	for i := 0; i < StepCount; i++ {
		s.Advance()
	}

	settings := models.DefaultSettings()
	settings.Timezone = "UTC"
	q, err := s.Quote(settings)
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if q.Price != 2542500 {
		t.Errorf("Quote().Price = %d, want 2542500", q.Price)
	}
	// Tue 2026-03-10 plus three business days
	if want := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC); !q.FormalQuoteBy.Equal(want) {
		t.Errorf("FormalQuoteBy = %v, want %v", q.FormalQuoteBy, want)
	}
}

func TestSession_Reset(t *testing.T) {
	s := completeSession(t)
	s.Reset()
	if s.ResultShown() || s.Step() != StepEquipment {
		t.Errorf("Reset() left step=%v result=%v", s.Step(), s.ResultShown())
	}
	if s.Price() != 0 {
		t.Errorf("Price() after Reset = %d, want 0", s.Price())
	}
	if s.Answers() != models.NewAnswerSet() {
		t.Error("Reset() kept answers")
	}
}

func TestSession_CheckDoesNotWrite(t *testing.T) {
	s := newTestSession()
	if err := s.Check(models.FieldACType, string(models.ACWallMounted)); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if s.Answers().ACType != "" || s.Price() != 0 {
		t.Error("Check() recorded the answer")
	}
	if err := s.Check(models.FieldPreferredDate, "2026-03-09"); err == nil {
		t.Error("Check() accepted a past date")
	}
	if err := s.Check(models.Field("budget"), "1"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Check() error = %v, want ErrUnknownField", err)
	}
}

func TestSession_LongFreeTextIsRecorded(t *testing.T) {
	s := newTestSession()
	long := strings.Repeat("株式会社", 100)
	if err := s.SetField(models.FieldCompanyName, long); err != nil {
		t.Fatalf("SetField() error = %v", err)
	}
	if s.Answers().CompanyName != long {
		t.Error("long company name was not recorded")
	}
	notes := strings.Repeat("n", 5000)
	if err := s.SetField(models.FieldNotes, notes); err != nil {
		t.Fatalf("SetField(notes) error = %v", err)
	}
}
