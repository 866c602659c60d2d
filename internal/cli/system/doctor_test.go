package system

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/quotewiz/internal/cli"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/storage/sqlite"
	gokeyring "github.com/zalando/go-keyring"
)

func setupTestDoctorDB(t *testing.T) (*cli.Context, *bytes.Buffer, func()) {
	gokeyring.MockInit()

	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store:   store,
		Out:     out,
		Secrets: func() (map[string]string, error) { return map[string]string{}, nil },
	}

	cleanup := func() {
		store.Close()
	}

	return ctx, out, cleanup
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, out, cleanup := setupTestDoctorDB(t)
	defer cleanup()

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "All diagnostics passed!") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestDoctorCmd_NoChannelsIsWarning(t *testing.T) {
	ctx, out, cleanup := setupTestDoctorDB(t)
	defer cleanup()

	settings, _ := ctx.Store.GetSettings()
	settings.SubmitLog = false
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command should not fail without channels: %v", err)
	}
	if !strings.Contains(out.String(), "⚠ Submit channels: WARNING") {
		t.Errorf("output missing channel warning:\n%s", out.String())
	}
}

func TestDoctorCmd_BrokenSchema(t *testing.T) {
	ctx, _, cleanup := setupTestDoctorDB(t)
	defer cleanup()

	runner, err := ctx.Store.MigrationRunner()
	if err != nil {
		t.Fatalf("failed to get migration runner: %v", err)
	}
	if err := runner.SetVersion(999); err != nil {
		t.Fatalf("failed to corrupt schema version: %v", err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor command should fail with corrupted schema")
	}
}

func TestDoctorCmd_Unreachable(t *testing.T) {
	gokeyring.MockInit()
	ctx := &cli.Context{
		Store: sqlite.NewStore(filepath.Join(t.TempDir(), "missing.db")),
		Out:   &bytes.Buffer{},
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor command should fail without a database")
	}
	out := ctx.Out.(*bytes.Buffer).String()
	if !strings.Contains(out, "⊘ Schema version: SKIPPED") {
		t.Errorf("database checks were not skipped:\n%s", out)
	}
}

func TestValidateSettings(t *testing.T) {
	valid := models.DefaultSettings()
	valid.WebhookURL = "https://hooks.example.com"
	valid.SalesPhone = "+81312345678"

	tests := []struct {
		name    string
		modify  func(*models.Settings)
		wantErr bool
	}{
		{"defaults", func(*models.Settings) {}, false},
		{"bad timezone", func(s *models.Settings) { s.Timezone = "Nowhere/City" }, true},
		{"bad webhook", func(s *models.Settings) { s.WebhookURL = "hooks" }, true},
		{"bad sales email", func(s *models.Settings) { s.SalesEmail = "sales" }, true},
		{"local sms number", func(s *models.Settings) { s.SMSFrom = "0312345678" }, true},
		{"zero contact window", func(s *models.Settings) { s.ContactWindowHours = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.modify(&s)
			err := validateSettings(s)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckClockTimezone(t *testing.T) {
	ctx, _, cleanup := setupTestDoctorDB(t)
	defer cleanup()

	if err := checkClockTimezone(ctx); err != nil {
		t.Errorf("clock/timezone check failed: %v", err)
	}

	ctx.Now = func() time.Time { return time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC) }
	if err := checkClockTimezone(ctx); err == nil {
		t.Error("clock/timezone check accepted 1999")
	}
}
