package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "nested", "quotewiz.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_InitSeedsDefaults(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("GetSettings() = %+v, want defaults %+v", settings, models.DefaultSettings())
	}
	if !settings.SubmitLog {
		t.Error("SubmitLog default = false, want true")
	}
}

func TestStore_SaveSettings(t *testing.T) {
	store := setupTestStore(t)

	settings := models.DefaultSettings()
	settings.CurrencySymbol = "$"
	settings.Timezone = "America/Chicago"
	settings.ContactWindowHours = 48
	settings.SubmitLog = false
	settings.WebhookURL = "https://hooks.example.com/quotes"
	settings.SendGridSandbox = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got != settings {
		t.Errorf("GetSettings() = %+v, want %+v", got, settings)
	}
}

func TestStore_InitKeepsExistingSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotewiz.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	settings := models.DefaultSettings()
	settings.SalesEmail = "sales@example.com"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	store.Close()

	again := NewStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	defer again.Close()
	got, err := again.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got.SalesEmail != "sales@example.com" {
		t.Errorf("SalesEmail = %q after re-init, want preserved", got.SalesEmail)
	}
}

func TestStore_LoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
	if _, err := store.GetSettings(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("GetSettings() error = %v, want ErrNotInitialized", err)
	}
}

func TestStore_LoadAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotewiz.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	store.Close()

	loaded := NewStore(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer loaded.Close()
	if err := loaded.Ping(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	settings, err := loaded.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.CurrencySymbol != constants.DefaultCurrencySymbol {
		t.Errorf("CurrencySymbol = %q, want %q", settings.CurrencySymbol, constants.DefaultCurrencySymbol)
	}
	if loaded.GetConfigPath() != path {
		t.Errorf("GetConfigPath() = %q, want %q", loaded.GetConfigPath(), path)
	}
}

func TestStore_SchemaVersion(t *testing.T) {
	store := setupTestStore(t)
	runner, err := store.MigrationRunner()
	if err != nil {
		t.Fatalf("MigrationRunner() error = %v", err)
	}
	current, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		t.Fatalf("GetLatestVersion() error = %v", err)
	}
	if current != latest || current < 1 {
		t.Errorf("schema version = %d, latest = %d", current, latest)
	}
}
