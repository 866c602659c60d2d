package quote

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/quotewiz/internal/cli"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/storage/sqlite"
)

var fixedNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	settings, _ := store.GetSettings()
	settings.Timezone = "UTC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	out := &bytes.Buffer{}
	return &cli.Context{
		Store:   store,
		Out:     out,
		Now:     func() time.Time { return fixedNow },
		Secrets: func() (map[string]string, error) { return map[string]string{}, nil },
	}, out
}

func completeCmd() EstimateCmd {
	return EstimateCmd{
		ACType:        "duct-type",
		Capacity:      "10.0",
		Rooms:         3,
		Building:      "high-rise",
		Floor:         "7+",
		Difficulty:    "very-difficult",
		Urgency:       "emergency",
		Company:       "Acme Trading",
		Contact:       "Sato",
		Phone:         "03-1234-5678",
		Email:         "sato@example.com",
		Address:       "1-2-3 Chiyoda, Tokyo",
		ContactMethod: "email",
	}
}

func TestEstimateCmd_Text(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := &EstimateCmd{ACType: "wall-mounted", Capacity: "4.0", Rooms: 1}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if !strings.Contains(out.String(), "¥156,000") {
		t.Errorf("output = %q", out.String())
	}
}

func TestEstimateCmd_Breakdown(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := completeCmd()
	cmd.Breakdown = true
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	for _, want := range []string{"¥2,542,500", "Additional rooms", "× 1.5"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestEstimateCmd_JSON(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := completeCmd()
	cmd.JSON = true
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	var b models.PriceBreakdown
	if err := json.Unmarshal(out.Bytes(), &b); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if b.Total != 2542500 || b.RoomSurcharge != 100000 {
		t.Errorf("breakdown = %+v", b)
	}
}

func TestEstimateCmd_Empty(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&EstimateCmd{Rooms: 1}).Run(ctx); err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if !strings.Contains(out.String(), "No estimate yet") {
		t.Errorf("output = %q", out.String())
	}
}

func TestEstimateCmd_InvalidValues(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &EstimateCmd{ACType: "window", Rooms: 0, Date: "2026-03-01"}
	err := cmd.Run(ctx)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"acType", "rooms", "preferredDate"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestEstimateCmd_SubmitIncomplete(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := completeCmd()
	cmd.ContactMethod = "appointment"
	cmd.Submit = true
	err := cmd.Run(ctx)
	if err == nil {
		t.Fatal("expected an error for a missing survey date")
	}
	if !strings.Contains(err.Error(), "step 4") || !strings.Contains(err.Error(), "preferredDate") {
		t.Errorf("error = %v", err)
	}
}

func TestEstimateCmd_Submit(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := completeCmd()
	cmd.Submit = true
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"¥2,542,500", "Acme Trading", "2026-03-13", "within 24 hours"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestEstimateCmd_SubmitWithoutChannels(t *testing.T) {
	ctx, _ := setupTestContext(t)

	settings, _ := ctx.Store.GetSettings()
	settings.SubmitLog = false
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	cmd := completeCmd()
	cmd.Submit = true
	if err := cmd.Run(ctx); err == nil {
		t.Error("submit succeeded without channels")
	}
}

func TestEstimateCmd_BeforeInit(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("Load() succeeded on a store that was never initialized")
	}
	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store: store,
		Out:   out,
		Now:   func() time.Time { return fixedNow },
	}

	cmd := &EstimateCmd{ACType: "wall-mounted", Capacity: "4.0", Rooms: 1}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("estimate before init failed: %v", err)
	}
	if !strings.Contains(out.String(), "¥156,000") {
		t.Errorf("output = %q, want default currency and price", out.String())
	}
}
