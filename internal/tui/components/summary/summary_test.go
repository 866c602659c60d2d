package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/pricing"
)

func testQuote() *models.Quote {
	a := models.AnswerSet{
		ACType:                 models.ACWallMounted,
		Capacity:               models.Capacity4_0,
		Rooms:                  2,
		BuildingType:           models.BuildingOffice,
		Floor:                  models.Floor4To6,
		InstallationDifficulty: models.DifficultyStandard,
		CompanyName:            "Acme Trading",
		ContactName:            "Sato",
		Phone:                  "03-1234-5678",
		Email:                  "sato@example.com",
		Address:                "1-2-3 Chiyoda, Tokyo",
		ContactMethod:          models.ContactEmail,
	}
	b := pricing.Explain(a)
	return &models.Quote{
		ID:            "c0ffee00-0000-0000-0000-000000000000",
		Answers:       a,
		Price:         b.Total,
		Breakdown:     b,
		FormalQuoteBy: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	}
}

func TestView_Empty(t *testing.T) {
	m := New("¥", 60, 20)
	if !strings.Contains(m.View(), "No quote yet") {
		t.Errorf("View() = %q", m.View())
	}
	if New("¥", 0, 0).View() != "" {
		t.Error("View() rendered with zero width")
	}
}

func TestView_Quote(t *testing.T) {
	m := New("¥", 80, 40)
	m.SetQuote(testQuote())

	view := m.View()
	for _, want := range []string{"¥236,000", "Acme Trading", "Wall mounted", "2026-03-13"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Additional rooms") {
		t.Error("breakdown shown before toggling details")
	}

	m.ToggleDetails()
	if !m.Detailed() || !strings.Contains(m.View(), "Additional rooms") {
		t.Errorf("breakdown missing after toggle:\n%s", m.View())
	}
}
