package price

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/utils"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model renders the live estimate beside the questionnaire.
type Model struct {
	currency  string
	breakdown models.PriceBreakdown
	detailed  bool
	width     int
}

func New(currency string) Model {
	return Model{currency: currency}
}

func (m *Model) SetBreakdown(b models.PriceBreakdown) {
	m.breakdown = b
}

func (m *Model) SetDetailed(detailed bool) {
	m.detailed = detailed
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

// Visible reports whether there is a price worth showing.
func (m Model) Visible() bool {
	return m.breakdown.Total > 0
}

func (m Model) View() string {
	if !m.Visible() {
		return ""
	}

	lines := []string{
		labelStyle.Render("Estimated price"),
		amountStyle.Render(utils.FormatPrice(m.currency, m.breakdown.Total)),
		noteStyle.Render("*labor and materials included, excl. tax"),
	}
	if m.detailed {
		lines = append(lines, "", Breakdown(m.currency, m.breakdown))
	}

	style := panelStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Breakdown lists every pricing step that changed the estimate.
func Breakdown(currency string, b models.PriceBreakdown) string {
	var rows []string
	add := func(label, value string) {
		rows = append(rows, fmt.Sprintf("%-20s %s", label, value))
	}

	add("Base", utils.FormatPrice(currency, int(b.BasePrice)))
	if b.CapacityMultiplier != 1 {
		add("Capacity", fmt.Sprintf("× %g", b.CapacityMultiplier))
	}
	if b.RoomSurcharge > 0 {
		add("Additional rooms", "+ "+utils.FormatPrice(currency, int(b.RoomSurcharge)))
	}
	if b.BuildingFactor != 1 {
		add("Building", fmt.Sprintf("× %g", b.BuildingFactor))
	}
	if b.FloorSurcharge > 0 {
		add("Floor", "+ "+utils.FormatPrice(currency, int(b.FloorSurcharge)))
	}
	if b.DifficultyFactor != 1 {
		add("Installation", fmt.Sprintf("× %g", b.DifficultyFactor))
	}
	if b.UrgencyFactor != 1 {
		add("Urgency", fmt.Sprintf("× %g", b.UrgencyFactor))
	}
	add("Total", utils.FormatPrice(currency, b.Total))
	return strings.Join(rows, "\n")
}
