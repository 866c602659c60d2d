package summary

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/submit"
	"github.com/julianstephens/quotewiz/internal/tui/components/price"
	"github.com/julianstephens/quotewiz/internal/utils"
)

type Model struct {
	quote    *models.Quote
	currency string
	detailed bool
	width    int
	height   int
	viewport viewport.Model
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(14)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			MarginTop(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

func New(currency string, width, height int) Model {
	m := Model{
		currency: currency,
		width:    width,
		height:   height,
		viewport: viewport.New(width, height),
	}
	m.updateViewportContent()
	return m
}

func (m *Model) SetQuote(q *models.Quote) {
	m.quote = q
	m.viewport.GotoTop()
	m.updateViewportContent()
}

// ToggleDetails shows or hides the price breakdown.
func (m *Model) ToggleDetails() {
	m.detailed = !m.detailed
	m.updateViewportContent()
}

func (m Model) Detailed() bool {
	return m.detailed
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.updateViewportContent()
}

func (m *Model) updateViewportContent() {
	var sections []string

	sections = append(sections, titleStyle.Render("Your estimate"))

	if m.quote == nil {
		sections = append(sections, sectionStyle.Render(emptyStyle.Render("No quote yet.")))
		m.viewport.SetContent(lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...)))
		return
	}

	q := m.quote
	total := priceStyle.Render(utils.FormatPrice(m.currency, q.Price))
	sections = append(sections, total, noteStyle.Render("Labor and materials included, excl. tax"))

	if m.detailed {
		sections = append(sections, sectionStyle.Render(price.Breakdown(m.currency, q.Breakdown)))
	}

	var rows []string
	for _, line := range submit.SummaryLines(*q) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(line.Label), line.Value))
	}
	sections = append(sections, sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	sections = append(sections, noteStyle.Render(fmt.Sprintf(
		"A formal quote will follow by %s.", utils.FormatDate(q.FormalQuoteBy))))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(lipgloss.NewStyle().Padding(0, 2).Render(content))
}
