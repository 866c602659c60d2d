package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/submit"
	"github.com/julianstephens/quotewiz/internal/wizard"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateStep:
		content = m.viewStep()
	case constants.StateResult:
		content = m.viewResult()
	case constants.StateSubmitting:
		content = docStyle.Render(warningStyle.Render("Sending your request..."))
	case constants.StateSubmitted:
		content = m.viewSubmitted()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

// viewTabs shows every step with the active one highlighted, followed by the
// progress bar.
func (m Model) viewTabs() string {
	var tabs []string
	for _, step := range wizard.Steps() {
		title := fmt.Sprintf("%d. %s", int(step), step.Title())
		if m.state == constants.StateStep && m.session.Step() == step {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	result := "Result"
	if m.state != constants.StateStep {
		tabs = append(tabs, activeTabStyle.Render(result))
	} else {
		tabs = append(tabs, inactiveTabStyle.Render(result))
	}

	bar := m.progress.ViewAs(m.session.Progress())
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, tabs...), bar)
}

func (m Model) viewStep() string {
	step := m.session.Step()
	sections := []string{
		descriptionStyle.Render(fmt.Sprintf("Step %d of %d: %s", int(step), wizard.StepCount, step.Description())),
	}

	if m.formError != "" {
		sections = append(sections, dangerStyle.Render(m.formError))
	}
	if len(m.missing) > 0 {
		names := make([]string, len(m.missing))
		for i, f := range m.missing {
			names[i] = fieldTitle(f)
		}
		sections = append(sections, warningStyle.Render("Please answer: "+strings.Join(names, ", ")))
	}

	if m.form != nil {
		sections = append(sections, m.form.View())
	}
	if m.price.Visible() {
		sections = append(sections, m.price.View())
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewResult() string {
	var sections []string
	if m.formError != "" {
		sections = append(sections, dangerStyle.Render(m.formError))
	}
	if m.submitErr != nil {
		sections = append(sections, dangerStyle.Render("Sending failed: "+m.submitErr.Error()))
		sections = append(sections, warningStyle.Render("Press 's' to try again."))
	}
	if m.submitter == nil {
		sections = append(sections, warningStyle.Render("Sending is not configured. Enable a channel with '"+constants.AppName+" settings'."))
	}
	sections = append(sections, m.summary.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewSubmitted() string {
	msg := submit.ConfirmationMessage(m.settings)
	ref := descriptionStyle.Render("Reference: " + m.quote.ID)
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, successStyle.Render(msg), ref))
}
