package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/logger"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/submit"
	"github.com/julianstephens/quotewiz/internal/wizard"
)

const maxProgressWidth = 60

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-4, 10), maxProgressWidth)
		m.price.SetWidth(min(msg.Width, maxProgressWidth+4))
		m.summary.SetSize(msg.Width, max(msg.Height-6, 5))
		if m.form != nil {
			m.form = m.form.WithWidth(min(msg.Width, maxProgressWidth+20))
		}
		return m, nil

	case submitResultMsg:
		if msg.err != nil {
			m.submitErr = msg.err
			m.state = constants.StateResult
			return m, nil
		}
		m.submitErr = nil
		m.state = constants.StateSubmitted
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case constants.StateStep:
		return m.updateStep(msg)
	case constants.StateResult:
		return m.updateResult(msg)
	case constants.StateSubmitted:
		return m.updateSubmitted(msg)
	}
	return m, nil
}

func (m Model) updateStep(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		if m.session.Retreat() {
			m.missing = nil
			m.formError = ""
			m.buildForm()
			return m, m.form.Init()
		}
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)
	m.syncForm()

	switch m.form.State {
	case huh.StateCompleted:
		return m.completeStep()
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, tea.Batch(cmds...)
}

// completeStep records the submitted form and moves to the next step, or to
// the result once the last step is done. A step that cannot be left is shown
// again with the missing answers listed.
func (m Model) completeStep() (tea.Model, tea.Cmd) {
	answers := m.session.Answers()
	var errs []error
	for _, f := range wizard.Fields(m.formStep) {
		raw := m.stepForm.Value(f)
		if raw == answers.Value(f) {
			continue
		}
		if err := m.session.SetField(f, raw); err != nil {
			errs = append(errs, err)
		}
	}
	m.price.SetBreakdown(m.session.Breakdown())

	if len(errs) > 0 {
		m.formError = errors.Join(errs...).Error()
		m.buildForm()
		return m, m.form.Init()
	}
	m.formError = ""

	if !m.session.Advance() {
		m.missing = m.session.MissingFields()
		m.buildForm()
		return m, m.form.Init()
	}
	m.missing = nil

	if m.session.ResultShown() {
		return m.showResult()
	}
	m.buildForm()
	return m, m.form.Init()
}

// showResult freezes the answers into a quote. The quote is built once so
// retried submissions keep the same id.
func (m Model) showResult() (tea.Model, tea.Cmd) {
	m.state = constants.StateResult
	m.submitErr = nil
	m.form = nil

	q, err := m.session.Quote(m.settings)
	if err != nil {
		logger.Error("Failed to build quote", "error", err)
		m.formError = "Failed to build quote: " + err.Error()
		m.quote = models.Quote{}
		m.summary.SetQuote(nil)
		return m, nil
	}
	m.quote = q
	m.summary.SetQuote(&q)
	return m, nil
}

func (m Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			if !m.canSubmit() {
				return m, nil
			}
			m.state = constants.StateSubmitting
			m.submitErr = nil
			return m, submitQuote(m.submitter, m.quote)
		case key.Matches(msg, m.keys.Details):
			m.summary.ToggleDetails()
			m.price.SetDetailed(m.summary.Detailed())
			return m, nil
		case key.Matches(msg, m.keys.NewQuote):
			return m.newQuote()
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.summary, cmd = m.summary.Update(msg)
	return m, cmd
}

func (m Model) updateSubmitted(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.NewQuote):
			return m.newQuote()
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) newQuote() (tea.Model, tea.Cmd) {
	m.session.Reset()
	m.state = constants.StateStep
	m.quote = models.Quote{}
	m.summary.SetQuote(nil)
	m.missing = nil
	m.formError = ""
	m.submitErr = nil
	m.price.SetBreakdown(m.session.Breakdown())
	m.buildForm()
	return m, m.form.Init()
}

func submitQuote(s submit.Submitter, q models.Quote) tea.Cmd {
	return func() tea.Msg {
		err := s.Submit(context.Background(), q)
		if err != nil {
			logger.Error("Quote submission failed", "quote", q.ID, "error", err)
		}
		return submitResultMsg{err: err}
	}
}
