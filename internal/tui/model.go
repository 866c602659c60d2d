package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/submit"
	"github.com/julianstephens/quotewiz/internal/tui/components/price"
	"github.com/julianstephens/quotewiz/internal/tui/components/summary"
	"github.com/julianstephens/quotewiz/internal/validation"
	"github.com/julianstephens/quotewiz/internal/wizard"
)

type Model struct {
	session   *wizard.Session
	settings  models.Settings
	submitter submit.Submitter
	validator *validation.Validator

	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	progress progress.Model
	price    price.Model
	summary  summary.Model

	form     *huh.Form
	stepForm *StepFormModel
	formStep wizard.Step

	quote     models.Quote
	missing   []models.Field
	formError string
	submitErr error

	quitting bool
	width    int
	height   int
}

// submitResultMsg reports the outcome of sending a quote.
type submitResultMsg struct {
	err error
}

// NewModel starts the questionnaire on the session's current step. submitter
// may be nil, in which case the result screen only shows the estimate.
func NewModel(session *wizard.Session, settings models.Settings, submitter submit.Submitter) Model {
	m := Model{
		session:   session,
		settings:  settings,
		submitter: submitter,
		validator: validation.New(),
		state:     constants.StateStep,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		price:     price.New(settings.CurrencySymbol),
		summary:   summary.New(settings.CurrencySymbol, 0, 0),
	}
	m.price.SetBreakdown(session.Breakdown())
	m.buildForm()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateResult:
		keys := []key.Binding{m.keys.Details, m.keys.NewQuote, m.keys.Quit}
		if m.canSubmit() {
			keys = append([]key.Binding{m.keys.Submit}, keys...)
		}
		return keys
	case constants.StateSubmitted:
		return []key.Binding{m.keys.NewQuote, m.keys.Quit}
	case constants.StateSubmitting:
		return []key.Binding{m.keys.Cancel}
	}
	keys := []key.Binding{m.keys.Next, m.keys.Cancel}
	if m.session.Step() > wizard.StepEquipment {
		keys = append([]key.Binding{m.keys.Back}, keys...)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp(), {m.keys.Help}}
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// buildForm replaces the form with the questions of the session's current step,
// prefilled from the recorded answers.
func (m *Model) buildForm() {
	m.formStep = m.session.Step()
	m.stepForm = newStepFormModel(m.session.Answers())
	m.form = NewStepForm(m.formStep, m.stepForm, m.validator, m.session.Check)
}

// syncForm records every form value that differs from the session's answers.
// Values the session rejects are left for the form's own validation to report.
func (m *Model) syncForm() {
	answers := m.session.Answers()
	for _, f := range wizard.Fields(m.formStep) {
		raw := m.stepForm.Value(f)
		if raw == answers.Value(f) {
			continue
		}
		_ = m.session.SetField(f, raw)
	}
	m.price.SetBreakdown(m.session.Breakdown())
}

func (m Model) canSubmit() bool {
	return m.submitter != nil && m.quote.ID != ""
}

// Quote is the quote built when the questionnaire was completed.
func (m Model) Quote() models.Quote {
	return m.quote
}
