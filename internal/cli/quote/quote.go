package quote

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/quotewiz/internal/cli"
	"github.com/julianstephens/quotewiz/internal/logger"
	"github.com/julianstephens/quotewiz/internal/submit"
	"github.com/julianstephens/quotewiz/internal/tui"
)

type QuoteCmd struct{}

func (c *QuoteCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	session, err := ctx.NewSession(settings)
	if err != nil {
		return err
	}

	// Without channels the result screen shows the estimate only
	var submitter submit.Submitter
	fanout, err := ctx.Submitter(settings)
	switch {
	case errors.Is(err, submit.ErrNoChannels):
		logger.Warn("No submit channels configured, quotes cannot be sent")
	case err != nil:
		return err
	default:
		submitter = fanout
		logger.Debug("Submit channels ready", "channels", fanout.Channels())
	}

	p := tea.NewProgram(tui.NewModel(session, settings, submitter), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("quote wizard failed: %w", err)
	}
	return nil
}
