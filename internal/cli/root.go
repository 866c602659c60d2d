package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/quotewiz/internal/keyring"
	"github.com/julianstephens/quotewiz/internal/logger"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/storage"
	"github.com/julianstephens/quotewiz/internal/submit"
	"github.com/julianstephens/quotewiz/internal/utils"
	"github.com/julianstephens/quotewiz/internal/wizard"
)

type Context struct {
	Store storage.Provider

	// Out receives command output. Nil means stdout.
	Out io.Writer
	// Now overrides the wall clock. Nil means time.Now.
	Now func() time.Time
	// Secrets resolves submit credentials. Nil means keyring.LookupAll.
	Secrets func() (map[string]string, error)
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Print(args ...any) {
	fmt.Fprint(c.out(), args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// Clock returns the wall clock in the settings timezone.
func (c *Context) Clock(settings models.Settings) (func() time.Time, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q in settings: %w", settings.Timezone, err)
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return func() time.Time { return now().In(loc) }, nil
}

// NewSession starts a questionnaire whose dates are interpreted in the
// settings timezone.
func (c *Context) NewSession(settings models.Settings) (*wizard.Session, error) {
	clock, err := c.Clock(settings)
	if err != nil {
		return nil, err
	}
	return wizard.NewSession(wizard.WithClock(clock)), nil
}

// Submitter builds the submit channels enabled in settings. An unreadable
// keyring only disables the channels that needed it.
func (c *Context) Submitter(settings models.Settings) (*submit.Fanout, error) {
	lookup := c.Secrets
	if lookup == nil {
		lookup = keyring.LookupAll
	}
	secrets, err := lookup()
	if err != nil {
		logger.Warn("Could not read secrets from the keyring", "error", err)
	}
	return submit.FromSettings(settings, secrets)
}

// SettingsOrDefaults reads the stored settings, falling back to the defaults
// when the store was never initialized.
func (c *Context) SettingsOrDefaults() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if errors.Is(err, storage.ErrNotInitialized) {
		logger.Info("Storage not initialized, using default settings")
		return models.DefaultSettings(), nil
	}
	return settings, err
}

// FieldNames joins field names for error messages.
func FieldNames(fields []models.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
