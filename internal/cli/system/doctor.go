package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/quotewiz/internal/cli"
	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/keyring"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/submit"
	"github.com/julianstephens/quotewiz/internal/utils"
	"github.com/julianstephens/quotewiz/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(*cli.Context) error
	// needsDB checks are skipped when the database is unreachable
	needsDB bool
	// warnOnly checks never fail the run
	warnOnly bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
	{name: "Settings valid", run: checkSettings, needsDB: true},
	{name: "Clock/timezone", run: checkClockTimezone, needsDB: true},
	{name: "Submit channels", run: checkSubmitChannels, needsDB: true, warnOnly: true},
	{name: "OS keyring", run: checkKeyring, warnOnly: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if err := ctx.Store.Ping(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	runner, err := ctx.Store.MigrationRunner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func checkMigrationsComplete(ctx *cli.Context) error {
	runner, err := ctx.Store.MigrationRunner()
	if err != nil {
		return err
	}

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", currentVersion, latestVersion)
	}
	return nil
}

// checkSettings re-validates stored settings, which may have been edited
// directly in the database.
func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return validateSettings(settings)
}

func validateSettings(s models.Settings) error {
	v := validation.New()
	var errs []error
	if !utils.ValidateTimezone(s.Timezone) {
		errs = append(errs, fmt.Errorf("invalid timezone %q", s.Timezone))
	}
	if s.ContactWindowHours <= 0 {
		errs = append(errs, fmt.Errorf("contact window must be positive, got %d", s.ContactWindowHours))
	}
	if s.FormalQuoteBusinessDays <= 0 {
		errs = append(errs, fmt.Errorf("formal quote business days must be positive, got %d", s.FormalQuoteBusinessDays))
	}
	optional := []struct {
		value string
		check func(string) error
	}{
		{s.WebhookURL, v.URL},
		{s.SalesEmail, v.Email},
		{s.SenderEmail, v.Email},
		{s.SalesPhone, v.E164},
		{s.SMSFrom, v.E164},
	}
	for _, o := range optional {
		if o.value == "" {
			continue
		}
		if err := o.check(o.value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkClockTimezone(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	clock, err := ctx.Clock(settings)
	if err != nil {
		return err
	}

	now := clock()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkSubmitChannels(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	_, err = ctx.Submitter(settings)
	if errors.Is(err, submit.ErrNoChannels) {
		return errors.New("no submit channels configured; quotes can be estimated but not sent")
	}
	return err
}

func checkKeyring(*cli.Context) error {
	if !keyring.IsAvailable() {
		return fmt.Errorf("%w; secrets must come from %s* environment variables", keyring.ErrKeyringUnavailable, constants.EnvPrefix)
	}
	return nil
}
