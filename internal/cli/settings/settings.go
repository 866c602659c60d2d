package settings

import (
	"errors"
	"fmt"

	"github.com/julianstephens/quotewiz/internal/cli"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/utils"
	"github.com/julianstephens/quotewiz/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Currency                *string `help:"Currency symbol printed before prices."`
	Timezone                *string `help:"IANA timezone used for dates, or 'Local'."`
	ContactWindowHours      *int    `help:"Hours within which sales contacts the customer."`
	FormalQuoteBusinessDays *int    `help:"Business days until the formal quote is due."`
	SubmitLog               *bool   `help:"Write submitted quotes to the log."`
	WebhookURL              *string `name:"webhook-url" help:"Endpoint receiving submitted quotes as JSON. Empty disables."`
	SalesEmail              *string `help:"Recipient of quote emails. Empty disables."`
	SenderEmail             *string `help:"From address of quote emails. Defaults to the sales email."`
	SalesPhone              *string `help:"Recipient of quote SMS in E.164 format. Empty disables."`
	SMSFrom                 *string `name:"sms-from" help:"Twilio sender number in E.164 format."`
	SendGridSandbox         *bool   `name:"sendgrid-sandbox" help:"Send emails in SendGrid sandbox mode."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		printSettings(ctx, settings)
		return nil
	}

	updated, err := c.apply(&settings)
	if err != nil {
		return err
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}

// apply copies every given flag into settings after validating it. Nothing is
// changed when any flag is invalid.
func (c *SettingsCmd) apply(settings *models.Settings) (bool, error) {
	v := validation.New()
	next := *settings
	updated := false
	var errs []error

	setString := func(dst *string, src *string, check func(string) error) {
		if src == nil {
			return
		}
		if check != nil && *src != "" {
			if err := check(*src); err != nil {
				errs = append(errs, err)
				return
			}
		}
		*dst = *src
		updated = true
	}
	setPositive := func(dst *int, src *int, name string) {
		if src == nil {
			return
		}
		if *src <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
			return
		}
		*dst = *src
		updated = true
	}
	setBool := func(dst *bool, src *bool) {
		if src == nil {
			return
		}
		*dst = *src
		updated = true
	}

	setString(&next.CurrencySymbol, c.Currency, nil)
	setString(&next.Timezone, c.Timezone, func(s string) error {
		if !utils.ValidateTimezone(s) {
			return fmt.Errorf("invalid timezone %q", s)
		}
		return nil
	})
	setPositive(&next.ContactWindowHours, c.ContactWindowHours, "contact window hours")
	setPositive(&next.FormalQuoteBusinessDays, c.FormalQuoteBusinessDays, "formal quote business days")
	setBool(&next.SubmitLog, c.SubmitLog)
	setString(&next.WebhookURL, c.WebhookURL, v.URL)
	setString(&next.SalesEmail, c.SalesEmail, v.Email)
	setString(&next.SenderEmail, c.SenderEmail, v.Email)
	setString(&next.SalesPhone, c.SalesPhone, v.E164)
	setString(&next.SMSFrom, c.SMSFrom, v.E164)
	setBool(&next.SendGridSandbox, c.SendGridSandbox)

	if len(errs) > 0 {
		return false, errors.Join(errs...)
	}
	models.ApplyDefaultSettings(&next)
	*settings = next
	return updated, nil
}

func printSettings(ctx *cli.Context, s models.Settings) {
	orNone := func(v string) string {
		if v == "" {
			return "(not set)"
		}
		return v
	}

	ctx.Println("Current Settings:")
	ctx.Printf("  Currency:              %s\n", s.CurrencySymbol)
	ctx.Printf("  Timezone:              %s\n", s.Timezone)
	ctx.Printf("  Contact Window:        %d hours\n", s.ContactWindowHours)
	ctx.Printf("  Formal Quote Due:      %d business days\n", s.FormalQuoteBusinessDays)
	ctx.Println("\nSubmit Channels:")
	ctx.Printf("  Log:                   %v\n", s.SubmitLog)
	ctx.Printf("  Webhook URL:           %s\n", orNone(s.WebhookURL))
	ctx.Printf("  Sales Email:           %s\n", orNone(s.SalesEmail))
	ctx.Printf("  Sender Email:          %s\n", orNone(s.SenderEmail))
	ctx.Printf("  SendGrid Sandbox:      %v\n", s.SendGridSandbox)
	ctx.Printf("  Sales Phone:           %s\n", orNone(s.SalesPhone))
	ctx.Printf("  SMS From:              %s\n", orNone(s.SMSFrom))
}
