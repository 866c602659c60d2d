// Package submit delivers completed quotes to the sales team.
package submit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/logger"
	"github.com/julianstephens/quotewiz/internal/models"
)

var ErrNoChannels = errors.New("no submit channel configured")

// Submitter hands a completed quote to one delivery channel.
type Submitter interface {
	Name() string
	Submit(ctx context.Context, q models.Quote) error
}

// Fanout submits to every channel and joins their errors. Channels that
// already delivered a quote are skipped when the same quote is submitted again.
type Fanout struct {
	channels []Submitter

	mu        sync.Mutex
	delivered map[string]map[string]bool // quote ID -> channel name
}

func NewFanout(channels ...Submitter) *Fanout {
	return &Fanout{channels: channels, delivered: make(map[string]map[string]bool)}
}

func (f *Fanout) wasDelivered(quoteID, channel string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.delivered[quoteID][channel]
}

func (f *Fanout) markDelivered(quoteID, channel string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delivered[quoteID] == nil {
		f.delivered[quoteID] = make(map[string]bool)
	}
	f.delivered[quoteID][channel] = true
}

func (f *Fanout) Name() string {
	return "fanout"
}

// Channels returns the names of the configured channels.
func (f *Fanout) Channels() []string {
	names := make([]string, 0, len(f.channels))
	for _, c := range f.channels {
		names = append(names, c.Name())
	}
	return names
}

func (f *Fanout) Submit(ctx context.Context, q models.Quote) error {
	if len(f.channels) == 0 {
		return ErrNoChannels
	}

	ctx, cancel := context.WithTimeout(ctx, constants.SubmitTimeout)
	defer cancel()

	var errs []error
	for _, c := range f.channels {
		if f.wasDelivered(q.ID, c.Name()) {
			logger.Debug("Skipping channel, quote already delivered", "channel", c.Name(), "quote", q.ID)
			continue
		}
		if err := c.Submit(ctx, q); err != nil {
			logger.Error("Submit failed", "channel", c.Name(), "quote", q.ID, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))
			continue
		}
		f.markDelivered(q.ID, c.Name())
		logger.Info("Quote delivered", "channel", c.Name(), "quote", q.ID)
	}
	return errors.Join(errs...)
}

// FromSettings builds the channels enabled by settings. Secrets are keyed by
// the constants.Secret* names. Channels with incomplete configuration are
// skipped with a warning.
func FromSettings(settings models.Settings, secrets map[string]string) (*Fanout, error) {
	var channels []Submitter

	if settings.SubmitLog {
		channels = append(channels, NewLogSubmitter(settings.CurrencySymbol))
	}

	if settings.WebhookURL != "" {
		channels = append(channels, NewWebhookSubmitter(settings.WebhookURL, secrets[constants.SecretWebhookSecret], settings.CurrencySymbol))
	}

	if settings.SalesEmail != "" {
		apiKey := secrets[constants.SecretSendGridAPIKey]
		if apiKey == "" {
			logger.Warn("Sales email set but no SendGrid API key, email channel disabled")
		} else {
			channels = append(channels, NewEmailSubmitter(apiKey, settings))
		}
	}

	if settings.SalesPhone != "" {
		sid := secrets[constants.SecretTwilioAccountSID]
		token := secrets[constants.SecretTwilioAuthToken]
		switch {
		case settings.SMSFrom == "":
			logger.Warn("Sales phone set but no sms_from number, SMS channel disabled")
		case sid == "" || token == "":
			logger.Warn("Sales phone set but Twilio credentials missing, SMS channel disabled")
		default:
			channels = append(channels, NewSMSSubmitter(sid, token, settings))
		}
	}

	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	return NewFanout(channels...), nil
}

// ConfirmationMessage is shown to the customer after a successful submit.
func ConfirmationMessage(settings models.Settings) string {
	return fmt.Sprintf("Your quote request has been sent. A representative will contact you within %d hours.", settings.ContactWindowHours)
}
