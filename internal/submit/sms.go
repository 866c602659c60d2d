package submit

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/julianstephens/quotewiz/internal/logger"
	"github.com/julianstephens/quotewiz/internal/models"
)

// smsSender is the part of the Twilio API service the SMS channel needs.
type smsSender interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSubmitter texts a one-line summary to the sales phone through Twilio.
type SMSSubmitter struct {
	client   smsSender
	from     string
	to       string
	currency string
}

func NewSMSSubmitter(accountSID, authToken string, settings models.Settings) *SMSSubmitter {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newSMSSubmitter(client.Api, settings)
}

func newSMSSubmitter(client smsSender, settings models.Settings) *SMSSubmitter {
	return &SMSSubmitter{
		client:   client,
		from:     settings.SMSFrom,
		to:       settings.SalesPhone,
		currency: settings.CurrencySymbol,
	}
}

func (s *SMSSubmitter) Name() string {
	return "sms"
}

func (s *SMSSubmitter) Submit(ctx context.Context, q models.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.to)
	params.SetFrom(s.from)
	params.SetBody(ShortSummary(q, s.currency))

	msg, err := s.client.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send sms via twilio: %w", err)
	}
	if msg != nil && msg.Sid != nil {
		logger.Debug("SMS queued", "sid", *msg.Sid, "quote", q.ID)
	}
	return nil
}
