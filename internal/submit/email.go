package submit

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/models"
	"github.com/julianstephens/quotewiz/internal/utils"
)

// mailSender is the part of *sendgrid.Client the email channel needs.
type mailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

var quoteEmailHTML = template.Must(template.New("quote").Parse(`<h2>New installation quote request</h2>
<p><strong>Estimated price:</strong> {{.Price}} <em>(labor and materials, excl. tax)</em></p>
<table>
{{range .Lines}}<tr><td><strong>{{.Label}}</strong></td><td>{{.Value}}</td></tr>
{{end}}</table>
<p>Contact the customer by {{.FollowUpBy}}. Formal quote due {{.FormalQuoteBy}}.</p>
<p style="color:#888">Quote {{.ID}}</p>
`))

// EmailSubmitter sends the quote to the sales mailbox through SendGrid.
type EmailSubmitter struct {
	client   mailSender
	from     *mail.Email
	to       *mail.Email
	sandbox  bool
	currency string
}

func NewEmailSubmitter(apiKey string, settings models.Settings) *EmailSubmitter {
	return newEmailSubmitter(sendgrid.NewSendClient(apiKey), settings)
}

func newEmailSubmitter(client mailSender, settings models.Settings) *EmailSubmitter {
	sender := settings.SenderEmail
	if sender == "" {
		sender = settings.SalesEmail
	}
	return &EmailSubmitter{
		client:   client,
		from:     mail.NewEmail(constants.AppName, sender),
		to:       mail.NewEmail("Sales", settings.SalesEmail),
		sandbox:  settings.SendGridSandbox,
		currency: settings.CurrencySymbol,
	}
}

func (e *EmailSubmitter) Name() string {
	return "email"
}

func (e *EmailSubmitter) Submit(ctx context.Context, q models.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	htmlContent, err := e.renderHTML(q)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(constants.EmailSubjectTemplate, q.Answers.CompanyName)
	message := mail.NewSingleEmail(e.from, subject, e.to, Summary(q, e.currency), htmlContent)
	if q.Answers.Email != "" {
		message.SetReplyTo(mail.NewEmail(q.Answers.ContactName, q.Answers.Email))
	}

	if e.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	resp, err := e.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func (e *EmailSubmitter) renderHTML(q models.Quote) (string, error) {
	var buf bytes.Buffer
	err := quoteEmailHTML.Execute(&buf, map[string]any{
		"ID":            q.ID,
		"Price":         utils.FormatPrice(e.currency, q.Price),
		"Lines":         SummaryLines(q),
		"FollowUpBy":    q.FollowUpBy.Format(constants.DateFormat + " " + constants.TimeFormat),
		"FormalQuoteBy": utils.FormatDate(q.FormalQuoteBy),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}
	return buf.String(), nil
}
