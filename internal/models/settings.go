package models

import "github.com/julianstephens/quotewiz/internal/constants"

// Settings represents application-wide settings
type Settings struct {
	CurrencySymbol          string `json:"currency_symbol"`            // symbol printed before quoted prices, e.g. "¥"
	Timezone                string `json:"timezone"`                   // IANA timezone name (e.g. "Asia/Tokyo", or "Local" for system timezone)
	ContactWindowHours      int    `json:"contact_window_hours"`       // hours within which sales promises to contact the customer
	FormalQuoteBusinessDays int    `json:"formal_quote_business_days"` // business days until the formal quote after the site survey
	SubmitLog               bool   `json:"submit_log"`                 // whether submitted quotes are written to the log
	WebhookURL              string `json:"webhook_url"`                // endpoint receiving a JSON copy of each submitted quote
	SalesEmail              string `json:"sales_email"`                // recipient of quote request emails
	SenderEmail             string `json:"sender_email"`               // From address for quote request emails
	SalesPhone              string `json:"sales_phone"`                // recipient of quote request SMS (E.164)
	SMSFrom                 string `json:"sms_from"`                   // Twilio sender number (E.164)
	SendGridSandbox         bool   `json:"sendgrid_sandbox"`           // send emails in SendGrid sandbox mode
}

// DefaultSettings returns the settings a fresh store is seeded with.
func DefaultSettings() Settings {
	s := Settings{SubmitLog: constants.DefaultSubmitLog}
	ApplyDefaultSettings(&s)
	return s
}
