package constants

const (
	// General Settings
	SettingCurrencySymbol          = "currency_symbol"
	SettingTimezone                = "timezone"
	SettingContactWindowHours      = "contact_window_hours"
	SettingFormalQuoteBusinessDays = "formal_quote_business_days"

	// Submit Settings
	SettingSubmitLog       = "submit_log"
	SettingWebhookURL      = "webhook_url"
	SettingSalesEmail      = "sales_email"
	SettingSenderEmail     = "sender_email"
	SettingSalesPhone      = "sales_phone"
	SettingSMSFrom         = "sms_from"
	SettingSendGridSandbox = "sendgrid_sandbox"

	// Default Settings Values
	DefaultCurrencySymbol          = "¥"
	DefaultTimezone                = "Local" // Use system local timezone by default
	DefaultContactWindowHours      = 24
	DefaultFormalQuoteBusinessDays = 3
	DefaultSubmitLog               = true

	// Secret names, resolved from QUOTEWIZ_<NAME> or the OS keyring
	SecretDBConnection     = "DB_CONNECTION"
	SecretSendGridAPIKey   = "SENDGRID_API_KEY"
	SecretTwilioAccountSID = "TWILIO_ACCOUNT_SID"
	SecretTwilioAuthToken  = "TWILIO_AUTH_TOKEN"
	SecretWebhookSecret    = "WEBHOOK_SECRET"
)
