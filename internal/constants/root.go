package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "quotewiz"
	DefaultConfigPath = "~/.config/quotewiz/quotewiz.db"
	Version           = "v0.3.0"

	// EnvPrefix is prepended to every environment variable the application reads
	EnvPrefix = "QUOTEWIZ_"

	// Submit constants
	SubmitTimeout        = 15 * time.Second
	WebhookSecretHeader  = "X-Quotewiz-Secret"
	WebhookContentType   = "application/json"
	EmailSubjectTemplate = "New installation quote request %s"
)

// Session States
const (
	StateStep SessionState = iota
	StateResult
	StateSubmitting
	StateSubmitted
)
