package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/quotewiz/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingCurrencySymbol:
			settings.CurrencySymbol = value
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingContactWindowHours:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.ContactWindowHours = n
		case constants.SettingFormalQuoteBusinessDays:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.FormalQuoteBusinessDays = n
		case constants.SettingSubmitLog:
			settings.SubmitLog = value == "true"
		case constants.SettingWebhookURL:
			settings.WebhookURL = value
		case constants.SettingSalesEmail:
			settings.SalesEmail = value
		case constants.SettingSenderEmail:
			settings.SenderEmail = value
		case constants.SettingSalesPhone:
			settings.SalesPhone = value
		case constants.SettingSMSFrom:
			settings.SMSFrom = value
		case constants.SettingSendGridSandbox:
			settings.SendGridSandbox = value == "true"
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingCurrencySymbol:          settings.CurrencySymbol,
		constants.SettingTimezone:                settings.Timezone,
		constants.SettingContactWindowHours:      strconv.Itoa(settings.ContactWindowHours),
		constants.SettingFormalQuoteBusinessDays: strconv.Itoa(settings.FormalQuoteBusinessDays),
		constants.SettingSubmitLog:               strconv.FormatBool(settings.SubmitLog),
		constants.SettingWebhookURL:              settings.WebhookURL,
		constants.SettingSalesEmail:              settings.SalesEmail,
		constants.SettingSenderEmail:             settings.SenderEmail,
		constants.SettingSalesPhone:              settings.SalesPhone,
		constants.SettingSMSFrom:                 settings.SMSFrom,
		constants.SettingSendGridSandbox:         strconv.FormatBool(settings.SendGridSandbox),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.CurrencySymbol == "" {
		settings.CurrencySymbol = constants.DefaultCurrencySymbol
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.ContactWindowHours == 0 {
		settings.ContactWindowHours = constants.DefaultContactWindowHours
	}
	if settings.FormalQuoteBusinessDays == 0 {
		settings.FormalQuoteBusinessDays = constants.DefaultFormalQuoteBusinessDays
	}
}
