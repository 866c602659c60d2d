package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/julianstephens/quotewiz/internal/models"
)

// WebhookPayload is the JSON body posted for each quote.
type WebhookPayload struct {
	Event    string       `json:"event"`
	Currency string       `json:"currency,omitempty"`
	Quote    models.Quote `json:"quote"`
}

// WebhookSubmitter posts the quote as JSON to a configured endpoint. When a
// secret is set it is sent in the X-Quotewiz-Secret header.
type WebhookSubmitter struct {
	url      string
	secret   string
	currency string
	client   *http.Client
}

func NewWebhookSubmitter(url, secret, currency string) *WebhookSubmitter {
	return &WebhookSubmitter{
		url:      url,
		secret:   secret,
		currency: currency,
		client:   &http.Client{Timeout: constants.SubmitTimeout},
	}
}

func (w *WebhookSubmitter) Name() string {
	return "webhook"
}

func (w *WebhookSubmitter) Submit(ctx context.Context, q models.Quote) error {
	jsonData, err := json.Marshal(WebhookPayload{
		Event:    "quote.submitted",
		Currency: w.currency,
		Quote:    q,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", constants.WebhookContentType)
	if w.secret != "" {
		req.Header.Set(constants.WebhookSecretHeader, w.secret)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}
