package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const endpoint = "https://api.brevo.com/v3/smtp/email"

// Mailer sends transactional email. Fire-and-forget from the caller's point
// of view: workflow handlers log failures and move on.
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

// Client talks to the Brevo transactional API.
type Client struct {
	apiKey      string
	senderEmail string
	senderName  string
	http        *http.Client
	log         *zap.SugaredLogger
}

func New(apiKey, senderEmail, senderName string, log *zap.SugaredLogger) *Client {
	return &Client{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		http:        &http.Client{Timeout: 10 * time.Second},
		log:         log,
	}
}

func (c *Client) Send(ctx context.Context, to, subject, text string) error {
	payload := map[string]any{
		"sender":      map[string]string{"name": c.senderName, "email": c.senderEmail},
		"to":          []map[string]string{{"email": to}},
		"subject":     subject,
		"textContent": text,
	}
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mail send failed: status %d", resp.StatusCode)
	}
	c.log.Infow("mail sent", "to", to, "subject", subject)
	return nil
}

// Nop is used when mail is disabled and in tests.
type Nop struct{}

func (Nop) Send(context.Context, string, string, string) error { return nil }
