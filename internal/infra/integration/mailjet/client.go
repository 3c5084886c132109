package mailjet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/http/middleware"
)

const DefaultBaseURL = "https://api.mailjet.com"

type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string
	http      *http.Client
}

func NewClient(apiKey, apiSecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts one message to the v3.1 send API and returns an error
// unless the provider reports the message as accepted.
func (c *Client) Send(ctx context.Context, input SendInput) error {
	url := fmt.Sprintf("%s/v3.1/send", c.baseURL)

	payload := sendRequest{
		Messages: []messageRequest{{
			From:     recipient{Email: input.FromEmail, Name: input.FromName},
			To:       []recipient{{Email: input.ToEmail, Name: input.ToName}},
			Subject:  input.Subject,
			TextPart: input.TextBody,
			HTMLPart: input.HTMLBody,
			CustomID: input.CustomID,
		}},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mailjet payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.RecordIntegrationError("mailjet")
		return fmt.Errorf("mailjet request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		middleware.RecordIntegrationError("mailjet")
		return fmt.Errorf("mailjet rejected send (status %d): %s", resp.StatusCode, string(body))
	}

	var response sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("decode mailjet response: %w", err)
	}

	for _, msg := range response.Messages {
		if msg.Status != "success" {
			middleware.RecordIntegrationError("mailjet")
			if len(msg.Errors) > 0 {
				return fmt.Errorf("mailjet send failed: %s - %s", msg.Errors[0].ErrorCode, msg.Errors[0].ErrorMessage)
			}
			return fmt.Errorf("mailjet send failed: status %q", msg.Status)
		}
	}

	return nil
}

// setHeaders centralizes the required headers. Mailjet authenticates
// with the API key pair over basic auth.
func (c *Client) setHeaders(req *http.Request) {
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "SepticCheetah/1.0")
}
