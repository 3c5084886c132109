// Package form is the headless counterpart of the website's contact
// form component: local pre-submit validation, one POST to the contact
// endpoint, and the idle → submitting → {success | error} display
// states the page renders from.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/entity"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/usecase"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

const (
	msgMissingContact = "Please provide either a phone number or email address"
	msgSubmitFailed   = "Something went wrong. Please try again or call us directly."
)

// Values holds what the user typed. Retained across a failed submit so
// nothing has to be re-entered.
type Values struct {
	Name    string
	Phone   string
	Email   string
	Service string
	Urgency string
	Message string
}

// Reporter is the fire-and-forget analytics sink. Failures must never
// change the form's state.
type Reporter interface {
	Report(ctx context.Context, event string, props map[string]string)
}

type Client struct {
	endpoint string
	http     *http.Client
	reporter Reporter // nil disables analytics
	log      *zap.SugaredLogger

	mu      sync.Mutex
	state   State
	values  Values
	ack     string
	lastErr string
}

func NewClient(endpoint string, reporter Reporter, log *zap.SugaredLogger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
		reporter: reporter,
		log:      log,
		state:    StateIdle,
	}
}

func (c *Client) SetValues(v Values) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = v
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// Acknowledgement is the success message, referencing the selected
// service. Empty unless the form is in the success state.
func (c *Client) Acknowledgement() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ack
}

// ErrorMessage is what the page surfaces next to the form: the blocked
// pre-submit reason or the generic retry prompt.
func (c *Client) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Submit runs the pre-submit check and posts the form. On failure the
// entered values are kept and the form can be resubmitted; on success
// they are cleared and the acknowledgement is set.
func (c *Client) Submit(ctx context.Context) error {
	c.mu.Lock()
	v := c.values

	// Pre-submit gate: without a way to reach the customer there is no
	// point sending anything.
	if v.Phone == "" && v.Email == "" {
		c.lastErr = msgMissingContact
		c.mu.Unlock()
		return errors.New(msgMissingContact)
	}

	c.state = StateSubmitting
	c.lastErr = ""
	c.mu.Unlock()

	payload := usecase.SubmitContactInput{
		Name:    v.Name,
		Phone:   v.Phone,
		Email:   v.Email,
		Service: v.Service,
		Urgency: v.Urgency,
		Message: v.Message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return c.fail(fmt.Errorf("marshal form payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return c.fail(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(fmt.Errorf("submit form: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(fmt.Errorf("contact endpoint returned status %d", resp.StatusCode))
	}

	var result usecase.SubmitContactOutput
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// The request went through; a broken body does not undo that.
		c.log.Warnw("contact response body unreadable", "error", err)
	}

	c.mu.Lock()
	c.state = StateSuccess
	c.ack = fmt.Sprintf("Request received! We'll be in touch about your %s shortly.", entity.ServiceLabel(v.Service))
	c.values = Values{} // the form fields are no longer rendered
	c.mu.Unlock()

	if c.reporter != nil {
		c.reporter.Report(ctx, "contact_form", map[string]string{"service": v.Service})
	}

	return nil
}

// fail flips to the error state, keeping the entered values for retry.
func (c *Client) fail(err error) error {
	c.log.Warnw("contact form submit failed", "error", err)

	c.mu.Lock()
	c.state = StateError
	c.lastErr = msgSubmitFailed
	c.mu.Unlock()

	return err
}
