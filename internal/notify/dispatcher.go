// Package notify fans a message out to the email, SMS and WhatsApp channels.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Channel names used in delivery reports.
const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

// ChannelResult reports a single delivery attempt.
type ChannelResult struct {
	Channel string
	Err     error
}

// Endpoints holds the provider URL for each channel.
type Endpoints struct {
	Email    string
	SMS      string
	WhatsApp string
}

// Dispatcher posts notifications to every configured channel. Channels are
// always attempted independently; one failing provider never prevents
// delivery on the others.
type Dispatcher struct {
	endpoints  Endpoints
	httpClient *http.Client
}

// NewDispatcher constructs a Dispatcher. The timeout bounds each individual
// provider call.
func NewDispatcher(endpoints Endpoints, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		endpoints: endpoints,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Dispatch sends the message concurrently to all three channels and returns
// one result per channel, in email/sms/whatsapp order.
func (d *Dispatcher) Dispatch(ctx context.Context, email, phone, message string) []ChannelResult {
	attempts := []struct {
		name    string
		url     string
		payload map[string]string
	}{
		{ChannelEmail, d.endpoints.Email, map[string]string{"email": email, "message": message}},
		{ChannelSMS, d.endpoints.SMS, map[string]string{"phone": phone, "message": message}},
		{ChannelWhatsApp, d.endpoints.WhatsApp, map[string]string{"phone": phone, "message": message}},
	}

	results := make([]ChannelResult, len(attempts))
	var g errgroup.Group
	for i, attempt := range attempts {
		g.Go(func() error {
			results[i] = ChannelResult{
				Channel: attempt.name,
				Err:     d.post(ctx, attempt.url, attempt.payload),
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (d *Dispatcher) post(ctx context.Context, url string, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	return nil
}
