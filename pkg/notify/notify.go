// Package notify delivers qualifying leads to the downstream webhook relay.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/thatguydan86/rentradar/pkg/engine"
)

// Webhook POSTs one JSON payload per lead. Fire-and-forget: nothing beyond
// the transport status is awaited.
type Webhook struct {
	url  string
	http *retryablehttp.Client
}

func NewWebhook(url string) *Webhook {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.Logger = log.New(io.Discard, "", 0)
	return &Webhook{url: url, http: rc}
}

// Notify sends a single lead. The payload shape is engine.Lead's JSON form.
func (w *Webhook) Notify(ctx context.Context, lead engine.Lead) error {
	if w.url == "" {
		return fmt.Errorf("no webhook url configured")
	}
	payload, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := w.http.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post for %s: %w", lead.ID, err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode >= 300 {
		return fmt.Errorf("webhook post for %s: unexpected status %d", lead.ID, res.StatusCode)
	}
	return nil
}
