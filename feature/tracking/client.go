package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client queries the courier's public tracking API for a shipment status.
type Client struct {
	cfg  Config
	http *resty.Client
}

// NewClient creates a tracking client for the configured courier API.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &Client{
		cfg:  cfg,
		http: resty.New().SetBaseURL(cfg.BaseURL).SetTimeout(time.Duration(timeout) * time.Second),
	}
}

// Track fetches the tracking payload for an AWB number. The upstream API only
// answers requests that look like they come from its own tracking page, hence
// the Referer header. The payload is returned as raw JSON; the proxy does not
// reinterpret the courier's schema.
func (c *Client) Track(ctx context.Context, awbNo string) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("awb", awbNo).
		SetHeader("Referer", fmt.Sprintf("%s/shipment/tracking?awbNo=%s", c.cfg.BaseURL, awbNo)).
		Get("/api/tracking/{awb}")
	if err != nil {
		return nil, fmt.Errorf("tracking request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status code %v from tracking API", resp.StatusCode())
	}

	if !json.Valid(resp.Body()) {
		return nil, fmt.Errorf("tracking API returned non-JSON payload")
	}
	return json.RawMessage(resp.Body()), nil
}
