package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a thin JSON client for the TeslaMate Chat API. One best-effort
// request per call, no retries; failures come back as short human-readable
// errors suitable for showing to the model verbatim.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// apiError is the server's {"error":{"code","message"}} body.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// getJSON performs GET baseURL+path?params and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("tools.Client.getJSON: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			return errors.New("TeslaMate API timed out")
		}
		return errors.New("Could not connect to TeslaMate API. Is the service running?")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body apiError
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Error.Message != "" {
			return errors.New(body.Error.Message)
		}
		return fmt.Errorf("TeslaMate API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from TeslaMate API: %w", err)
	}
	return nil
}
