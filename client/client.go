// Package client is the thin remote-access layer the mobile app uses to
// talk to the entry service. Calls are direct proxies with no retry,
// caching or timeout policy beyond whatever the injected http.Client
// carries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Jakeb65/WelnessTracker/models"
	"github.com/Jakeb65/WelnessTracker/services"
)

// ErrPhotoTooDark means the captured photo fell below the brightness
// threshold and was discarded; the caller may retry the capture.
var ErrPhotoTooDark = errors.New("photo is too dark")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

func (c *Client) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	if err := c.do(ctx, http.MethodGet, "/entries", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) GetEntry(ctx context.Context, id uint) (*models.Entry, error) {
	var entry models.Entry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/entries/%d", id), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) AddEntry(ctx context.Context, in models.EntryInput) (*models.Entry, error) {
	var entry models.Entry
	if err := c.do(ctx, http.MethodPost, "/entries", &in, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) UpdateEntry(ctx context.Context, id uint, in models.EntryInput) (*models.Entry, error) {
	var entry models.Entry
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/entries/%d", id), &in, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) DeleteEntry(ctx context.Context, id uint) error {
	var ack struct {
		Message string `json:"message"`
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/entries/%d", id), nil, &ack)
}

// MonthlyStats fetches all entries and reduces them into the monthly
// summary. ok is false when nothing has been logged yet.
func (c *Client) MonthlyStats(ctx context.Context) (*services.MonthlySummary, bool, error) {
	entries, err := c.ListEntries(ctx)
	if err != nil {
		return nil, false, err
	}
	summary, ok := services.SummarizeMonth(entries)
	return summary, ok, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
