package apod

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.nasa.gov/planetary/apod"

// Picture is one Astronomy Picture of the Day entry.
type Picture struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Date        string `json:"date"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl"`
	Copyright   string `json:"copyright"`
	MediaType   string `json:"media_type"`
}

// ImageURL returns the HD image URL when available, falling back to the
// standard one.
func (p *Picture) ImageURL() string {
	if p.HDURL != "" {
		return p.HDURL
	}
	return p.URL
}

// Client fetches entries from the NASA APOD API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new Client.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// NewClientWithBaseURL creates a Client against a custom endpoint, which lets
// tests point it at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Fetch returns the picture for the given date (YYYY-MM-DD), or today's
// picture when date is empty.
func (c *Client) Fetch(ctx context.Context, date string) (*Picture, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("hd", "True")
	if date != "" {
		params.Set("date", date)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build APOD request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APOD request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APOD request for date %q returned status %d", date, resp.StatusCode)
	}

	var picture Picture
	if err := json.NewDecoder(resp.Body).Decode(&picture); err != nil {
		return nil, fmt.Errorf("failed to decode APOD response: %w", err)
	}

	return &picture, nil
}
