package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"scrbrd/pkg/models"
)

const (
	BaseURL = "https://site.api.espn.com/apis/site/v2/sports"
)

// Client handles ESPN API requests
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// New creates a new ESPN API client
func New() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:   BaseURL,
		userAgent: "scrbrd/1.0",
	}
}

// NewWithBaseURL creates a client against a non-default endpoint. Used by
// integration tests against an httptest server.
func NewWithBaseURL(baseURL string) *Client {
	c := New()
	c.baseURL = baseURL
	return c
}

// FetchScoreboard fetches the current scoreboard for a league
// (ESPN's "today" window, which includes games within ~24 hours).
func (c *Client) FetchScoreboard(ctx context.Context, sportPath string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, sportPath)

	return c.fetch(ctx, url)
}

// fetch makes an HTTP GET request and returns parsed JSON. Request and
// decode failures come back as transport errors; a non-200 body is kept
// short in the message so it can surface on the status line.
func (c *Client) fetch(ctx context.Context, url string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, models.NewTransportError(fmt.Errorf("creating request: %w", err))
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewTransportError(fmt.Errorf("making request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, models.NewTransportError(fmt.Errorf("ESPN API error: status=%d", resp.StatusCode))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, models.NewPayloadError(fmt.Errorf("decoding response: %w", err))
	}

	return result, nil
}
