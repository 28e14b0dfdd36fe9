package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"episodes/internal/models"
)

// Client calls the credential relay on behalf of the episode page and CLI.
// It never sees Mux credentials.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Error is a non-2xx answer from the relay.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP error Status: %d", e.StatusCode)
	}
	return e.Message
}

type listResponse struct {
	Data []models.RemoteAsset `json:"data"`
}

type assetResponse struct {
	Data *models.RemoteAsset `json:"data"`
}

// NewClient takes the relay list URL, e.g. http://localhost:8081/api/episodes.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListAssets issues one list request and returns the assets in relay order.
func (c *Client) ListAssets(ctx context.Context) ([]models.RemoteAsset, error) {
	var resp listResponse
	if err := c.get(ctx, c.endpoint, &resp); err != nil {
		return nil, fmt.Errorf("Error fetching episodes: %w", err)
	}
	return resp.Data, nil
}

// GetAsset fetches a single asset through the relay.
func (c *Client) GetAsset(ctx context.Context, id string) (*models.RemoteAsset, error) {
	var resp assetResponse
	if err := c.get(ctx, c.endpoint+"/"+url.PathEscape(id), &resp); err != nil {
		return nil, fmt.Errorf("Error fetching playback ID: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("asset %s not found in response", id)
	}
	return resp.Data, nil
}

func (c *Client) get(ctx context.Context, target string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &Error{StatusCode: resp.StatusCode, Message: body.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode relay response: %w", err)
	}
	return nil
}
