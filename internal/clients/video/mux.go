package video

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultMuxBaseURL = "https://api.mux.com"

type MuxClient struct {
	tokenID     string
	tokenSecret string
	baseURL     string
	httpClient  *http.Client
}

func NewMuxClient(tokenID, tokenSecret, baseURL string, timeout time.Duration) *MuxClient {
	if baseURL == "" {
		baseURL = DefaultMuxBaseURL
	}
	return &MuxClient{
		tokenID:     strings.TrimSpace(tokenID),
		tokenSecret: strings.TrimSpace(tokenSecret),
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListAssets calls GET /video/v1/assets/.
func (m *MuxClient) ListAssets(ctx context.Context) ([]byte, error) {
	return m.get(ctx, "/video/v1/assets/")
}

// GetAsset calls GET /video/v1/assets/{id}.
func (m *MuxClient) GetAsset(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, fmt.Errorf("asset id is required")
	}
	return m.get(ctx, "/video/v1/assets/"+url.PathEscape(id))
}

func (m *MuxClient) get(ctx context.Context, path string) ([]byte, error) {
	if m.tokenID == "" || m.tokenSecret == "" {
		return nil, ErrMissingCredentials
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Mux request: %w", err)
	}
	req.SetBasicAuth(m.tokenID, m.tokenSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read Mux response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !json.Valid(body) {
		return nil, &TransportError{Err: errors.New("Mux returned a non-JSON body")}
	}
	return body, nil
}
