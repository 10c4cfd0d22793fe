package presetsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a typed HTTP client for the presets API. It holds a bearer
// token minted elsewhere; the SDK never performs authentication itself.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client, e.g. for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New creates a Client for the API at baseURL using the given access token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after a refresh.
func (c *Client) SetToken(token string) { c.token = token }

// CreatePreset creates a new preset and returns the stored record.
func (c *Client) CreatePreset(ctx context.Context, req CreatePresetRequest) (*PresetInfo, error) {
	var out PresetInfo
	if err := c.do(ctx, http.MethodPost, "/v1/presets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePreset applies a partial update and returns the updated record.
func (c *Client) UpdatePreset(ctx context.Context, id string, req UpdatePresetRequest) (*PresetInfo, error) {
	var out PresetInfo
	if err := c.do(ctx, http.MethodPatch, "/v1/presets/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPreset fetches a single owned preset.
func (c *Client) GetPreset(ctx context.Context, id string) (*PresetInfo, error) {
	var out PresetInfo
	if err := c.do(ctx, http.MethodGet, "/v1/presets/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPresets returns the caller's presets, optionally defaults only.
func (c *Client) ListPresets(ctx context.Context, defaultsOnly bool) (*ListPresetsResponse, error) {
	path := "/v1/presets"
	if defaultsOnly {
		path += "?defaults_only=true"
	}
	var out ListPresetsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePreset removes an owned preset.
func (c *Client) DeletePreset(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/presets/"+url.PathEscape(id), nil, nil)
}

// LogPassword records a password-generation event.
func (c *Client) LogPassword(ctx context.Context, req LogPasswordRequest) (*GeneratedPasswordInfo, error) {
	var out GeneratedPasswordInfo
	if err := c.do(ctx, http.MethodPost, "/v1/passwords", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPasswords returns the caller's logged records, optionally filtered to
// one preset.
func (c *Client) ListPasswords(ctx context.Context, presetID string) (*ListPasswordsResponse, error) {
	path := "/v1/passwords"
	if presetID != "" {
		path += "?preset_id=" + url.QueryEscape(presetID)
	}
	var out ListPasswordsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request and unwraps the envelope into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("presetsdk: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Err     *APIErr         `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       ErrorCodeServerError,
			Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: ErrorCodeServerError}
		if env.Err != nil {
			apiErr.Code = env.Err.Code
			apiErr.Message = env.Err.Message
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("presetsdk: decode response: %w", err)
		}
	}
	return nil
}
