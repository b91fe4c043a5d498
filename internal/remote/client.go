// Package remote implements HTTP clients for the two asynchronous
// external services: image recognition and suggestion chat. Both calls
// hold no lock on the store; callers decide whether a late response is
// applied or dropped.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/larderhq/larder/pkg/types"
)

const (
	recognizePath = "/v1/recognize"
	chatPath      = "/v1/chat"

	defaultTimeout = 30 * time.Second
)

// Client calls a recognition/suggestion backend over HTTP. Any transport
// error or non-200 status surfaces as types.ErrServiceUnavailable so
// callers can tell a failed call apart from an empty result.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type recognizeRequest struct {
	ShelfID  string `json:"shelfId"`
	ImageRef string `json:"imageRef"`
}

type chatRequest struct {
	Message    string            `json:"message"`
	Items      []types.Item      `json:"items"`
	Condiments []types.Condiment `json:"condiments"`
}

// Recognize submits an imaged shelf and returns candidate records. The
// caller turns accepted candidates into item additions; the store is
// never touched here.
func (c *Client) Recognize(ctx context.Context, shelfID, imageRef string) (*types.RecognitionResult, error) {
	var result types.RecognitionResult
	req := recognizeRequest{ShelfID: shelfID, ImageRef: imageRef}
	if err := c.post(ctx, recognizePath, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Chat submits a message plus inventory and returns the service's reply
// and suggestions, honoring the same contract as the in-process engine.
func (c *Client) Chat(ctx context.Context, message string, items []types.Item, condiments []types.Condiment) (*types.ChatResponse, error) {
	var response types.ChatResponse
	req := chatRequest{Message: message, Items: items, Condiments: condiments}
	if err := c.post(ctx, chatPath, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// post marshals payload, POSTs it to path, and decodes the JSON response
// into out.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", types.ErrServiceUnavailable, path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", types.ErrServiceUnavailable, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", types.ErrServiceUnavailable, err)
	}
	return nil
}
