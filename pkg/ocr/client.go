package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the external OCR extraction service. The service accepts the
// raw document payload and returns the extracted plain text.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type extractResponse struct {
	Text string `json:"text"`
}

// Extract submits the binary document payload and returns the extracted text.
// The filename rides along as a header so the service can pick a parser.
func (c *Client) Extract(ctx context.Context, filename string, payload []byte) (string, error) {
	url := c.BaseURL + "/v1/extract"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Document-Name", filename)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocr error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var extractResp extractResponse
	if err := json.Unmarshal(bodyBytes, &extractResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return extractResp.Text, nil
}
