package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-pdfchat-be/pkg/turnlog"
)

// Transport is the boundary to the external answer-generation service.
// Implementations are stateless per call: the full grounding text and full
// prior history travel on every request.
type Transport interface {
	Ask(ctx context.Context, contextText, message string, history []turnlog.Turn) (string, error)
}

// Client is the HTTP implementation of Transport.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

var _ Transport = &Client{}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type askRequest struct {
	Context string        `json:"context"`
	Message string        `json:"message"`
	History []historyItem `json:"history"`
}

type historyItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// Ask sends one grounded question and returns the generated answer. Network
// failures, non-2xx statuses, malformed bodies and empty answers are all
// reported as plain errors; callers do not distinguish between them.
func (c *Client) Ask(ctx context.Context, contextText, message string, history []turnlog.Turn) (string, error) {
	items := make([]historyItem, len(history))
	for i, turn := range history {
		items[i] = historyItem{
			Role:    string(turn.Role),
			Content: turn.Content,
		}
	}

	reqPayload := askRequest{
		Context: contextText,
		Message: message,
		History: items,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.BaseURL + "/v1/ask"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("answer request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("answer error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var askResp askResponse
	if err := json.Unmarshal(bodyBytes, &askResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if askResp.Answer == "" {
		return "", fmt.Errorf("answer service returned empty answer")
	}

	return askResp.Answer, nil
}
