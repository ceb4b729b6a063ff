package openrouter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultTimeout = 60 * time.Second
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Client calls the OpenRouter chat completions endpoint. One Generate
// call issues exactly one POST; there are no retries.
type Client struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Images []struct {
				ImageURL struct {
					URL string `json:"url"`
				} `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt and returns the decoded image bytes.
func (c *Client) Generate(ctx context.Context, genReq GenerationRequest) ([]byte, error) {
	payload := newChatRequest(genReq)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}
	c.logger.Debug("request payload", "body", string(jsonData))

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	c.logger.Debug("response received",
		"status", resp.StatusCode,
		"headers", fmt.Sprint(resp.Header),
		"body", string(body))

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Error.Message}
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("response parsing failed: %w", err)
	}

	if len(response.Choices) == 0 || len(response.Choices[0].Message.Images) == 0 {
		return nil, ErrNoImage
	}

	return c.decodeImage(ctx, response.Choices[0].Message.Images[0].ImageURL.URL)
}

// decodeImage resolves an image reference: inline base64 data URIs are
// decoded directly, http(s) references are fetched with a second GET.
func (c *Client) decodeImage(ctx context.Context, imageURL string) ([]byte, error) {
	switch {
	case strings.HasPrefix(imageURL, "data:image/"):
		_, encoded, found := strings.Cut(imageURL, ",")
		if !found {
			return nil, &UnsupportedFormatError{Reference: imageURL}
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("base64 decoding failed: %w", err)
		}
		return data, nil
	case strings.HasPrefix(imageURL, "http"):
		return c.fetchImage(ctx, imageURL)
	default:
		return nil, &UnsupportedFormatError{Reference: imageURL}
	}
}

func (c *Client) fetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	c.logger.Debug("fetching image", "url", imageURL)

	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: "image fetch failed"}
	}

	return io.ReadAll(resp.Body)
}
