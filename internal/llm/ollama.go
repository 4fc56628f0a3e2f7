package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaClient talks to an Ollama server over its HTTP API.
type OllamaClient struct {
	client       *http.Client
	url          string
	model        string
	systemPrompt string
}

func NewOllamaClient(url, model, systemPrompt string) *OllamaClient {
	return &OllamaClient{
		client:       &http.Client{},
		url:          url,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

type GenerateRequest struct {
	Model    string    `json:"model"`
	Prompt   string    `json:"prompt,omitempty"`
	System   string    `json:"system,omitempty"`
	Messages []Message `json:"messages,omitempty"`
	Format   string    `json:"format,omitempty"`
	Stream   bool      `json:"stream"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Send asks the configured model for a JSON reply to prompt.
func (c *OllamaClient) Send(ctx context.Context, prompt string) (string, error) {
	resp, err := c.Generate(ctx, &GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		System: c.systemPrompt,
		Format: "json",
	})
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Generate performs a single non-streaming request. Prompt requests go to
// /api/generate, message lists go to /api/chat.
func (c *OllamaClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	req.Stream = false
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	endpoint := c.url + "/api/chat"
	if req.Prompt != "" {
		endpoint = c.url + "/api/generate"
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if req.Prompt == "" {
		var chatResp struct {
			Model   string  `json:"model"`
			Message Message `json:"message"`
			Done    bool    `json:"done"`
		}
		if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
			return nil, fmt.Errorf("could not decode chat response: %w", err)
		}
		return &GenerateResponse{Model: chatResp.Model, Response: chatResp.Message.Content, Done: chatResp.Done}, nil
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(bodyBytes, &genResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	return &genResp, nil
}
