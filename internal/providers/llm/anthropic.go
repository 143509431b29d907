package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sandevgo/studykb/internal/core"
)

const anthropicDisplayName = "Claude AI"

type Anthropic struct {
	baseProvider
}

type AnthropicConfig struct {
	BaseURL string // defaults to https://api.anthropic.com
	APIKey  string
	Model   string
}

func NewAnthropic(cfg AnthropicConfig) *Anthropic {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	return &Anthropic{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Model),
	}
}

func (a *Anthropic) Name() string { return anthropicDisplayName }

func (a *Anthropic) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	payload := map[string]any{
		"model":      a.model,
		"max_tokens": req.MaxTokens,
		"messages":   []msg{{Role: "user", Content: req.Prompt}},
	}
	if req.System != "" {
		payload["system"] = req.System
	}

	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": "2023-06-01",
	}

	resp, err := a.doRequest(ctx, http.MethodPost, "/v1/messages", payload, headers)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	var text string
	for _, c := range result.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text content: %s", string(data))
	}
	return text, nil
}
