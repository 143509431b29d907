package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/studykb/internal/config"
	"github.com/sandevgo/studykb/internal/core"
)

func TestAnthropicComplete(t *testing.T) {
	var captured map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"답변 "},{"type":"text","text":"이어서"}]}`))
	}))
	defer server.Close()

	p := NewAnthropic(AnthropicConfig{BaseURL: server.URL, APIKey: "test-key", Model: "claude-3-5-sonnet-20241022"})

	text, err := p.Complete(context.Background(), core.CompletionRequest{
		Prompt:    "질문입니다",
		System:    "시스템 지시",
		MaxTokens: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "답변 이어서", text)

	assert.Equal(t, "claude-3-5-sonnet-20241022", captured["model"])
	assert.Equal(t, "시스템 지시", captured["system"])
	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	first := messages[0].(map[string]any)
	assert.Equal(t, "user", first["role"])
}

func TestAnthropicCompleteErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"no text blocks", http.StatusOK, `{"content":[{"type":"tool_use"}]}`},
		{"malformed body", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := NewAnthropic(AnthropicConfig{BaseURL: server.URL, APIKey: "k", Model: "m"})
			_, err := p.Complete(context.Background(), core.CompletionRequest{Prompt: "q"})
			assert.Error(t, err)
		})
	}
}

func TestNewChainOrder(t *testing.T) {
	tests := []struct {
		name      string
		openai    string
		anthropic string
		want      []string
	}{
		{"both keys", "ok", "ak", []string{"OpenAI GPT-4", "Claude AI"}},
		{"openai only", "ok", "", []string{"OpenAI GPT-4"}},
		{"anthropic only", "", "ak", []string{"Claude AI"}},
		{"no keys", "", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewChain(context.Background(), &config.ProvidersConfig{
				OpenAIAPIKey: tt.openai,
				AnthropicKey: tt.anthropic,
			})

			names := make([]string, 0, len(chain))
			for _, p := range chain {
				names = append(names, p.Name())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
