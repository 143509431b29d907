package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/studykb/internal/core"
)

func TestOpenAIComplete(t *testing.T) {
	var captured map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"생성된 답변"}}]}`))
	}))
	defer server.Close()

	p := NewOpenAI(OpenAIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "gpt-4"})

	text, err := p.Complete(context.Background(), core.CompletionRequest{
		Prompt:      "질문입니다",
		System:      "시스템 지시",
		MaxTokens:   100,
		Temperature: 0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "생성된 답변", text)

	assert.Equal(t, "gpt-4", captured["model"])
	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "시스템 지시", first["content"])
}

func TestOpenAICompleteErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"unauthorized", http.StatusUnauthorized, `{"error":"bad key"}`},
		{"empty choices", http.StatusOK, `{"choices":[]}`},
		{"malformed body", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := NewOpenAI(OpenAIConfig{BaseURL: server.URL, APIKey: "k", Model: "gpt-4"})
			_, err := p.Complete(context.Background(), core.CompletionRequest{Prompt: "q"})
			assert.Error(t, err)
		})
	}
}

func TestOpenAIName(t *testing.T) {
	p := NewOpenAI(OpenAIConfig{APIKey: "k"})
	assert.Equal(t, "OpenAI GPT-4", p.Name())
}
