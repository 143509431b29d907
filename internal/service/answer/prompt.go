package answer

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/studykb/internal/core"
)

// systemInstruction is sent with every provider call.
const systemInstruction = "당신은 전문적인 교육 도우미입니다. 정확하고 이해하기 쉬운 답변을 제공합니다."

var (
	tk     *tiktoken.Tiktoken
	tkErr  error
	tkOnce sync.Once
)

func getTokenizer() (*tiktoken.Tiktoken, error) {
	tkOnce.Do(func() {
		tk, tkErr = tiktoken.GetEncoding("cl100k_base")
	})
	return tk, tkErr
}

// countTokens counts BPE tokens. tiktoken fetches the encoding table
// on first use, which can fail offline; the budget trim then falls
// back to a rune-count estimate instead of failing the pipeline.
func countTokens(text string) int {
	if text == "" {
		return 0
	}
	enc, err := getTokenizer()
	if err != nil {
		return estimateTokens(text)
	}
	return len(enc.Encode(text, nil, nil))
}

// estimateTokens approximates the BPE count at 4 runes per token,
// rounded up.
func estimateTokens(text string) int {
	return (utf8.RuneCountInString(text) + 3) / 4
}

// buildPrompt renders the question, category, numbered context and
// category guidelines into a single user prompt. When the rendered
// prompt exceeds tokenBudget, context items are dropped from the tail
// until it fits (the question and guidelines are never dropped).
func buildPrompt(question string, category core.Category, items []core.ContextItem, tokenBudget int) string {
	prompt := renderPrompt(question, category, items)
	if tokenBudget <= 0 {
		return prompt
	}

	for countTokens(prompt) > tokenBudget && len(items) > 0 {
		items = items[:len(items)-1]
		prompt = renderPrompt(question, category, items)
	}
	return prompt
}

func renderPrompt(question string, category core.Category, items []core.ContextItem) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "질문: %s\n카테고리: %s\n", question, category)

	if len(items) > 0 {
		sb.WriteString("\n관련 정보:\n")
		for i, item := range items {
			fmt.Fprintf(&sb, "%d. Q: %s\n   A: %s\n", i+1, item.Question, item.Answer)
		}
	}

	sb.WriteString("\n위 정보를 참고하여 질문에 대한 전문적이고 정확한 답변을 한국어로 작성해주세요.")

	if spec := specFor(category); spec != nil && spec.Guideline != "" {
		sb.WriteString("\n\n")
		sb.WriteString(spec.Guideline)
	}

	return sb.String()
}
