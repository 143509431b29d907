package answer

import (
	"strings"
	"testing"

	"github.com/sandevgo/studykb/internal/core"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abcd", 1},
		{"abcde", 2},
		{"abcdefgh", 2},
		{"미적분학", 1}, // runes, not bytes
	}
	for _, tt := range tests {
		if got := estimateTokens(tt.text); got != tt.want {
			t.Errorf("estimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestBuildPromptWithoutBudgetKeepsAllContext(t *testing.T) {
	items := []core.ContextItem{
		{Question: "첫 질문", Answer: "첫 답변"},
		{Question: "둘째 질문", Answer: "둘째 답변"},
	}

	got := buildPrompt("미분이 뭐야?", core.CategoryMath, items, 0)

	if !strings.Contains(got, "첫 질문") || !strings.Contains(got, "둘째 질문") {
		t.Errorf("context missing from prompt: %q", got)
	}
	if !strings.Contains(got, "질문: 미분이 뭐야?") {
		t.Errorf("question missing from prompt: %q", got)
	}
}

func TestBuildPromptDropsTailContextFirst(t *testing.T) {
	question := "미분이 뭐야?"
	items := []core.ContextItem{
		{Question: "첫 질문", Answer: "첫 답변"},
		{Question: "둘째 질문", Answer: "둘째 답변"},
	}

	// A budget that exactly fits the one-item rendering forces the
	// trim loop to drop the second item and stop.
	budget := countTokens(renderPrompt(question, core.CategoryMath, items[:1]))

	got := buildPrompt(question, core.CategoryMath, items, budget)

	if got != renderPrompt(question, core.CategoryMath, items[:1]) {
		t.Errorf("prompt not trimmed to first item:\n%q", got)
	}
	if !strings.Contains(got, "첫 질문") {
		t.Errorf("head item dropped: %q", got)
	}
	if strings.Contains(got, "둘째 질문") {
		t.Errorf("tail item survived the trim: %q", got)
	}
}

func TestBuildPromptNeverDropsQuestionOrGuideline(t *testing.T) {
	question := "적분 계산 방법"
	items := []core.ContextItem{
		{Question: strings.Repeat("긴 질문 ", 200), Answer: strings.Repeat("긴 답변 ", 200)},
		{Question: "둘째 질문", Answer: "둘째 답변"},
	}

	got := buildPrompt(question, core.CategoryMath, items, 1)

	if !strings.Contains(got, "질문: "+question) {
		t.Errorf("question dropped: %q", got)
	}
	if strings.Contains(got, "관련 정보") {
		t.Errorf("context section survived a budget of 1: %q", got)
	}

	guideline := specFor(core.CategoryMath).Guideline
	if guideline != "" && !strings.Contains(got, guideline) {
		t.Errorf("guideline dropped: %q", got)
	}
}
