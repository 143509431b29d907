package telegram

import (
	"strings"
	"testing"
)

func TestSplitHTML(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		chunks := splitHTML("hello", 100)
		if len(chunks) != 1 || chunks[0] != "hello" {
			t.Errorf("got %v", chunks)
		}
	})

	t.Run("splits at newline", func(t *testing.T) {
		text := strings.Repeat("a", 60) + "\n" + strings.Repeat("b", 60)
		chunks := splitHTML(text, 100)
		if len(chunks) != 2 {
			t.Fatalf("got %d chunks", len(chunks))
		}
		if strings.Contains(chunks[0], "b") {
			t.Errorf("first chunk crosses the newline: %q", chunks[0])
		}
	})

	t.Run("hard split without newline", func(t *testing.T) {
		text := strings.Repeat("a", 250)
		chunks := splitHTML(text, 100)
		if len(chunks) != 3 {
			t.Fatalf("got %d chunks", len(chunks))
		}
		for i, c := range chunks {
			if len(c) > 100 {
				t.Errorf("chunk %d too long: %d", i, len(c))
			}
		}
	})
}
