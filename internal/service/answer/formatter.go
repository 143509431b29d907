package answer

import (
	"regexp"
	"strings"

	"github.com/sandevgo/studykb/internal/core"
)

// Formatter post-processes generated text per category. Formatting is
// pure and idempotent: text already in target form passes through
// unchanged, because rewrites are only applied outside existing
// inline-math spans and fenced code blocks.
//
// Math convention: inline TeX delimiters `$...$`, exponents `x^{2}`.
type Formatter struct {
	codeLang string
}

func NewFormatter(defaultCodeLang string) *Formatter {
	if defaultCodeLang == "" {
		defaultCodeLang = "python"
	}
	return &Formatter{codeLang: defaultCodeLang}
}

func (f *Formatter) Format(text string, category core.Category) string {
	switch category {
	case core.CategoryMath:
		return formatMath(text)
	case core.CategoryProgramming:
		return f.formatCode(text)
	default:
		return text
	}
}

var (
	// A math span's content must not start or end with whitespace, so
	// a lone currency "$" cannot pair up with a later delimiter.
	mathSpanRe = regexp.MustCompile(`\$[^$\s](?:[^$]*[^$\s])?\$`)
	exponentRe = regexp.MustCompile(`(\w+)\*\*(\w+)`)

	// Wrapping passes run in this order; all run outside existing
	// $...$ spans so re-application is a no-op.
	mathWrapRes = []*regexp.Regexp{
		regexp.MustCompile(`[a-zA-Z]\s*[+\-*/=]\s*[a-zA-Z0-9]+`),
		regexp.MustCompile(`[0-9]+\s*[+\-*/=]\s*[0-9]+`),
		regexp.MustCompile(`[∫∑∏√∞παβγδθλμσφψω]`),
	}
)

// applyOutsideMath runs fn over the segments of s not already enclosed
// in $...$ delimiters, leaving the enclosed spans untouched.
func applyOutsideMath(s string, fn func(string) string) string {
	spans := mathSpanRe.FindAllStringIndex(s, -1)
	if len(spans) == 0 {
		return fn(s)
	}

	var sb strings.Builder
	last := 0
	for _, span := range spans {
		sb.WriteString(fn(s[last:span[0]]))
		sb.WriteString(s[span[0]:span[1]])
		last = span[1]
	}
	sb.WriteString(fn(s[last:]))
	return sb.String()
}

func formatMath(text string) string {
	// Exponent rewrite first: x**2 -> $x^{2}$
	out := applyOutsideMath(text, func(seg string) string {
		return exponentRe.ReplaceAllString(seg, `$$${1}^{${2}}$$`)
	})

	// Then wrap bare expressions and math glyphs.
	for _, re := range mathWrapRes {
		wrapRe := re
		out = applyOutsideMath(out, func(seg string) string {
			return wrapRe.ReplaceAllString(seg, `$$$0$$`)
		})
	}
	return out
}

var (
	codeFenceRe  = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)\\n```")
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")
)

// formatCode normalizes fenced blocks to carry a language tag and
// rewrites single-backtick spans into <code> spans. Inline rewriting
// never reaches inside fences.
func (f *Formatter) formatCode(text string) string {
	var sb strings.Builder
	last := 0

	for _, m := range codeFenceRe.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(rewriteInlineCode(text[last:m[0]]))

		lang := ""
		if m[2] >= 0 {
			lang = text[m[2]:m[3]]
		}
		if lang == "" {
			lang = f.codeLang
		}

		sb.WriteString("```")
		sb.WriteString(lang)
		sb.WriteString("\n")
		sb.WriteString(text[m[4]:m[5]])
		sb.WriteString("\n```")

		last = m[1]
	}

	sb.WriteString(rewriteInlineCode(text[last:]))
	return sb.String()
}

func rewriteInlineCode(s string) string {
	return inlineCodeRe.ReplaceAllString(s, "<code>$1</code>")
}
