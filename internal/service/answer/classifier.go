package answer

import (
	"strings"

	"github.com/sandevgo/studykb/internal/core"
)

// Classify assigns a question to a subject category by keyword
// substring matching. The category table order is the tie-break: the
// first category with a matching keyword wins. Questions matching
// nothing are general. Pure and total, with no failure mode.
func Classify(question string) core.Category {
	q := strings.ToLower(question)

	for _, spec := range categoryTable {
		for _, kw := range spec.Keywords {
			if strings.Contains(q, kw) {
				return spec.Category
			}
		}
	}
	return core.CategoryGeneral
}
