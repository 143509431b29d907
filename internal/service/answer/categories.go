package answer

import "github.com/sandevgo/studykb/internal/core"

// categorySpec bundles everything category-dependent: classification
// keywords, prompt guidelines, the fallback template and UI tools.
// Adding a category is a data change here, not new branching.
type categorySpec struct {
	Category  core.Category
	Keywords  []string
	Guideline string
	Fallback  string
	Tools     map[string]any
}

// categoryTable is ordered: classification returns the first category
// whose keyword matches, so earlier entries win ties.
var categoryTable = []categorySpec{
	{
		Category: core.CategoryMath,
		Keywords: []string{"수학", "계산", "공식", "방정식", "함수", "미분", "적분", "기하", "대수"},
		Guideline: `수학 답변 가이드라인:
- 공식이나 수식이 포함된 경우 LaTeX 형식으로 작성 (예: $x^2 + y^2 = r^2$)
- 단계별로 풀이 과정을 명확히 설명
- 필요시 그래프나 도형 설명 포함
- 결과 검증 방법 제시`,
		Fallback: "이 수학 문제를 해결하기 위해서는 단계별로 접근해보겠습니다. 주어진 조건을 정리하고, 관련 공식을 적용해보세요. 구체적인 계산 과정이 필요하시면 더 자세한 정보를 제공해주세요.",
		Tools: map[string]any{
			"mathjax":        true,
			"calculator":     true,
			"graph_plotting": true,
			"formula_templates": []string{
				`이차방정식: $ax^2 + bx + c = 0$`,
				`피타고라스 정리: $a^2 + b^2 = c^2$`,
				`미분: $\frac{d}{dx}f(x)$`,
				`적분: $\int f(x)dx$`,
			},
		},
	},
	{
		Category: core.CategoryScience,
		Keywords: []string{"과학", "물리", "화학", "생물", "실험", "원리", "법칙"},
		Guideline: `과학 답변 가이드라인:
- 과학적 원리와 법칙을 명확히 설명
- 실험이나 관찰 사례 포함
- 관련 공식이나 화학식 제시
- 실생활 응용 사례 언급`,
		Fallback: "이 과학 질문에 답하기 위해서는 관련 원리와 법칙을 이해하는 것이 중요합니다. 실험적 관찰이나 이론적 배경을 함께 고려해보시기 바랍니다.",
		Tools: map[string]any{
			"unit_converter": true,
			"periodic_table": true,
			"formula_templates": []string{
				`속도: $v = \frac{d}{t}$`,
				`운동에너지: $E_k = \frac{1}{2}mv^2$`,
				`이상기체: $PV = nRT$`,
			},
		},
	},
	{
		Category: core.CategoryProgramming,
		Keywords: []string{"프로그래밍", "코딩", "파이썬", "자바스크립트", "알고리즘", "데이터베이스"},
		Guideline: `프로그래밍 답변 가이드라인:
- 코드 예시를 포함하여 설명
- 각 단계별 주석과 설명
- 실행 결과나 출력 예시
- 최적화나 대안 방법 제시`,
		Fallback: "이 프로그래밍 문제를 해결하기 위해서는 알고리즘을 단계별로 설계하고 구현해야 합니다. 코드 예시와 함께 설명드리겠습니다.",
		Tools: map[string]any{
			"code_editor":         true,
			"syntax_highlighting": true,
			"code_templates": []string{
				"Python 함수",
				"JavaScript 함수",
				"HTML 템플릿",
				"SQL 쿼리",
			},
		},
	},
	{
		Category: core.CategoryKorean,
		Keywords: []string{"국어", "문법", "맞춤법", "문학", "작문"},
	},
	{
		Category: core.CategoryEnglish,
		Keywords: []string{"영어", "단어", "독해", "회화"},
		Tools: map[string]any{
			"dictionary":      true,
			"grammar_checker": true,
			"translation":     true,
		},
	},
}

const generalFallback = "질문에 대한 답변을 위해 관련 정보를 수집하고 분석해보겠습니다. 더 구체적인 내용이나 맥락을 제공해주시면 더 정확한 답변을 드릴 수 있습니다."

func specFor(category core.Category) *categorySpec {
	for i := range categoryTable {
		if categoryTable[i].Category == category {
			return &categoryTable[i]
		}
	}
	return nil
}

// FallbackTemplate returns the canned response for a category; unknown
// categories share the general template.
func FallbackTemplate(category core.Category) string {
	if spec := specFor(category); spec != nil && spec.Fallback != "" {
		return spec.Fallback
	}
	return generalFallback
}

// CategoryTools lists the UI helpers available for a category.
func CategoryTools(category core.Category) map[string]any {
	if spec := specFor(category); spec != nil && spec.Tools != nil {
		return spec.Tools
	}
	return map[string]any{}
}

// Categories returns all classifiable categories plus the general
// default, in precedence order.
func Categories() []core.Category {
	out := make([]core.Category, 0, len(categoryTable)+1)
	for _, spec := range categoryTable {
		out = append(out, spec.Category)
	}
	return append(out, core.CategoryGeneral)
}
