package answer

import (
	"testing"

	"github.com/sandevgo/studykb/internal/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     core.Category
	}{
		{"math keyword", "이차방정식 풀이 방법을 알려주세요", core.CategoryMath},
		{"math keyword mid sentence", "어려운 적분 문제가 있어요", core.CategoryMath},
		{"science keyword", "화학 반응의 원리가 궁금해요", core.CategoryScience},
		{"programming keyword", "파이썬으로 리스트를 정렬하려면?", core.CategoryProgramming},
		{"korean keyword", "맞춤법 검사 좀 해주세요", core.CategoryKorean},
		{"english keyword", "영어 회화 공부법", core.CategoryEnglish},
		{"no keyword", "오늘 날씨 어때요?", core.CategoryGeneral},
		{"empty question", "", core.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.question); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// "수학" appears before "과학" in the table, so a question carrying
	// both classifies as math.
	got := Classify("수학과 과학 중 뭐가 어려워요?")
	if got != core.CategoryMath {
		t.Errorf("Classify = %q, want %q", got, core.CategoryMath)
	}
}

func TestCategoriesEndsWithGeneral(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 {
		t.Fatal("Categories returned nothing")
	}
	if cats[len(cats)-1] != core.CategoryGeneral {
		t.Errorf("last category = %q, want %q", cats[len(cats)-1], core.CategoryGeneral)
	}
}
