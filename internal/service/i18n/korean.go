// Package i18n serves the Korean UI strings and the Korean study
// content bundled with the application.
package i18n

// Translations maps a section name to its key/value string pairs.
type Translations map[string]map[string]string

var koreanTranslations = Translations{
	"nav": {
		"welcome":                    "환영합니다",
		"student_qa_knowledge_base":  "학생 질문답변 지식 베이스",
		"learn_share_grow":           "함께 배우고, 나누고, 성장하는 공간",
		"search":                     "검색",
		"browse_all":                 "모두 보기",
		"ask_question":               "질문하기",
		"statistics":                 "통계",
		"all_subjects":               "모든 과목",
		"login":                      "로그인",
		"register":                   "회원가입",
		"logout":                     "로그아웃",
	},
	"subjects": {
		"mathematics":      "수학",
		"science":          "과학",
		"history":          "역사",
		"language":         "국어 및 문학",
		"geography":        "지리",
		"computer_science": "컴퓨터 과학",
		"study_tips":       "학습 팁 및 기술",
		"general":          "일반 상식",
	},
	"forms": {
		"search_placeholder":   "숙제 도움, 학습 팁, 또는 어떤 주제든 검색해보세요...",
		"your_question":        "질문",
		"your_answer":          "답변/설명",
		"question_placeholder": "무엇을 알고 싶으신가요? (예: 이차방정식은 어떻게 풀죠?)",
		"answer_placeholder":   "다른 학생들을 도울 수 있는 자세한 답변이나 설명을 작성해주세요...",
		"subject":              "과목",
		"tags":                 "태그",
		"tags_placeholder":     "대수, 숙제, 시험준비 등",
		"add_question_answer":  "질문과 답변 추가하기",
		"required":             "필수",
		"cancel":               "취소",
	},
	"interactions": {
		"reply":             "댓글",
		"add_reply":         "댓글 추가",
		"helpful":           "도움됨",
		"replies":           "댓글",
		"no_replies":        "아직 댓글이 없습니다. 첫 번째로 도움을 주세요!",
		"your_reply":        "댓글 내용",
		"reply_placeholder": "생각, 추가 정보, 또는 후속 질문을 공유해주세요...",
		"share_thoughts":    "생각을 나누고, 추가 정보를 제공하거나 후속 질문을 해보세요...",
		"be_first_to_help":  "첫 번째로 도움을 주는 사람이 되어주세요!",
	},
	"messages": {
		"no_results_found":        "검색 결과가 없습니다",
		"try_different_terms":     "다른 검색어를 시도하거나 모든 질문을 둘러보세요.",
		"loading":                 "로딩 중...",
		"search_failed":           "검색에 실패했습니다. 다시 시도해주세요.",
		"question_added":          "질문이 성공적으로 추가되었습니다!",
		"thank_you_contributing":  "기여해주셔서 감사합니다",
		"reply_added":             "댓글이 성공적으로 추가되었습니다!",
		"authentication_required": "로그인이 필요합니다",
		"please_login":            "로그인해 주세요",
	},
	"stats": {
		"learning_community_statistics": "학습 커뮤니티 통계",
		"total_questions":               "전체 질문 수",
		"subject_areas":                 "학습 영역",
		"total_replies":                 "전체 댓글 수",
		"students":                      "학생 수",
		"helpful_replies":               "도움되는 댓글",
		"community":                     "커뮤니티",
		"active_students":               "활동중인 학생",
		"active_sessions":               "활성 세션",
		"top_contributors":              "주요 기여자",
		"popular_topics":                "인기 주제",
	},
	"help": {
		"need_help_title": "숙제, 공부, 또는 학업과 관련된 도움이 필요하신가요?",
		"need_help_desc":  "질문을 올리고 동료 학생들을 도와주세요!",
		"how_to_use":      "사용 방법",
		"search_tip":      "검색어를 입력하여 기존 질문과 답변을 찾아보세요",
		"ask_tip":         "새로운 질문을 올려 커뮤니티의 도움을 받아보세요",
		"reply_tip":       "다른 학생들의 질문에 답변하여 도움을 주세요",
		"helpful_tip":     "유용한 답변에는 '도움됨'을 눌러주세요",
	},
	"time": {
		"today":       "오늘",
		"yesterday":   "어제",
		"days_ago":    "일 전",
		"hours_ago":   "시간 전",
		"minutes_ago": "분 전",
		"just_now":    "방금 전",
	},
	"actions": {
		"submit": "제출",
		"save":   "저장",
		"edit":   "수정",
		"delete": "삭제",
		"share":  "공유",
		"copy":   "복사",
		"print":  "인쇄",
		"export": "내보내기",
		"import": "가져오기",
	},
}

// GetTranslation looks up one string; missing keys echo the key back
// so UI never renders empty labels.
func GetTranslation(section, key string) string {
	if v, ok := koreanTranslations[section][key]; ok {
		return v
	}
	return key
}

// SectionTranslations returns one section, or nil if unknown.
func SectionTranslations(section string) map[string]string {
	return koreanTranslations[section]
}

// AllTranslations returns the full translation table.
func AllTranslations() Translations {
	return koreanTranslations
}
