package i18n

// QAPair is one bundled Korean study question and answer.
type QAPair struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
}

var koreanQAContent = map[string][]QAPair{
	"mathematics": {
		{
			Question: "피타고라스 정리란 무엇인가요?",
			Answer:   "피타고라스 정리는 직각삼각형에서 빗변의 제곱이 다른 두 변의 제곱의 합과 같다는 정리입니다. 즉, a² + b² = c² (c는 빗변)입니다.",
			Tags:     []string{"기하", "정리", "삼각형", "수학", "피타고라스"},
		},
		{
			Question: "원의 넓이는 어떻게 구하나요?",
			Answer:   "원의 넓이는 A = πr² 공식으로 구할 수 있습니다. 여기서 r은 원의 반지름이고, π(파이)는 약 3.14159입니다.",
			Tags:     []string{"기하", "원", "넓이", "공식", "파이"},
		},
		{
			Question: "이차방정식의 해는 어떻게 구하나요?",
			Answer:   "이차방정식 ax² + bx + c = 0의 해는 근의 공식 x = (-b ± √(b²-4ac)) / 2a 를 사용하여 구할 수 있습니다.",
			Tags:     []string{"대수", "이차방정식", "근의공식", "방정식"},
		},
		{
			Question: "분수의 덧셈은 어떻게 하나요?",
			Answer:   "분수의 덧셈을 할 때는 먼저 분모를 같게 만든 후 분자끼리 더합니다. 예: 1/2 + 1/3 = 3/6 + 2/6 = 5/6",
			Tags:     []string{"분수", "덧셈", "통분", "기본연산"},
		},
		{
			Question: "삼각형의 내각의 합은 얼마인가요?",
			Answer:   "모든 삼각형의 내각의 합은 항상 180도입니다. 이는 삼각형의 중요한 성질 중 하나입니다.",
			Tags:     []string{"기하", "삼각형", "내각", "각도"},
		},
	},
	"science": {
		{
			Question: "광합성이란 무엇인가요?",
			Answer:   "광합성은 식물이 햇빛, 이산화탄소, 물을 이용해 포도당과 산소를 만드는 과정입니다. 화학식: 6CO₂ + 6H₂O + 빛에너지 → C₆H₁₂O₆ + 6O₂",
			Tags:     []string{"생물", "식물", "광합성", "에너지", "화학반응"},
		},
		{
			Question: "뉴턴의 운동 법칙은 무엇인가요?",
			Answer:   "뉴턴의 3법칙: 1법칙(관성의 법칙) - 외력이 없으면 물체는 정지하거나 등속운동, 2법칙 - F=ma, 3법칙 - 작용반작용의 법칙",
			Tags:     []string{"물리", "뉴턴", "운동", "힘", "관성"},
		},
		{
			Question: "원소주기율표는 어떻게 배열되어 있나요?",
			Answer:   "주기율표는 원소들을 원자번호(양성자 수) 순으로 배열한 표입니다. 같은 족(세로줄)의 원소들은 비슷한 성질을 가집니다.",
			Tags:     []string{"화학", "원소", "주기율표", "원자번호", "족"},
		},
		{
			Question: "지구의 층구조는 어떻게 되어 있나요?",
			Answer:   "지구는 안쪽부터 내핵(고체 철, 니켈), 외핵(액체), 맨틀(마그마), 지각(암석층)으로 구성되어 있습니다.",
			Tags:     []string{"지구과학", "지구구조", "내핵", "외핵", "맨틀", "지각"},
		},
	},
	"history": {
		{
			Question: "한국전쟁은 언제 일어났나요?",
			Answer:   "한국전쟁은 1950년 6월 25일에 시작되어 1953년 7월 27일 휴전협정 체결로 분단이 고착화되었습니다.",
			Tags:     []string{"한국사", "한국전쟁", "1950년", "분단", "휴전협정"},
		},
		{
			Question: "세종대왕의 주요 업적은 무엇인가요?",
			Answer:   "세종대왕의 대표적인 업적으로는 한글 창제, 측우기·해시계 발명, 집현전 설치, 과학기술 발달 등이 있습니다.",
			Tags:     []string{"조선시대", "세종대왕", "한글", "집현전", "과학기술"},
		},
		{
			Question: "고려시대의 특징은 무엇인가요?",
			Answer:   "고려시대(918-1392)는 불교문화가 발달하고, 귀족정치, 과거제도, 팔만대장경 제작 등이 특징입니다.",
			Tags:     []string{"한국사", "고려시대", "불교", "귀족정치", "팔만대장경"},
		},
	},
	"language": {
		{
			Question: "은유법이란 무엇인가요?",
			Answer:   "은유법은 어떤 사물을 다른 사물에 빗대어 직접적으로 표현하는 수사법입니다. 예: '인생은 여행이다'",
			Tags:     []string{"국어", "수사법", "은유법", "문학", "표현기법"},
		},
		{
			Question: "한글의 창제 원리는 무엇인가요?",
			Answer:   "한글은 발음기관의 모양을 본떠 만든 표음문자입니다. 자음은 발음기관의 모양, 모음은 천지인 사상을 바탕으로 만들어졌습니다.",
			Tags:     []string{"한글", "창제원리", "표음문자", "천지인", "세종대왕"},
		},
		{
			Question: "품사의 종류에는 무엇이 있나요?",
			Answer:   "한국어 품사는 명사, 대명사, 수사, 조사, 동사, 형용사, 관형사, 부사, 감탄사로 9개가 있습니다.",
			Tags:     []string{"국어", "문법", "품사", "명사", "동사", "형용사"},
		},
	},
	"geography": {
		{
			Question: "우리나라의 기후 특징은 무엇인가요?",
			Answer:   "우리나라는 온대 계절풍 기후로, 사계절이 뚜렷하고 여름에 덥고 습하며 겨울에 춥고 건조한 특징이 있습니다.",
			Tags:     []string{"지리", "기후", "계절풍", "온대기후", "사계절"},
		},
		{
			Question: "세계 7대륙은 무엇인가요?",
			Answer:   "세계 7대륙은 아시아, 아프리카, 북아메리카, 남아메리카, 남극, 유럽, 오세아니아입니다.",
			Tags:     []string{"세계지리", "대륙", "아시아", "아프리카", "아메리카"},
		},
	},
	"computer_science": {
		{
			Question: "알고리즘이란 무엇인가요?",
			Answer:   "알고리즘은 문제를 해결하기 위한 단계별 절차나 방법입니다. 컴퓨터가 이해할 수 있는 명령어의 순서라고 할 수 있습니다.",
			Tags:     []string{"컴퓨터과학", "알고리즘", "프로그래밍", "문제해결"},
		},
		{
			Question: "HTML과 CSS의 차이점은 무엇인가요?",
			Answer:   "HTML은 웹 페이지의 구조와 내용을 만드는 언어이고, CSS는 웹 페이지의 디자인과 레이아웃을 꾸미는 언어입니다.",
			Tags:     []string{"웹개발", "HTML", "CSS", "프로그래밍", "웹디자인"},
		},
	},
	"study_tips": {
		{
			Question: "효과적인 암기 방법은 무엇인가요?",
			Answer:   "효과적인 암기 방법으로는 반복 학습, 연상법, 스토리텔링, 그림이나 도표 활용, 소리내어 읽기 등이 있습니다.",
			Tags:     []string{"학습법", "암기", "기억술", "공부방법", "학습전략"},
		},
		{
			Question: "포모도로 기법이란 무엇인가요?",
			Answer:   "포모도로 기법은 25분 집중 공부 후 5분 휴식하는 패턴을 반복하는 시간 관리법입니다. 4번째 휴식은 15-30분으로 길게 합니다.",
			Tags:     []string{"학습법", "시간관리", "포모도로", "집중력", "생산성"},
		},
		{
			Question: "시험 전 효과적인 복습 방법은?",
			Answer:   "시험 전에는 요약 노트 만들기, 문제 풀이 연습, 모르는 부분 집중 학습, 충분한 수면, 건강한 식사가 중요합니다.",
			Tags:     []string{"시험준비", "복습", "학습전략", "시험공부", "노트정리"},
		},
	},
}

var subjectIcons = map[string]string{
	"mathematics":      "🔢",
	"science":          "🔬",
	"history":          "📚",
	"language":         "✏️",
	"geography":        "🌍",
	"computer_science": "💻",
	"study_tips":       "🎯",
	"general":          "💡",
}

// KoreanQABySubject returns the bundled pairs for a subject, up to
// count when count > 0.
func KoreanQABySubject(subject string, count int) []QAPair {
	pairs := koreanQAContent[subject]
	if count > 0 && count < len(pairs) {
		return pairs[:count]
	}
	return pairs
}

// AllKoreanQA returns the full subject-keyed content table.
func AllKoreanQA() map[string][]QAPair {
	return koreanQAContent
}

// SubjectIcon returns the emoji used next to a subject name.
func SubjectIcon(subject string) string {
	if icon, ok := subjectIcons[subject]; ok {
		return icon
	}
	return "📖"
}
