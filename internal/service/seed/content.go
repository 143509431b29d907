// Package seed populates a fresh knowledge base with starter
// categories and Q&A pairs for students.
package seed

// CategoryInfo describes a starter category for the UI.
type CategoryInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type samplePair struct {
	Question string
	Answer   string
	Tags     []string
}

type categoryContent struct {
	Info    CategoryInfo
	Samples []samplePair
}

var studentCategories = []categoryContent{
	{
		Info: CategoryInfo{
			Key:         "mathematics",
			Name:        "Mathematics",
			Icon:        "fas fa-calculator",
			Description: "Math concepts, formulas, and problem solving",
		},
		Samples: []samplePair{
			{
				Question: "What is the Pythagorean theorem?",
				Answer:   "The Pythagorean theorem states that in a right triangle, the square of the hypotenuse equals the sum of squares of the other two sides: a² + b² = c²",
				Tags:     []string{"geometry", "theorem", "triangle", "math"},
			},
			{
				Question: "How do you calculate the area of a circle?",
				Answer:   "The area of a circle is calculated using the formula A = πr², where r is the radius of the circle.",
				Tags:     []string{"geometry", "circle", "area", "formula"},
			},
			{
				Question: "What is the quadratic formula?",
				Answer:   "The quadratic formula is x = (-b ± √(b²-4ac)) / 2a, used to find the roots of quadratic equations in the form ax² + bx + c = 0",
				Tags:     []string{"algebra", "quadratic", "formula", "equations"},
			},
		},
	},
	{
		Info: CategoryInfo{
			Key:         "science",
			Name:        "Science",
			Icon:        "fas fa-microscope",
			Description: "Physics, Chemistry, Biology concepts",
		},
		Samples: []samplePair{
			{
				Question: "What is Newton's first law of motion?",
				Answer:   "Newton's first law states that an object at rest stays at rest, and an object in motion stays in motion at constant velocity, unless acted upon by an external force.",
				Tags:     []string{"physics", "newton", "motion", "force"},
			},
			{
				Question: "What is photosynthesis?",
				Answer:   "Photosynthesis is the process by which plants use sunlight, carbon dioxide, and water to produce glucose and oxygen. The equation is: 6CO₂ + 6H₂O + light energy → C₆H₁₂O₆ + 6O₂",
				Tags:     []string{"biology", "plants", "photosynthesis", "energy"},
			},
			{
				Question: "What is the periodic table?",
				Answer:   "The periodic table is a systematic arrangement of chemical elements organized by atomic number, showing recurring patterns in their properties.",
				Tags:     []string{"chemistry", "elements", "periodic-table", "atomic"},
			},
		},
	},
	{
		Info: CategoryInfo{
			Key:         "history",
			Name:        "History",
			Icon:        "fas fa-book",
			Description: "Historical events, dates, and civilizations",
		},
		Samples: []samplePair{
			{
				Question: "When did World War II end?",
				Answer:   "World War II ended on September 2, 1945, when Japan formally surrendered aboard the USS Missouri in Tokyo Bay.",
				Tags:     []string{"wwii", "1945", "japan", "surrender"},
			},
			{
				Question: "Who was the first president of the United States?",
				Answer:   "George Washington was the first president of the United States, serving from 1789 to 1797.",
				Tags:     []string{"usa", "president", "washington", "founding-fathers"},
			},
			{
				Question: "What was the Renaissance?",
				Answer:   "The Renaissance was a cultural movement in Europe from the 14th to 17th century, marked by renewed interest in classical learning, art, and humanism.",
				Tags:     []string{"renaissance", "europe", "art", "culture"},
			},
		},
	},
	{
		Info: CategoryInfo{
			Key:         "language",
			Name:        "Language & Literature",
			Icon:        "fas fa-pen-fancy",
			Description: "Grammar, writing, literature, and communication",
		},
		Samples: []samplePair{
			{
				Question: "What is a metaphor?",
				Answer:   "A metaphor is a figure of speech that compares two different things by stating that one thing is another, without using 'like' or 'as'. Example: 'Life is a journey.'",
				Tags:     []string{"literature", "figurative-language", "metaphor", "writing"},
			},
			{
				Question: "What are the parts of speech?",
				Answer:   "The eight parts of speech are: nouns, pronouns, verbs, adjectives, adverbs, prepositions, conjunctions, and interjections.",
				Tags:     []string{"grammar", "parts-of-speech", "english", "language"},
			},
			{
				Question: "What is the difference between their, there, and they're?",
				Answer:   "'Their' shows possession, 'there' indicates location or existence, and 'they're' is a contraction of 'they are'.",
				Tags:     []string{"grammar", "homophones", "spelling", "usage"},
			},
		},
	},
	{
		Info: CategoryInfo{
			Key:         "geography",
			Name:        "Geography",
			Icon:        "fas fa-globe",
			Description: "Countries, capitals, landforms, and world knowledge",
		},
		Samples: []samplePair{
			{
				Question: "What is the capital of Australia?",
				Answer:   "The capital of Australia is Canberra, not Sydney or Melbourne as many people think.",
				Tags:     []string{"australia", "capital", "canberra", "world-capitals"},
			},
			{
				Question: "What are the seven continents?",
				Answer:   "The seven continents are: Asia, Africa, North America, South America, Antarctica, Europe, and Australia (Oceania).",
				Tags:     []string{"continents", "geography", "world", "earth"},
			},
			{
				Question: "What is the longest river in the world?",
				Answer:   "The Nile River is generally considered the longest river in the world at approximately 4,135 miles (6,650 km) long.",
				Tags:     []string{"rivers", "nile", "longest", "geography"},
			},
		},
	},
	{
		Info: CategoryInfo{
			Key:         "computer-science",
			Name:        "Computer Science",
			Icon:        "fas fa-laptop-code",
			Description: "Programming, algorithms, and computer concepts",
		},
		Samples: []samplePair{
			{
				Question: "What is an algorithm?",
				Answer:   "An algorithm is a step-by-step set of instructions designed to solve a specific problem or complete a task.",
				Tags:     []string{"algorithm", "programming", "problem-solving", "cs"},
			},
			{
				Question: "What is the difference between HTML and CSS?",
				Answer:   "HTML (HyperText Markup Language) structures web content, while CSS (Cascading Style Sheets) controls the visual styling and layout of that content.",
				Tags:     []string{"html", "css", "web-development", "programming"},
			},
			{
				Question: "What is a variable in programming?",
				Answer:   "A variable is a named storage location in computer memory that holds a value that can be referenced and manipulated in a program.",
				Tags:     []string{"variables", "programming", "memory", "coding"},
			},
		},
	},
	{
		Info: CategoryInfo{
			Key:         "study-tips",
			Name:        "Study Tips & Skills",
			Icon:        "fas fa-graduation-cap",
			Description: "Learning strategies, exam prep, and academic success",
		},
		Samples: []samplePair{
			{
				Question: "What is the Pomodoro Technique?",
				Answer:   "The Pomodoro Technique is a time management method where you work for 25 minutes, then take a 5-minute break. After 4 cycles, take a longer 15-30 minute break.",
				Tags:     []string{"study-tips", "time-management", "pomodoro", "productivity"},
			},
			{
				Question: "How can I improve my note-taking?",
				Answer:   "Use methods like Cornell notes, mind maps, or the outline method. Write key points, use abbreviations, review regularly, and organize by topics or dates.",
				Tags:     []string{"note-taking", "study-skills", "organization", "learning"},
			},
			{
				Question: "What are good test-taking strategies?",
				Answer:   "Read questions carefully, answer easy questions first, manage your time, eliminate wrong answers in multiple choice, and review your answers before submitting.",
				Tags:     []string{"test-taking", "exams", "strategy", "academic-success"},
			},
		},
	},
	{
		Info: CategoryInfo{
			Key:         "general",
			Name:        "General Knowledge",
			Icon:        "fas fa-lightbulb",
			Description: "Miscellaneous facts and general information",
		},
		Samples: []samplePair{
			{
				Question: "How many bones are in the human body?",
				Answer:   "An adult human body has 206 bones. Babies are born with about 270 bones, but many fuse together as they grow.",
				Tags:     []string{"human-body", "anatomy", "bones", "biology"},
			},
			{
				Question: "What is the speed of light?",
				Answer:   "The speed of light in a vacuum is approximately 299,792,458 meters per second (about 186,282 miles per second).",
				Tags:     []string{"physics", "light", "speed", "constants"},
			},
			{
				Question: "How many days are in a leap year?",
				Answer:   "A leap year has 366 days instead of the usual 365. Leap years occur every 4 years, with some exceptions for century years.",
				Tags:     []string{"calendar", "leap-year", "time", "mathematics"},
			},
		},
	},
}

// StudentCategories returns the starter categories for the UI, in
// fixed order.
func StudentCategories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(studentCategories))
	for _, c := range studentCategories {
		out = append(out, c.Info)
	}
	return out
}
