package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sandevgo/studykb/internal/service/i18n"
)

func (s *Server) handleTranslations(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "language") {
	case "ko":
		writeJSON(w, r, http.StatusOK, map[string]any{"translations": i18n.AllTranslations()})
	case "en":
		// English strings are the defaults baked into the UI.
		writeJSON(w, r, http.StatusOK, map[string]any{"translations": map[string]any{}})
	default:
		writeError(w, r, http.StatusBadRequest, "Unsupported language")
	}
}

func (s *Server) handleKoreanQA(w http.ResponseWriter, r *http.Request) {
	content := i18n.AllKoreanQA()
	count := 0
	for _, pairs := range content {
		count += len(pairs)
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"korean_qa": content,
		"count":     count,
	})
}

type magicDesign struct {
	CSS         string `json:"css"`
	Description string `json:"description"`
}

// magicDesigns are decorative CSS snippets the web UI can inject.
var magicDesigns = map[string]magicDesign{
	"sparkle": {
		CSS: `@keyframes sparkle {
    0%, 100% { opacity: 0; transform: scale(0); }
    50% { opacity: 1; transform: scale(1); }
}
.sparkle-effect::before {
    content: "✨";
    position: absolute;
    animation: sparkle 1.5s infinite;
    font-size: 0.8rem;
    color: #ffd700;
}`,
		Description: "Sparkling animation effect",
	},
	"rainbow": {
		CSS: `@keyframes rainbow {
    0% { background-position: 0% 50%; }
    50% { background-position: 100% 50%; }
    100% { background-position: 0% 50%; }
}
.rainbow-text {
    background: linear-gradient(-45deg, #ff0000, #ff7f00, #ffff00, #00ff00, #0000ff, #4b0082, #9400d3);
    background-size: 400% 400%;
    animation: rainbow 3s ease infinite;
    -webkit-background-clip: text;
    -webkit-text-fill-color: transparent;
    background-clip: text;
}`,
		Description: "Rainbow text animation",
	},
	"crystal": {
		CSS: `.crystal-card {
    background: linear-gradient(135deg, rgba(255,255,255,0.1), rgba(255,255,255,0));
    backdrop-filter: blur(10px);
    border: 1px solid rgba(255,255,255,0.18);
    box-shadow: 0 8px 32px 0 rgba(31, 38, 135, 0.37);
    border-radius: 15px;
}`,
		Description: "Crystal glass morphism effect",
	},
	"korean": {
		CSS: `.korean-theme {
    background: linear-gradient(135deg, #ff6b6b, #4ecdc4, #45b7d1, #96ceb4);
    color: #2c3e50;
    font-family: "Noto Sans KR", sans-serif;
}`,
		Description: "Korean aesthetic theme",
	},
	"aurora": {
		CSS: `@keyframes aurora {
    0% { transform: translateX(-100%) rotate(0deg); }
    50% { transform: translateX(100%) rotate(180deg); }
    100% { transform: translateX(-100%) rotate(360deg); }
}
.aurora-bg {
    background: linear-gradient(45deg, #00c6ff, #0072ff, #9b59b6, #e74c3c, #f39c12);
    background-size: 400% 400%;
    animation: aurora 10s ease infinite;
}`,
		Description: "Aurora borealis effect",
	},
}

func (s *Server) handleMagicDesign(w http.ResponseWriter, r *http.Request) {
	design, ok := magicDesigns[chi.URLParam(r, "designType")]
	if !ok {
		writeError(w, r, http.StatusNotFound, "Design type not found")
		return
	}
	writeJSON(w, r, http.StatusOK, design)
}
