package composer

// CustomPromptChoice は定型プロンプトの代わりにユーザー指示を使う選択肢です。
const CustomPromptChoice = "Custom prompt..."

const (
	defaultImagePromptType    = "Recreate this UI exactly"
	defaultFramework          = "HTML/CSS/JS"
	defaultGenerationType     = "Complete multi-page application"
	defaultApplicationType    = "Web App (Streamlit)"
	defaultRefactorGoal       = "Improve code quality"
	defaultComplexity         = 3
	minComplexity             = 1
	maxComplexity             = 5
	docTemperature    float32 = 0.7
	docMaxOutputToken int32   = 8192
)

// imagePromptTypes は単一画像モードで選べる定型プロンプトの表示順です。
var imagePromptTypes = []string{
	"Recreate this UI exactly",
	"Convert to React component",
	"Convert to HTML/CSS",
	"Extract and implement logic",
	"Generate from wireframe",
	CustomPromptChoice,
}

var imagePromptInstructions = map[string]string{
	"Recreate this UI exactly":    "Analyze this image and recreate the user interface exactly as shown. Pay attention to layout, colors, fonts, spacing, and all visual details.",
	"Convert to React component":  "Convert this UI to a React component with proper props, state management, and modern React patterns.",
	"Convert to HTML/CSS":         "Generate clean HTML and CSS that recreates this interface. Use semantic HTML and modern CSS.",
	"Extract and implement logic": "Analyze this diagram/flowchart and implement the logic shown in clean, well-documented code.",
	"Generate from wireframe":     "This is a wireframe. Create a fully-styled, production-ready implementation with modern design.",
}

var frameworks = []string{"HTML/CSS/JS", "React", "Vue", "Streamlit", "Flutter", "SwiftUI"}

var generationTypes = []string{
	"Complete multi-page application",
	"React app with routing",
	"Full-stack app (frontend + backend)",
	"Mobile app (Flutter/SwiftUI)",
}

var applicationTypes = []string{
	"Web App (Streamlit)",
	"REST API (FastAPI)",
	"CLI Tool",
	"Full Stack (React + FastAPI)",
}

var refactorGoals = []string{
	"Improve code quality",
	"Add modern design",
	"Make responsive",
	"Add accessibility",
	"Optimize performance",
	"Add animations",
	"Modularize components",
}

const docSystemInstruction = "You are an expert software developer who creates production-ready, well-documented code. Focus on quality, best practices, and user experience."

// Catalog は UI に提示する選択肢の一覧です。
type Catalog struct {
	PromptTypes       []string `json:"prompt_types"`
	CustomPrompt      string   `json:"custom_prompt"`
	Frameworks        []string `json:"frameworks"`
	GenerationTypes   []string `json:"generation_types"`
	ApplicationTypes  []string `json:"application_types"`
	RefactorGoals     []string `json:"refactor_goals"`
	MinComplexity     int      `json:"min_complexity"`
	MaxComplexity     int      `json:"max_complexity"`
	DefaultComplexity int      `json:"default_complexity"`
}

// DefaultCatalog は選択肢のコピーを返します。呼び出し側が書き換えても内部の表は変わりません。
func DefaultCatalog() Catalog {
	return Catalog{
		PromptTypes:       append([]string(nil), imagePromptTypes...),
		CustomPrompt:      CustomPromptChoice,
		Frameworks:        append([]string(nil), frameworks...),
		GenerationTypes:   append([]string(nil), generationTypes...),
		ApplicationTypes:  append([]string(nil), applicationTypes...),
		RefactorGoals:     append([]string(nil), refactorGoals...),
		MinComplexity:     minComplexity,
		MaxComplexity:     maxComplexity,
		DefaultComplexity: defaultComplexity,
	}
}
