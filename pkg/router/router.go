package router

import (
	"strings"

	"github.com/shouni/codevision-kit/pkg/domain"
)

const (
	// FallbackLanguage は未知のターゲットに使う汎用のハイライト指定です。
	FallbackLanguage = "text"
	// FallbackExtension は未知のターゲットに使う汎用の拡張子です。
	FallbackExtension = "txt"

	markdownLanguage = "markdown"
	bundleExtension  = "zip"
)

// languageTags はターゲット（ユーザーが選んだフレームワーク / アプリ種別）からハイライト言語への対応表です。
var languageTags = map[string]string{
	"HTML/CSS/JS": "html",
	"React":       "jsx",
	"Vue":         "vue",
	"Streamlit":   "python",
	"Flutter":     "dart",
	"SwiftUI":     "swift",

	"Web App (Streamlit)":          "python",
	"REST API (FastAPI)":           "python",
	"CLI Tool":                     "python",
	"Full Stack (React + FastAPI)": "python",

	"Complete multi-page application": "html",
	"React app with routing":          "jsx",
}

// fileExtensions はターゲットからダウンロード時の拡張子への対応表です。
var fileExtensions = map[string]string{
	"HTML/CSS/JS": "html",
	"React":       "jsx",
	"Vue":         "vue",
	"Streamlit":   "py",
	"Flutter":     "dart",
	"SwiftUI":     "swift",

	"Web App (Streamlit)":          "py",
	"REST API (FastAPI)":           "py",
	"CLI Tool":                     "py",
	"Full Stack (React + FastAPI)": "py",

	"Complete multi-page application": "html",
	"React app with routing":          "jsx",
}

// ファイル名のベース部分
var filenameBases = map[domain.UseCase]string{
	domain.SingleImageToCode: "generated_code",
	domain.MultiImageToApp:   "complete_app",
	domain.CodeRefactor:      "refactored_code",
	domain.DocToApp:          "generated_app",
}

// ResponseRouter はモデルの出力をどう表示し、どの名前で保存させるかを決めます。
// 対応表にないターゲットでもエラーにはせず、汎用の指定にフォールバックします。
type ResponseRouter struct {
	languages  map[string]string
	extensions map[string]string
}

// New は既定の対応表を持つ ResponseRouter を返します。
func New() *ResponseRouter {
	return &ResponseRouter{
		languages:  languageTags,
		extensions: fileExtensions,
	}
}

// LanguageFor はターゲットに対応するハイライト言語を返します。
func (r *ResponseRouter) LanguageFor(target string) string {
	if tag, ok := r.languages[strings.TrimSpace(target)]; ok {
		return tag
	}
	return FallbackLanguage
}

// ExtensionFor はターゲットに対応する拡張子を返します。
func (r *ResponseRouter) ExtensionFor(target string) string {
	if ext, ok := r.extensions[strings.TrimSpace(target)]; ok {
		return ext
	}
	return FallbackExtension
}

// Route は生成結果から表示方針を決めます。
func (r *ResponseRouter) Route(result domain.GenerationResult) domain.Presentation {
	base, ok := filenameBases[result.UseCase]
	if !ok {
		base = "generated_output"
	}

	switch result.UseCase {
	case domain.CodeRefactor:
		// 説明とコードが混在するため、コードブロックではなく Markdown として描画する
		return domain.Presentation{
			RenderAsCode:      false,
			LanguageTag:       markdownLanguage,
			SuggestedFilename: base + ".md",
			Text:              result.Text,
		}
	case domain.MultiImageToApp:
		// 拡張子は zip だが、中身はモデルの生テキストのまま
		return domain.Presentation{
			RenderAsCode:      true,
			LanguageTag:       r.LanguageFor(result.Target),
			SuggestedFilename: base + "." + bundleExtension,
			Text:              result.Text,
		}
	default:
		return domain.Presentation{
			RenderAsCode:      true,
			LanguageTag:       r.LanguageFor(result.Target),
			SuggestedFilename: base + "." + r.ExtensionFor(result.Target),
			Text:              result.Text,
		}
	}
}
