package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shouni/codevision-kit/pkg/composer"
	"github.com/shouni/codevision-kit/pkg/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// IndexTemplate は UI ページのテンプレート名です。
const IndexTemplate = "index.html.tmpl"

// Templates は埋め込みテンプレートを解析して返します。
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.tmpl")
}

type useCaseTab struct {
	Slug  string
	Title string
}

var useCaseTabs = []useCaseTab{
	{domain.SingleImageToCode.String(), "Image to Code"},
	{domain.MultiImageToApp.String(), "Multiple Images"},
	{domain.CodeRefactor.String(), "Code Refactor"},
	{domain.DocToApp.String(), "Doc to App"},
}

// UIHandler は単一ページの UI を返します。
type UIHandler struct {
	appName  string
	catalog  composer.Catalog
	examples composer.Examples
}

func NewUIHandler(appName string) *UIHandler {
	return &UIHandler{
		appName:  appName,
		catalog:  composer.DefaultCatalog(),
		examples: composer.DefaultExamples(),
	}
}

// Index は GET / を処理します。
func (h *UIHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, IndexTemplate, gin.H{
		"AppName":  h.appName,
		"Tabs":     useCaseTabs,
		"Catalog":  h.catalog,
		"Examples": h.examples,
	})
}
