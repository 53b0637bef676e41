package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shouni/codevision-kit/internal/server/dto"
	"github.com/shouni/codevision-kit/pkg/composer"
)

// CatalogHandler は選択肢と活用例を返します。
type CatalogHandler struct {
	catalog  composer.Catalog
	examples composer.Examples
}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{
		catalog:  composer.DefaultCatalog(),
		examples: composer.DefaultExamples(),
	}
}

// Catalog は GET /v1/catalog を処理します。
func (h *CatalogHandler) Catalog(c *gin.Context) {
	dto.Success(c, h.catalog)
}

// Examples は GET /v1/examples を処理します。
func (h *CatalogHandler) Examples(c *gin.Context) {
	dto.Success(c, h.examples)
}
