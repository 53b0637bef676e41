// Package handler は HTTP リクエストハンドラを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shouni/codevision-kit/internal/server/dto"
	"github.com/shouni/codevision-kit/internal/server/middleware"
	"github.com/shouni/codevision-kit/pkg/domain"
	"github.com/shouni/codevision-kit/pkg/generator"
	"github.com/shouni/codevision-kit/pkg/pipeline"
)

// Runner は 1 回分の生成を実行するパイプラインです。
type Runner interface {
	Run(ctx context.Context, in domain.ComposeInput) (*pipeline.Outcome, error)
}

// generateForm は生成 API のマルチパートフォームです。
type generateForm struct {
	PromptType   string `form:"prompt_type"`
	CustomPrompt string `form:"custom_prompt"`
	Target       string `form:"target"`

	Responsive bool `form:"responsive"`
	Animations bool `form:"animations"`

	IncludeTests         bool `form:"include_tests"`
	IncludeDocs          bool `form:"include_docs"`
	IncludeErrorHandling bool `form:"include_error_handling"`
	Complexity           int  `form:"complexity"`

	RefactorGoals []string `form:"refactor_goals"`
	Text          string   `form:"text"`

	Images []*multipart.FileHeader `form:"images"`
}

func (f *generateForm) toInput(useCase domain.UseCase, images []domain.ImageInput) domain.ComposeInput {
	return domain.ComposeInput{
		UseCase: useCase,
		Options: domain.GenerationOptions{
			PromptType:           f.PromptType,
			CustomPrompt:         f.CustomPrompt,
			Target:               f.Target,
			Responsive:           f.Responsive,
			Animations:           f.Animations,
			IncludeTests:         f.IncludeTests,
			IncludeDocs:          f.IncludeDocs,
			IncludeErrorHandling: f.IncludeErrorHandling,
			Complexity:           f.Complexity,
			RefactorGoals:        f.RefactorGoals,
		},
		Text:   f.Text,
		Images: images,
	}
}

// GenerateHandler は生成 API のハンドラです。
type GenerateHandler struct {
	runner         Runner
	maxUploadBytes int64
}

// NewGenerateHandler は GenerateHandler を作成します。
func NewGenerateHandler(runner Runner, maxUploadBytes int64) *GenerateHandler {
	return &GenerateHandler{runner: runner, maxUploadBytes: maxUploadBytes}
}

// Generate は POST /v1/generate/:usecase を処理します。
func (h *GenerateHandler) Generate(c *gin.Context) {
	useCase, err := domain.ParseUseCase(c.Param("usecase"))
	if err != nil {
		writeError(c, err)
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var form generateForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, bindError(err))
		return
	}

	images, err := readImages(form.Images)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := generator.WithAPIKey(c.Request.Context(), c.GetHeader(middleware.APIKeyHeader))
	out, err := h.runner.Run(ctx, form.toInput(useCase, images))
	if err != nil {
		writeError(c, err)
		return
	}

	dto.Success(c, dto.GenerateResponse{
		UseCase:      out.Result.UseCase.String(),
		Text:         out.Presentation.Text,
		RenderAsCode: out.Presentation.RenderAsCode,
		Language:     out.Presentation.LanguageTag,
		Filename:     out.Presentation.SuggestedFilename,
		ImageCount:   out.ImageCount,
	})
}

// bindError はフォームの解析エラーを入力エラーに揃えます。
// multipart の読み込みでは MaxBytesError が包まれずに文字列化されることがあるため、メッセージでも判定する。
func bindError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
		return fmt.Errorf("%w: %v", errPayloadTooLarge, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}
