package generator

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/shouni/codevision-kit/pkg/domain"
	"github.com/shouni/codevision-kit/pkg/imgutil"
	"github.com/shouni/codevision-kit/pkg/logger"
)

// buildContents はテキストを先頭に、画像を入力順に並べたユーザーコンテンツを作ります。
func (g *GeminiGenerator) buildContents(ctx context.Context, req *domain.GenerationRequest) ([]*genai.Content, error) {
	parts := make([]*genai.Part, 0, len(req.Images)+1)
	parts = append(parts, genai.NewPartFromText(req.Instruction))

	for i, img := range req.Images {
		part, err := g.toPart(ctx, img)
		if err != nil {
			return nil, fmt.Errorf("画像 %d (%s) の変換に失敗しました: %w", i+1, img.Name, err)
		}
		parts = append(parts, part)
	}

	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil
}

// toPart は画像データを InlineData パーツに変換します。
// MIME タイプはバイト列から判定し、画像でなければ ErrInvalidInput を返します。
func (g *GeminiGenerator) toPart(ctx context.Context, img domain.ImageInput) (*genai.Part, error) {
	if len(img.Data) == 0 {
		return nil, fmt.Errorf("%w: image data is empty", domain.ErrInvalidInput)
	}

	data := img.Data
	if g.opts.CompressImages {
		var compressed bool
		data, compressed = imgutil.CompressIfLarger(img.Data, g.opts.CompressThresholdBytes, g.opts.CompressionQuality)
		if compressed {
			logger.FromContext(ctx).Debug("画像を圧縮しました", "name", img.Name, "before", len(img.Data), "after", len(data))
		}
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		// 判定できない場合はアップロード時に宣言された MIME を使う
		if strings.HasPrefix(img.MimeType, "image/") {
			mimeType = img.MimeType
		} else {
			return nil, fmt.Errorf("%w: unsupported content type %s", domain.ErrInvalidInput, mimeType)
		}
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}, nil
}

// buildConfig はシステム指示と生成パラメータを genai の設定に変換します。
// どちらも指定がなければ nil を返し、モデル側の既定値に任せます。
func buildConfig(req *domain.GenerationRequest) *genai.GenerateContentConfig {
	if req.SystemInstruction == "" && req.Params == nil {
		return nil
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}
	if req.Params != nil {
		cfg.Temperature = genai.Ptr(req.Params.Temperature)
		cfg.MaxOutputTokens = req.Params.MaxOutputTokens
	}
	return cfg
}

// parseText はレスポンスの先頭候補からテキストパーツを連結して取り出します。
// 思考パーツは除外します。
func parseText(ctx context.Context, resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: empty response", domain.ErrExternalService)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", domain.ErrExternalService, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates in response", domain.ErrExternalService)
	}

	candidate := resp.Candidates[0]
	var sb strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought || part.Text == "" {
				continue
			}
			sb.WriteString(part.Text)
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		if candidate.FinishReason != "" && candidate.FinishReason != genai.FinishReasonStop {
			return "", fmt.Errorf("%w: generation stopped (%s)", domain.ErrExternalService, candidate.FinishReason)
		}
		return "", fmt.Errorf("%w: response contains no text", domain.ErrExternalService)
	}
	if candidate.FinishReason == genai.FinishReasonMaxTokens {
		logger.FromContext(ctx).Warn("出力トークン上限に達したため、応答が途中で切れている可能性があります")
	}
	return text, nil
}
