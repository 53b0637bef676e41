package generator

import (
	"context"

	"google.golang.org/genai"

	"github.com/shouni/codevision-kit/pkg/domain"
)

// ContentModel は genai の Models が満たす、テキスト生成用の最小インターフェースです。
type ContentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ModelFactory は API キーから ContentModel を作成します。
// リクエスト単位で API キーを差し替えるときに使います。
type ModelFactory func(ctx context.Context, apiKey string) (ContentModel, error)

// ContentGenerator はパイプライン層が利用する統合窓口です。
type ContentGenerator interface {
	// Generate は組み立て済みのリクエストをモデルに送り、生成されたテキストを返します。
	Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error)
}
