package generator

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// --- Mocks ---

type mockModel struct {
	mu sync.Mutex

	generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

	calls      int
	lastModel  string
	lastConfig *genai.GenerateContentConfig
	lastParts  []*genai.Part
}

func (m *mockModel) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.mu.Lock()
	m.calls++
	m.lastModel = model
	m.lastConfig = config
	if len(contents) > 0 {
		m.lastParts = contents[0].Parts
	}
	m.mu.Unlock()

	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, contents, config)
	}
	return textResponse("ok"), nil
}

// textResponse はテキストだけを含む正常レスポンスを作るヘルパーです。
func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, &genai.Part{Text: t})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: parts, Role: "model"},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

// mockFactory は呼び出された API キーを記録する ModelFactory を返します。
func mockFactory(model ContentModel, err error, gotKey *string) ModelFactory {
	return func(ctx context.Context, apiKey string) (ContentModel, error) {
		if gotKey != nil {
			*gotKey = apiKey
		}
		if err != nil {
			return nil, err
		}
		return model, nil
	}
}
