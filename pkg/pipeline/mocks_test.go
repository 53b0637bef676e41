package pipeline

import (
	"context"

	"github.com/shouni/codevision-kit/pkg/domain"
)

// --- Mocks ---

type mockGenerator struct {
	calls   int
	lastReq *domain.GenerationRequest
	text    string
	err     error
}

func (m *mockGenerator) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &domain.GenerationResult{UseCase: req.UseCase, Target: req.Target, Text: m.text}, nil
}
