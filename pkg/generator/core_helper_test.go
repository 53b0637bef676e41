package generator

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/shouni/codevision-kit/pkg/domain"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{0, 128, 255, 255})
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestGeminiGenerator_ToPart(t *testing.T) {
	ctx := context.Background()
	g := &GeminiGenerator{opts: Options{}.normalized()}

	t.Run("PNGはInlineDataになる", func(t *testing.T) {
		data := pngBytes(t)
		part, err := g.toPart(ctx, domain.ImageInput{Name: "a.png", Data: data})
		require.NoError(t, err)
		require.NotNil(t, part.InlineData)
		assert.Equal(t, "image/png", part.InlineData.MIMEType)
		assert.Equal(t, data, part.InlineData.Data)
	})

	t.Run("判定できない場合は宣言されたMIMEを使う", func(t *testing.T) {
		part, err := g.toPart(ctx, domain.ImageInput{Name: "x.webp", MimeType: "image/webp", Data: []byte("opaque bytes")})
		require.NoError(t, err)
		assert.Equal(t, "image/webp", part.InlineData.MIMEType)
	})

	t.Run("画像でなければエラー", func(t *testing.T) {
		_, err := g.toPart(ctx, domain.ImageInput{Name: "note.txt", MimeType: "text/plain", Data: []byte("hello")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("空データはエラー", func(t *testing.T) {
		_, err := g.toPart(ctx, domain.ImageInput{Name: "empty.png"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("圧縮が有効でもしきい値以下なら元データ", func(t *testing.T) {
		gc := &GeminiGenerator{opts: Options{CompressImages: true, CompressThresholdBytes: 1 << 20}.normalized()}
		data := pngBytes(t)
		part, err := gc.toPart(ctx, domain.ImageInput{Name: "a.png", Data: data})
		require.NoError(t, err)
		assert.Equal(t, data, part.InlineData.Data)
	})
}

func TestBuildConfig(t *testing.T) {
	t.Run("指定がなければnil", func(t *testing.T) {
		assert.Nil(t, buildConfig(&domain.GenerationRequest{Instruction: "x"}))
	})

	t.Run("システム指示とパラメータを反映する", func(t *testing.T) {
		cfg := buildConfig(&domain.GenerationRequest{
			Instruction:       "x",
			SystemInstruction: "You are an expert",
			Params:            &domain.GenerationParams{Temperature: 0.7, MaxOutputTokens: 8192},
		})
		require.NotNil(t, cfg)
		require.NotNil(t, cfg.SystemInstruction)
		assert.Equal(t, "You are an expert", cfg.SystemInstruction.Parts[0].Text)
		require.NotNil(t, cfg.Temperature)
		assert.InDelta(t, 0.7, *cfg.Temperature, 1e-6)
		assert.EqualValues(t, 8192, cfg.MaxOutputTokens)
	})

	t.Run("システム指示だけでも設定を作る", func(t *testing.T) {
		cfg := buildConfig(&domain.GenerationRequest{SystemInstruction: "sys"})
		require.NotNil(t, cfg)
		assert.Nil(t, cfg.Temperature)
	})
}

func TestParseText(t *testing.T) {
	t.Run("正常系: テキストパーツを連結する", func(t *testing.T) {
		text, err := parseText(context.Background(), textResponse("<html>", "</html>"))
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", text)
	})

	t.Run("思考パーツは除外する", func(t *testing.T) {
		resp := textResponse("answer")
		resp.Candidates[0].Content.Parts = append([]*genai.Part{{Text: "thinking...", Thought: true}}, resp.Candidates[0].Content.Parts...)
		text, err := parseText(context.Background(), resp)
		require.NoError(t, err)
		assert.Equal(t, "answer", text)
	})

	t.Run("出力上限で切れても本文は返す", func(t *testing.T) {
		resp := textResponse("partial")
		resp.Candidates[0].FinishReason = genai.FinishReasonMaxTokens
		text, err := parseText(context.Background(), resp)
		require.NoError(t, err)
		assert.Equal(t, "partial", text)
	})

	errCases := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil", nil, "empty response"},
		{"候補なし", &genai.GenerateContentResponse{}, "no candidates"},
		{
			"プロンプトブロック",
			&genai.GenerateContentResponse{PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety}},
			"prompt blocked",
		},
		{
			"安全性で停止",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}}},
			"generation stopped",
		},
		{
			"テキストなし",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content:      &genai.Content{Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("x")}}}},
				FinishReason: genai.FinishReasonStop,
			}}},
			"no text",
		},
	}
	for _, tc := range errCases {
		t.Run("異常系: "+tc.name, func(t *testing.T) {
			_, err := parseText(context.Background(), tc.resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrExternalService)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
