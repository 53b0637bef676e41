package composer

import (
	"fmt"
	"strings"

	"github.com/shouni/codevision-kit/pkg/domain"
)

// composeFunc は 1 つのユースケースに対応する組み立て関数です。
type composeFunc func(in domain.ComposeInput) (*domain.GenerationRequest, error)

// Composer はユーザー入力から GenerationRequest を組み立てる RequestComposer です。
// 状態を持たない純粋な変換なので、同じ入力には常に同じ出力を返します。
type Composer struct {
	composers map[domain.UseCase]composeFunc
}

// New はすべてのユースケースを登録した Composer を返します。
func New() *Composer {
	return &Composer{
		composers: map[domain.UseCase]composeFunc{
			domain.SingleImageToCode: composeSingleImage,
			domain.MultiImageToApp:   composeMultiImage,
			domain.CodeRefactor:      composeRefactor,
			domain.DocToApp:          composeDocToApp,
		},
	}
}

// Compose はユースケースごとの組み立て関数に処理を振り分けます。
func (c *Composer) Compose(in domain.ComposeInput) (*domain.GenerationRequest, error) {
	fn, ok := c.composers[in.UseCase]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported use case %q", domain.ErrInvalidInput, in.UseCase)
	}
	return fn(in)
}

// requestBuilder はすべてのユースケースが共有する指示文の組み立てヘルパーです。
// 段落を空行区切りで連結するだけで、順序は呼び出し側が決めます。
type requestBuilder struct {
	blocks []string
}

func (b *requestBuilder) paragraph(s string) *requestBuilder {
	if strings.TrimSpace(s) != "" {
		b.blocks = append(b.blocks, s)
	}
	return b
}

// section は "LABEL:" の下に本文を置いた段落を追加します。本文は加工しません。
func (b *requestBuilder) section(label, body string) *requestBuilder {
	return b.paragraph(label + ":\n" + body)
}

// list は見出しと箇条書きを 1 段落として追加します。
func (b *requestBuilder) list(header string, items []string, numbered bool) *requestBuilder {
	lines := make([]string, 0, len(items)+1)
	if header != "" {
		lines = append(lines, header)
	}
	for i, item := range items {
		if numbered {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
		} else {
			lines = append(lines, "- "+item)
		}
	}
	return b.paragraph(strings.Join(lines, "\n"))
}

func (b *requestBuilder) String() string {
	return strings.Join(b.blocks, "\n\n")
}

// build は組み立てた指示文と画像から GenerationRequest を作ります。
// 画像スライスは新しく確保し、入力順をそのまま保持します。
func (b *requestBuilder) build(in domain.ComposeInput, target string) (*domain.GenerationRequest, error) {
	instruction := b.String()
	if strings.TrimSpace(instruction) == "" {
		return nil, fmt.Errorf("%w: composed instruction is empty", domain.ErrInvalidInput)
	}

	var images []domain.ImageInput
	if len(in.Images) > 0 {
		images = make([]domain.ImageInput, len(in.Images))
		copy(images, in.Images)
	}

	return &domain.GenerationRequest{
		UseCase:     in.UseCase,
		Target:      target,
		Instruction: instruction,
		Images:      images,
	}, nil
}

// resolveInstruction は定型プロンプトとユーザー指示のどちらを使うかを決めます。
// カスタム指定なのに空欄の場合は ErrInvalidInput です。
func resolveInstruction(opts domain.GenerationOptions, canned string) (string, error) {
	custom := strings.TrimSpace(opts.CustomPrompt)
	if opts.PromptType == CustomPromptChoice && custom == "" {
		return "", fmt.Errorf("%w: custom prompt selected but left blank", domain.ErrInvalidInput)
	}
	if custom != "" {
		return custom, nil
	}
	return canned, nil
}

func targetOrDefault(target, fallback string) string {
	if t := strings.TrimSpace(target); t != "" {
		return t
	}
	return fallback
}

func requireImages(in domain.ComposeInput) error {
	if in.UseCase.RequiresImage() && len(in.Images) == 0 {
		return fmt.Errorf("%w: %s requires at least one image", domain.ErrInvalidInput, in.UseCase)
	}
	return nil
}

func requireText(in domain.ComposeInput, what string) error {
	if in.UseCase.RequiresText() && strings.TrimSpace(in.Text) == "" {
		return fmt.Errorf("%w: %s is required for %s", domain.ErrInvalidInput, what, in.UseCase)
	}
	return nil
}
