package domain

// GenerationOptions はユーザーが選択したオプションのフラットな集合です。
// リクエストごとに新しく作られ、リクエストを跨いで保持されることはありません。
type GenerationOptions struct {
	PromptType   string // 定型プロンプトの選択肢
	CustomPrompt string // 定型プロンプトを上書きするユーザー指示
	Target       string // フレームワーク / アプリ種別 / 生成種別

	Responsive bool
	Animations bool

	IncludeTests         bool
	IncludeDocs          bool
	IncludeErrorHandling bool
	Complexity           int // 1..5、0 は既定値扱い

	RefactorGoals []string
}

// ImageInput はアップロードされた 1 枚の画像です。
// パイプラインは読むだけで、書き換えたり保持したりしません。
type ImageInput struct {
	Name     string
	MimeType string
	Data     []byte
}

// ComposeInput は RequestComposer への入力一式です。
type ComposeInput struct {
	UseCase UseCase
	Options GenerationOptions
	Text    string // ドキュメント or 現行コード
	Images  []ImageInput
}

// GenerationParams はモデル呼び出し時の生成パラメータです。
type GenerationParams struct {
	Temperature     float32
	MaxOutputTokens int32
}

// GenerationRequest は外部モデルへ渡す唯一の入力です。
// Instruction は常に空ではなく、Images はアップロード順を保持します。
type GenerationRequest struct {
	UseCase           UseCase
	Target            string
	Instruction       string
	SystemInstruction string
	Images            []ImageInput
	Params            *GenerationParams // nil の場合はモデルの既定値
}

// GenerationResult はモデルが返した生テキストと、それを生んだユースケースの組です。
type GenerationResult struct {
	UseCase UseCase
	Target  string
	Text    string
}

// Presentation は ResponseRouter が決める表示・ダウンロード方針です。
type Presentation struct {
	RenderAsCode      bool
	LanguageTag       string
	SuggestedFilename string
	Text              string
}
