package domain

import (
	"fmt"
	"strings"
)

// UseCase は 1 回の生成リクエストがどの対話モードに属するかを表すタグです。
type UseCase int

const (
	UseCaseUnknown UseCase = iota
	SingleImageToCode
	MultiImageToApp
	CodeRefactor
	DocToApp
)

// 通信・ログで使う安定した識別子
var useCaseSlugs = map[UseCase]string{
	SingleImageToCode: "image-to-code",
	MultiImageToApp:   "multi-image-to-app",
	CodeRefactor:      "code-refactor",
	DocToApp:          "doc-to-app",
}

// AllUseCases は UI やカタログ出力の並び順を固定した一覧です。
func AllUseCases() []UseCase {
	return []UseCase{SingleImageToCode, MultiImageToApp, CodeRefactor, DocToApp}
}

// String は UseCase のスラッグを返します。
func (u UseCase) String() string {
	if s, ok := useCaseSlugs[u]; ok {
		return s
	}
	return "unknown"
}

// RequiresImage は画像が最低 1 枚必要なユースケースかどうかを返します。
func (u UseCase) RequiresImage() bool {
	return u == SingleImageToCode || u == MultiImageToApp
}

// RequiresText は主テキスト（ドキュメント or 現行コード）が必須かどうかを返します。
func (u UseCase) RequiresText() bool {
	return u == CodeRefactor || u == DocToApp
}

// ParseUseCase はスラッグから UseCase を復元します。
// 未知の値は ErrInvalidInput でラップして返します。
func ParseUseCase(s string) (UseCase, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, u := range AllUseCases() {
		if useCaseSlugs[u] == key {
			return u, nil
		}
	}
	return UseCaseUnknown, fmt.Errorf("%w: unknown use case %q", ErrInvalidInput, s)
}
