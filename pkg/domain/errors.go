package domain

import "errors"

var (
	// ErrInvalidInput は生成を試みる前に弾かれる入力エラーです。
	ErrInvalidInput = errors.New("invalid input")
	// ErrExternalService はモデル呼び出し側で起きたあらゆる失敗です（認証・通信・クォータ・不正応答）。
	ErrExternalService = errors.New("external service failure")
)
