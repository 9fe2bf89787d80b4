package repository

import "errors"

var (
	// 接続できない・書き込めないなど保存先側の失敗
	ErrUnavailable = errors.New("storage unavailable")

	// 保存されていたレコードが読めない
	ErrMalformedRecord = errors.New("malformed record")
)
