package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "gasvision/internal/repository"
)

const (
	MsgRequiredFields     = "Please fill in all required fields."
	MsgStorageUnavailable = "storage unavailable"
	MsgMalformedRecord    = "malformed record"
)

type HTTPError struct {
	Status  int
	Message string
	// 元のエラー（ログ用。レスポンスには出さない）
	Cause error
}

func (e *HTTPError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 保存先のエラーをHTTPErrorへ。読めないレコードは500、それ以外は503。
func storageError(err error) error {
	if errors.Is(err, repo.ErrMalformedRecord) {
		return &HTTPError{Status: http.StatusInternalServerError, Message: MsgMalformedRecord, Cause: err}
	}
	return &HTTPError{Status: http.StatusServiceUnavailable, Message: MsgStorageUnavailable, Cause: err}
}
