package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "kiosk/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
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

// バックエンド呼び出しの失敗をHTTPErrorへ写す。
// 401はログイン誘導、それ以外はステータスとテキストをそのまま運ぶ。
func fromGatewayError(err error) error {
	if errors.Is(err, repo.ErrUnauthenticated) {
		return NewHTTPError(http.StatusUnauthorized, "login required")
	}
	if se, ok := repo.AsStatusError(err); ok {
		return NewHTTPError(se.Status, se.Text)
	}
	return NewHTTPError(http.StatusBadGateway, "backend unavailable")
}
