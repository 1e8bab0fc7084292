package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kiosk/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// バックエンドが401を返した（ログインへ誘導するのは画面側の仕事）
var ErrUnauthenticated = errors.New("unauthenticated")

// 2xx以外（401を除く）をそのまま運ぶエラー。リトライはしない。
type StatusError struct {
	Status int
	Text   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %d %s", e.Status, e.Text)
}

func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}

// 店舗バックエンドAPIとの約束。リクエスト/レスポンスの形だけを定め、
// 認証や輸送の細部は実装（infra/backend）に寄せる。
type BackendGateway interface {
	GetUser(ctx context.Context, s model.Session) (model.User, error)
	GetProducts(ctx context.Context, s model.Session) ([]model.Product, error)

	QueryTransactions(ctx context.Context, s model.Session, q model.TransactionQuery) ([]model.Transaction, error)
	GetDetailedTransaction(ctx context.Context, s model.Session, transactionID int64) (model.Transaction, error)
	UndoTransaction(ctx context.Context, s model.Session, transactionID int64) error

	GetUsersByRole(ctx context.Context, s model.Session, role model.Role) ([]model.User, error)

	BestSellingProduct(ctx context.Context, s model.Session, tr model.TimeRange) (model.BestSellingProduct, error)
	// purchases / customers / deposits は形に触らずそのまま画面へ返す
	Stats(ctx context.Context, s model.Session, name string) (json.RawMessage, error)
}
