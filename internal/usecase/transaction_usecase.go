package usecase

import (
	"context"
	"net/http"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"
)

type TransactionUsecase struct {
	gateway repo.BackendGateway
}

// DI
func NewTransactionUsecase(gateway repo.BackendGateway) *TransactionUsecase {
	return &TransactionUsecase{gateway: gateway}
}

// List は任意の検索条件で取引を引く。Limit未指定はここで既定値に倒す。
func (u *TransactionUsecase) List(ctx context.Context, s model.Session, q model.TransactionQuery) ([]model.Transaction, error) {
	transactions, err := u.gateway.QueryTransactions(ctx, s, q.Normalized())
	if err != nil {
		return nil, fromGatewayError(err)
	}
	return transactions, nil
}

// ListRecent は直近30日の既定クエリで引く（管理画面の一覧の初期表示）。
// cursorがあれば続きのページ。
func (u *TransactionUsecase) ListRecent(ctx context.Context, s model.Session, cursor *string) ([]model.Transaction, error) {
	q := model.DefaultTransactionQuery()
	if cursor != nil && *cursor != "" {
		q = q.WithCursor(*cursor)
	}
	return u.List(ctx, s, q)
}

// ListForUser は指定ユーザーの履歴（期間は絞らずcursorで遡る）。
func (u *TransactionUsecase) ListForUser(ctx context.Context, s model.Session, userID int64, cursor *string) ([]model.Transaction, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	q := model.TransactionQueryForUser(userID)
	if cursor != nil && *cursor != "" {
		q = q.WithCursor(*cursor)
	}
	return u.List(ctx, s, q)
}

func (u *TransactionUsecase) Detail(ctx context.Context, s model.Session, transactionID int64) (model.Transaction, error) {
	if transactionID <= 0 {
		return model.Transaction{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	t, err := u.gateway.GetDetailedTransaction(ctx, s, transactionID)
	if err != nil {
		return model.Transaction{}, fromGatewayError(err)
	}
	return t, nil
}

// Undo の成功後、呼び出し側は取引に依存するビューを再取得すること。
func (u *TransactionUsecase) Undo(ctx context.Context, s model.Session, transactionID int64) error {
	if transactionID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.gateway.UndoTransaction(ctx, s, transactionID); err != nil {
		return fromGatewayError(err)
	}
	return nil
}
