package model

import "time"

// 取引一覧APIの唯一の引数。マッチングの解釈はバックエンド側の契約で、
// こちらでは組み立てて渡すだけの不活性な値。
// user_ids / product_ids の複数指定はOR。time_rangeの start > end も
// ここでは検証せずそのまま通す（サーバーの責務）。
type TransactionQuery struct {
	UserIDs    []int64    `json:"user_ids"`
	ProductIDs []int64    `json:"product_ids"`
	TimeRange  *TimeRange `json:"time_range,omitempty"`
	SearchTerm *string    `json:"search_term,omitempty"`
	Cursor     *string    `json:"cursor,omitempty"`
	Limit      int        `json:"limit"`
}

// unix秒。どちらか片方だけでもよい（省略側は無制限）。
type TimeRange struct {
	Start *int64 `json:"start,omitempty"`
	End   *int64 `json:"end,omitempty"`
}

const DefaultTransactionLimit = 20

// 全履歴ではなく直近30日に絞った既定のクエリ。
func DefaultTransactionQuery() TransactionQuery {
	start := time.Now().Add(-30 * 24 * time.Hour).Unix()
	return TransactionQuery{
		UserIDs:    []int64{},
		ProductIDs: []int64{},
		TimeRange:  &TimeRange{Start: &start},
		Limit:      DefaultTransactionLimit,
	}
}

// 指定ユーザーの履歴用。cursorで過去へ遡るページングが前提なので期間は絞らない。
func TransactionQueryForUser(userID int64) TransactionQuery {
	return TransactionQuery{
		UserIDs:    []int64{userID},
		ProductIDs: []int64{},
		Limit:      DefaultTransactionLimit,
	}
}

// WithCursor はcursorだけ差し替えた複製を返す。
func (q TransactionQuery) WithCursor(cursor string) TransactionQuery {
	q.Cursor = &cursor
	return q
}

// Normalized はLimit未指定（0以下）を既定値に倒し、nilスライスを空にする。
// Limitは常に正、が不変条件。
func (q TransactionQuery) Normalized() TransactionQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultTransactionLimit
	}
	if q.UserIDs == nil {
		q.UserIDs = []int64{}
	}
	if q.ProductIDs == nil {
		q.ProductIDs = []int64{}
	}
	return q
}
