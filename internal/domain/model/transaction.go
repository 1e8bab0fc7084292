package model

// バックエンドの取引一覧が返す1件分。
type Transaction struct {
	ID         int64             `json:"id"`
	Amount     float64           `json:"amount"`
	Datetime   int64             `json:"datetime"`
	SearchTerm string            `json:"search_term"`
	Items      []TransactionItem `json:"items"`
}

type TransactionItem struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
	ProductID int64   `json:"product_id"`
}
