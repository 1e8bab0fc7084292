package model

// CartState はキオスク1セッション分のカート。
// Products は商品ID→数量。正の数量だけを持つのが不変条件で、
// カタログ再取得後はリコンサイル済みのカタログに存在するIDしか残らない。
// 値として受け渡し、共有状態の差し替えは必ず一括で行う。
type CartState struct {
	SessionID string          `json:"session_id"`
	Products  map[int64]int64 `json:"products"`
}

func NewCartState(sessionID string) CartState {
	return CartState{
		SessionID: sessionID,
		Products:  map[int64]int64{},
	}
}

// 指定商品の数量（未登録は0）
func (c CartState) Quantity(productID int64) int64 {
	return c.Products[productID]
}

// SetQuantity は数量を差し替えた複製を返す。qtyが0以下ならエントリを消す。
// 元のCartStateには触らない。
func (c CartState) SetQuantity(productID int64, qty int64) CartState {
	products := make(map[int64]int64, len(c.Products)+1)
	for id, q := range c.Products {
		if q > 0 {
			products[id] = q
		}
	}
	if qty > 0 {
		products[productID] = qty
	} else {
		delete(products, productID)
	}
	return CartState{SessionID: c.SessionID, Products: products}
}

// Normalize は数量が0以下のエントリを落とした複製を返す。
// 壊れた保存データはエラーにせず黙って直す。
func (c CartState) Normalize() CartState {
	products := make(map[int64]int64, len(c.Products))
	for id, q := range c.Products {
		if q > 0 {
			products[id] = q
		}
	}
	return CartState{SessionID: c.SessionID, Products: products}
}
