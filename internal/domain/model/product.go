package model

// バックエンドのカタログのスナップショット。フロント側では読み取り専用。
// Stock が nil の商品は販売終了（在庫0＝入荷待ちとは別物）。
type Product struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Stock       *int64       `json:"stock"`
	Flags       ProductFlags `json:"flags"`
}

type ProductFlags struct {
	Modifiable bool `json:"modifiable"`
	NewProduct bool `json:"new_product"`
}

// 在庫情報があるか（在庫0でもtrue）
func (p Product) Available() bool {
	return p.Stock != nil
}
