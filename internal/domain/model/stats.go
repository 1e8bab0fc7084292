package model

// /api/stats/get_best_selling_product のレスポンス。
type BestSellingProduct struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TotalSold int64  `json:"total_sold"`
}
